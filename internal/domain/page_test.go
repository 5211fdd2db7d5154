package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	t.Run("rounds the number of pages up", func(t *testing.T) {
		meta := NewPageMeta(1, 10, 25)

		assert.Equal(t, 1, meta.PageNumber)
		assert.Equal(t, 10, meta.ItemsPerPage)
		assert.Equal(t, int64(25), meta.NumberOfItems)
		assert.Equal(t, int64(3), meta.NumberOfPages)
	})

	t.Run("exact multiple needs no extra page", func(t *testing.T) {
		meta := NewPageMeta(2, 10, 30)

		assert.Equal(t, int64(3), meta.NumberOfPages)
	})

	t.Run("no items means no pages", func(t *testing.T) {
		meta := NewPageMeta(1, 10, 0)

		assert.Equal(t, int64(0), meta.NumberOfItems)
		assert.Equal(t, int64(0), meta.NumberOfPages)
	})
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 10))
	assert.Equal(t, 20, PageOffset(3, 10))
	assert.Equal(t, 5, PageOffset(2, 5))
}
