package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPaginationParams(t *testing.T) {
	t.Run("defaults when no parameters are given", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni", nil)

		pageNumber, itemsPerPage, err := readPaginationParams(r)
		require.NoError(t, err)
		assert.Equal(t, 1, pageNumber)
		assert.Equal(t, 10, itemsPerPage)
	})

	t.Run("explicit parameters are honored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni?page=3&per-page=25", nil)

		pageNumber, itemsPerPage, err := readPaginationParams(r)
		require.NoError(t, err)
		assert.Equal(t, 3, pageNumber)
		assert.Equal(t, 25, itemsPerPage)
	})

	t.Run("rejects a non-positive page number", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni?page=0", nil)

		_, _, err := readPaginationParams(r)
		assert.ErrorContains(t, err, "invalid page number")
	})

	t.Run("rejects non-positive items per page", func(t *testing.T) {
		for _, raw := range []string{"0", "-5"} {
			r := httptest.NewRequest("GET", "/alumni?per-page="+raw, nil)

			_, _, err := readPaginationParams(r)
			assert.ErrorContains(t, err, "invalid number of items per page")
		}
	})

	t.Run("rejects non-numeric parameters", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni?page=two", nil)
		_, _, err := readPaginationParams(r)
		assert.Error(t, err)

		r = httptest.NewRequest("GET", "/alumni?per-page=many", nil)
		_, _, err = readPaginationParams(r)
		assert.Error(t, err)
	})
}

func TestReadRandomizationSeed(t *testing.T) {
	t.Run("generates a seed when absent", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni", nil)

		seed, err := readRandomizationSeed(r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, seed, 0.0)
		assert.Less(t, seed, 1.0)
	})

	t.Run("passes through an explicit seed", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/alumni?randomization-seed=-0.25", nil)

		seed, err := readRandomizationSeed(r)
		require.NoError(t, err)
		assert.Equal(t, -0.25, seed)
	})

	t.Run("rejects seeds outside the setseed range", func(t *testing.T) {
		for _, raw := range []string{"1.5", "-2", "abc"} {
			r := httptest.NewRequest("GET", "/alumni?randomization-seed="+raw, nil)

			_, err := readRandomizationSeed(r)
			assert.ErrorContains(t, err, "invalid randomization seed")
		}
	})
}
