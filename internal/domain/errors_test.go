package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnexpectedError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := &UnexpectedError{Cause: cause}

	assert.ErrorContains(t, err, "an unexpected situation occurred")
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.ErrorIs(t, err, cause)
}
