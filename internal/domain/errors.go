package domain

import (
	"errors"
	"fmt"
)

// The closed set of storage error kinds every repository method maps
// driver failures into. Anything else is wrapped in UnexpectedError.
var (
	ErrAlreadyExists = errors.New("a record with the given key already exists")
	ErrNotFound      = errors.New("the requested record does not exist")
)

// UnexpectedError keeps the original persistence failure available for
// diagnostics without leaking driver types to callers.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("an unexpected situation occurred: %v", e.Cause)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}
