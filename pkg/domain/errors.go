package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// NotFoundError tells which record was not found
type NotFoundError struct {
	Kind string // e.g. category, author
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Unwrap allows errors.Is(err, ErrNotFound)
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
