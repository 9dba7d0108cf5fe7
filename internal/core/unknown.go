package core

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by Narrow when a value is not of the requested type.
var ErrTypeMismatch = errors.New("type mismatch")

// Narrow checks that v holds a T and returns it.
// Unlike a bare type assertion it never panics: a mismatch yields the zero T and an error
// wrapping ErrTypeMismatch.
func Narrow[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		return *new(T), fmt.Errorf("%w: expected %T, got %T", ErrTypeMismatch, *new(T), v)
	}

	return val, nil
}
