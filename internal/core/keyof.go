package core

import "errors"

// ErrUnknownKey is returned when a key does not name any field of its struct.
var ErrUnknownKey = errors.New("unknown key")

// Field is a named, typed accessor for one field of T whose value has type V.
// A set of Fields for a struct is the Go counterpart of the struct's key set: each Field's name
// is one key, and reading through it yields the field's own type.
type Field[T, V any] struct {
	name string
	get  func(T) V
}

// NewField creates a Field called name that reads its value with get.
func NewField[T, V any](name string, get func(T) V) Field[T, V] {
	return Field[T, V]{name: name, get: get}
}

// Get reads the field from obj.
func (f Field[T, V]) Get(obj T) V {
	return f.get(obj)
}

// Name returns the field's name.
func (f Field[T, V]) Name() string {
	return f.name
}

// Property reads field from obj. The result type is the field's type, not any.
func Property[T, V any](obj T, field Field[T, V]) V {
	return field.Get(obj)
}
