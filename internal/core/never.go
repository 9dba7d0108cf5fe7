package core

import (
	"errors"
	"fmt"
)

// ErrUnhandledVariant is the panic value (wrapped) raised by Unreachable.
var ErrUnhandledVariant = errors.New("unhandled variant")

// Unreachable marks a branch that exhaustive handling of a closed set of variants can never reach.
// Call it from the default case of a type switch over a sealed interface: if a new variant is added
// and not handled, the first value of that variant to arrive panics with its type.
func Unreachable(v any) {
	panic(fmt.Errorf("%w: %T", ErrUnhandledVariant, v))
}
