package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrReduceOfEmpty is returned by ReduceAll and ReduceSlots when there is
	// nothing to reduce and no initial value was supplied. It wraps
	// [ErrEmptyCollection].
	ErrReduceOfEmpty = fmt.Errorf("%w: reduce with no initial value", ErrEmptyCollection)

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")

	// ErrInvalidMacroArgs is returned when a macro receives a collection or
	// callback of the wrong type.
	ErrInvalidMacroArgs = errors.New("collections: invalid macro arguments")
)
