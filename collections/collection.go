package collections

import (
	"encoding/json"
	"fmt"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. Multiple goroutines may read the same
// collection concurrently.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are package-level functions:
//
//	labels := collections.MapAll(c, func(n, _ int, _ []int) string {
//	    return strconv.Itoa(n * 2)
//	})
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new Collection[any] with each item transformed by fn(item, index).
//
// For type-safe transformation to a concrete type U, use the package-level
// [MapAll] function instead.
func (c *Collection[T]) Map(fn func(T, int) any) *Collection[any] {
	return MapAll(c, func(item T, i int, _ []T) any { return fn(item, i) })
}

// Reduce folds the collection into a single value of the same type T,
// starting from initial.
//
// For reductions that change the type, use the package-level [Fold].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	return Fold(c, func(acc, item T, _ int, _ []T) T { return fn(acc, item) }, initial)
}

// ReduceAll folds the collection with fn(acc, item, index, items).
//
// With an initial value, iteration starts at index 0. Without one, the first
// item seeds the accumulator and iteration starts at index 1, so a single
// item collection returns that item unchanged. An empty collection with no
// initial value fails with [ErrReduceOfEmpty].
func (c *Collection[T]) ReduceAll(fn ReduceFunc[T, T], initial ...T) (T, error) {
	if len(initial) > 0 {
		return Fold(c, fn, initial[0]), nil
	}
	if len(c.items) == 0 {
		var zero T
		return zero, ErrReduceOfEmpty
	}
	items := c.All()
	acc := items[0]
	for i := 1; i < len(items); i++ {
		acc = fn(acc, items[i], i, items)
	}
	return acc, nil
}
