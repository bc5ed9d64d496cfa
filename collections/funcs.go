package collections

import "github.com/hasbyte1/go-deeputils/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U), plus the sparse
// slot variants of map and reduce.
//
// Callbacks receive a snapshot of the items taken when the call starts, so
// writes through the items argument never reach the collection itself.

// MapFunc transforms one item. items is the full input the item came from.
type MapFunc[T, U any] func(item T, index int, items []T) U

// BoundMapFunc is a MapFunc with an explicit receiver, see [MapBound].
type BoundMapFunc[C, T, U any] func(this C, item T, index int, items []T) U

// ReduceFunc combines the accumulator with one item.
type ReduceFunc[T, U any] func(acc U, item T, index int, items []T) U

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// MapAll applies fn to every item and returns a new Collection[U] of the
// same length.
//
//	doubled := collections.MapAll(collections.New(1, 2, 3),
//	    func(n, _ int, _ []int) int { return n * 2 }) // → [2, 4, 6]
func MapAll[T, U any](c *Collection[T], fn MapFunc[T, U]) *Collection[U] {
	items := c.All()
	out := make([]U, len(items))
	for i := range items {
		out[i] = fn(items[i], i, items)
	}
	return &Collection[U]{items: out}
}

// MapBound is [MapAll] with a receiver: this is passed as the first argument
// of every fn call.
func MapBound[C, T, U any](c *Collection[T], fn BoundMapFunc[C, T, U], this C) *Collection[U] {
	return MapAll(c, func(item T, i int, items []T) U { return fn(this, item, i, items) })
}

// MapSlots maps a sparse sequence in which a nil pointer marks an empty
// slot. The result has the same length; fn is not called for empty slots
// and they stay empty (nil) in the output.
func MapSlots[T, U any](slots []*T, fn func(item T, index int, slots []*T) U) []*U {
	out := make([]*U, len(slots))
	for i, slot := range slots {
		if slot == nil {
			continue
		}
		v := fn(*slot, i, slots)
		out[i] = &v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces Collection[T] to a single value of type U, starting from
// initial at index 0.
//
//	sum := collections.Fold(collections.New(1, 2, 3, 4),
//	    func(acc, n, _ int, _ []int) int { return acc + n }, 0) // → 10
func Fold[T, U any](c *Collection[T], fn ReduceFunc[T, U], initial U) U {
	items := c.All()
	acc := initial
	for i := range items {
		acc = fn(acc, items[i], i, items)
	}
	return acc
}

// ReduceSlots reduces a sparse sequence, skipping empty (nil) slots. Without
// an initial value the first non-empty slot seeds the accumulator; if every
// slot is empty the result is [ErrReduceOfEmpty].
func ReduceSlots[T any](slots []*T, fn func(acc, item T, index int, slots []*T) T, initial ...T) (T, error) {
	var acc T
	start := 0
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		for start < len(slots) && slots[start] == nil {
			start++
		}
		if start == len(slots) {
			return acc, ErrReduceOfEmpty
		}
		acc = *slots[start]
		start++
	}
	for i := start; i < len(slots); i++ {
		if slots[i] == nil {
			continue
		}
		acc = fn(acc, *slots[i], i, slots)
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & flattening
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the comparable key K extracted by fn.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for k, items := range arr.GroupBy(c.items, fn) {
		groups[k] = &Collection[T]{items: items}
	}
	return groups
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return &Collection[T]{items: arr.Collapse(c.items)}
}

// FlattenDeep recursively flattens a Collection[any] that may contain nested
// slices, arrays or *Collection[any] values of arbitrary depth, in
// left-to-right depth-first order.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.items))
	var flatten func(items []any)
	flatten = func(items []any) {
		for _, item := range items {
			switch v := item.(type) {
			case *Collection[any]:
				flatten(v.items)
			default:
				if arr.IsSequence(v) {
					flatten(arr.FlattenDepth(v, 1))
					continue
				}
				out = append(out, item)
			}
		}
	}
	flatten(c.items)
	return &Collection[any]{items: out}
}
