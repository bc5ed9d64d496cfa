// Package collections provides a generic Collection type together with
// map/reduce primitives and install-once collection capabilities, inspired by
// Laravel's Illuminate/Collections.
//
// # Overview
//
// [Collection][T] is an immutable-by-default wrapper around a slice of T:
//
//	c := collections.New(1, 2, 3, 4)
//	c.Count() // → 4
//
// # Map and reduce
//
// [MapAll] and [Collection.ReduceAll] follow the classic array primitives:
// callbacks receive the item, its index and the whole backing slice.
//
//	doubled := collections.MapAll(c, func(n, _ int, _ []int) int { return n * 2 })
//	sum, err := c.ReduceAll(func(acc, n, _ int, _ []int) int { return acc + n })
//
// Without an initial value ReduceAll seeds the accumulator with the first
// item and fails with [ErrReduceOfEmpty] on an empty collection. [MapBound]
// passes an explicit receiver to every call. [MapSlots] and [ReduceSlots]
// operate on sparse input where a nil pointer marks an empty slot.
//
// # Installed capabilities (macros)
//
// Named functions can be attached to collections at runtime through the
// macro registry. [InstallMap] and [InstallReduce] attach the "myMap" and
// "myReduce" capabilities exactly once per process; repeated calls are
// no-ops:
//
//	collections.InstallMap()
//	out, _ := collections.New[any](1, 2, 3).Macro(collections.MacroMap,
//	    func(v any, _ int, _ []any) any { return v.(int) * 2 })
//
// Prefer the typed package-level functions in Go code; the macros exist for
// callers that dispatch capabilities by name.
package collections
