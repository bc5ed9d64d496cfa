package arr

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Collapse flattens a slice of slices into a single flat slice (one level).
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// DeepFlatten recursively flattens items into a single slice of leaves in
// left-to-right, depth-first order.
//
// items is usually a []any, but any slice or array value is treated as a
// sequence at every level, so []any{1, []int{2, 3}} flattens to [1 2 3].
// Strings, []byte and byte arrays are leaves. A nil items yields an empty
// slice; a non-sequence items yields a one-element slice.
//
// Recursion depth equals the nesting depth of items. Cyclic input is not
// supported.
func DeepFlatten(items any) []any {
	return FlattenDepth(items, 0)
}

// FlattenDepth flattens at most depth levels of nesting. Sequences nested
// deeper than depth are appended as-is. A depth <= 0 flattens completely.
//
//	FlattenDepth([]any{1, []any{2, []any{3}}}, 1) // → [1 2 [3]]
func FlattenDepth(items any, depth int) []any {
	out := make([]any, 0)
	if items == nil {
		return out
	}
	var flatten func(v any, level int)
	flatten = func(v any, level int) {
		if depth > 0 && level > depth {
			out = append(out, v)
			return
		}
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem, level+1)
			}
			return
		case string, []byte:
			out = append(out, val)
			return
		}
		rv := reflect.ValueOf(v)
		if !isSequence(rv) {
			out = append(out, v)
			return
		}
		for i := 0; i < rv.Len(); i++ {
			flatten(rv.Index(i).Interface(), level+1)
		}
	}
	flatten(items, 0)
	return out
}

// LeafCount returns the number of leaves [DeepFlatten] would produce for
// items, without building the flattened slice.
func LeafCount(items any) int {
	if items == nil {
		return 0
	}
	return countLeaves(items)
}

func countLeaves(v any) int {
	switch val := v.(type) {
	case []any:
		n := 0
		for _, elem := range val {
			n += countLeaves(elem)
		}
		return n
	case string, []byte:
		return 1
	}
	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return 1
	}
	n := 0
	for i := 0; i < rv.Len(); i++ {
		n += countLeaves(rv.Index(i).Interface())
	}
	return n
}

// IsSequence reports whether v would be descended into by [DeepFlatten].
func IsSequence(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	return isSequence(reflect.ValueOf(v))
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Byte slices and arrays behave like strings.
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by a comparable key K extracted by fn.
// Items keep their relative order within each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
