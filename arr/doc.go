// Package arr provides standalone helper functions for nested []any data,
// record grouping and dot-notation map access, inspired by Laravel's Arr
// facade and PHP's array_* functions.
//
// # Flattening
//
// [DeepFlatten] collapses an arbitrarily nested sequence into a single flat
// slice of leaves, in left-to-right depth-first order. Any Go slice or array
// nested inside the input counts as a sequence; strings and byte slices are
// leaves:
//
//	arr.DeepFlatten([]any{1, []any{2, []any{3, []int{4, 5}}}}) // → [1 2 3 4 5]
//	arr.FlattenDepth([]any{1, []any{2, []any{3}}}, 1)          // → [1 2 [3]]
//
// # Grouping
//
// [GroupByKey] buckets records by the stringified value of a named key and
// keeps both group order and in-group order stable:
//
//	groups, _ := arr.GroupByKey(records, "type")
//	groups.Keys()           // → ["fruit" "veg"] (first-seen order)
//	groups.Get("fruit")     // → [apple banana]
//
// Records lacking the key land in the [UndefinedKey] bucket unless another
// policy is selected with [WithMissingBucket], [WithSkipMissing] or
// [WithStrictKeys].
//
// # Dot-notation map access
//
// [Get] and [Has] read values in nested map[string]any structures using dot
// notation:
//
//	arr.Get(m, "user.address.city") // → "London"
//	arr.Has(m, "user.name")         // → true
//
// # Limitations
//
// Flattening recurses once per nesting level and does not detect cycles. A
// self-referencing []any exhausts the stack.
package arr
