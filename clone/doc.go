// Package clone deep-copies arbitrary Go values and fingerprints their
// structure.
//
// # Cloning
//
// [Deep] returns a copy of v in which no slice, map, pointer target or
// interface payload is shared with v, so mutating any part of the copy never
// affects the original:
//
//	orig := map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": []any{3, 4}}}
//	cp := clone.Deep(orig)
//	cp["b"].(map[string]any)["d"].([]any)[0] = 99 // orig is untouched
//
// Trees of map[string]any and []any, as produced by encoding/json, are copied
// without reflection. Other values are walked with package reflect: structs
// are copied field by field (unexported fields included), pointers get a
// fresh pointee, nil slices and maps stay nil. Channels, functions and
// unsafe pointers are handles rather than data and are copied as-is.
// time.Time and *time.Location are immutable and also copied as-is, so a
// cloned timestamp keeps its location and compares equal with ==.
//
// Go has no inherited fields or keys: every map key and every declared
// struct field, embedded ones included, belongs to the value and is cloned.
//
// # Fingerprints
//
// [Fingerprint] hashes the canonical structure of a value with BLAKE2b-256.
// Structurally equal values, and in particular a value and its clone, share
// a fingerprint, which makes it cheap to check that an original was not
// modified through a copy.
//
// # Limitations
//
// Both operations recurse once per level of nesting and do not detect
// cycles. Cloning or fingerprinting a self-referencing value exhausts the
// stack.
package clone
