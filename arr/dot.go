package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// These functions read and test values in nested map[string]any
// structures using dot-separated key paths. [GroupByKey] uses them to resolve
// nested grouping keys such as "owner.team".
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			break
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			break
		}
		current = nested
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	return hasKey(m, strings.Split(key, "."))
}

func hasKey(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return hasKey(nested, segments[1:])
}
