package arr

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Record is a single row of loosely typed data, as decoded from JSON.
type Record = map[string]any

// UndefinedKey is the bucket name used for records that do not define the
// grouping key under the default [MissingBucket] policy.
const UndefinedKey = "undefined"

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

// MissingPolicy selects what [GroupByKey] does with records that lack the
// grouping key.
type MissingPolicy int

const (
	// MissingBucket collects such records under GroupOptions.MissingKey.
	MissingBucket MissingPolicy = iota
	// MissingSkip drops such records from the result.
	MissingSkip
	// MissingError aborts grouping with [ErrMissingKey].
	MissingError
)

// String returns the policy name used in log output.
func (p MissingPolicy) String() string {
	switch p {
	case MissingBucket:
		return "bucket"
	case MissingSkip:
		return "skip"
	case MissingError:
		return "error"
	default:
		return "unknown"
	}
}

// GroupOptions configures [GroupByKey].
type GroupOptions struct {
	// Missing is the policy for records without the key.
	// Default: [MissingBucket].
	Missing MissingPolicy

	// MissingKey is the bucket name used by [MissingBucket].
	// Default: [UndefinedKey].
	MissingKey string

	// Logger receives a debug entry for every record without the key.
	// Default: a no-op logger.
	Logger *zap.Logger
}

// DefaultGroupOptions returns GroupOptions with the default missing-key
// bucket and a no-op logger.
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		Missing:    MissingBucket,
		MissingKey: UndefinedKey,
		Logger:     zap.NewNop(),
	}
}

// GroupOption mutates GroupOptions.
type GroupOption func(*GroupOptions)

// WithMissingBucket collects records without the key under name.
func WithMissingBucket(name string) GroupOption {
	return func(o *GroupOptions) {
		o.Missing = MissingBucket
		o.MissingKey = name
	}
}

// WithSkipMissing drops records without the key.
func WithSkipMissing() GroupOption {
	return func(o *GroupOptions) { o.Missing = MissingSkip }
}

// WithStrictKeys makes [GroupByKey] fail with [ErrMissingKey] on the first
// record without the key.
func WithStrictKeys() GroupOption {
	return func(o *GroupOptions) { o.Missing = MissingError }
}

// WithLogger reports records without the key to l at debug level.
// A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) GroupOption {
	return func(o *GroupOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Groups
// ─────────────────────────────────────────────────────────────────────────────

// Groups is an ordered mapping from a stringified key value to the records
// sharing it. Keys are kept in first-seen order and records keep their
// input order within each group.
type Groups[T any] struct {
	keys   []string
	groups map[string][]T
}

func newGroups[T any]() *Groups[T] {
	return &Groups[T]{groups: make(map[string][]T)}
}

func (g *Groups[T]) add(key string, item T) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

// Keys returns the group keys in first-seen order.
func (g *Groups[T]) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns a copy of the records grouped under key.
func (g *Groups[T]) Get(key string) ([]T, bool) {
	items, ok := g.groups[key]
	if !ok {
		return nil, false
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, true
}

// Count returns the number of records grouped under key.
func (g *Groups[T]) Count(key string) int { return len(g.groups[key]) }

// Len returns the number of groups.
func (g *Groups[T]) Len() int { return len(g.keys) }

// Each calls fn(key, records) for every group in first-seen order.
func (g *Groups[T]) Each(fn func(key string, items []T)) {
	for _, k := range g.keys {
		fn(k, g.groups[k])
	}
}

// ToMap returns the groups as a plain map. Key order is lost.
func (g *Groups[T]) ToMap() map[string][]T {
	out := make(map[string][]T, len(g.keys))
	for _, k := range g.keys {
		items := make([]T, len(g.groups[k]))
		copy(items, g.groups[k])
		out[k] = items
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// GroupByKey
// ─────────────────────────────────────────────────────────────────────────────

// GroupByKey groups records by the stringified value they hold for key.
//
// A record is a map with string keys (usually [Record]) or a struct, or a
// pointer to one, whose exported field name or json tag matches key. For
// maps, a key containing dots that is not present literally is resolved as
// a path through nested maps, as in [Get].
//
// Key values are stringified as: nil → "null", booleans → "true"/"false",
// numbers in shortest round-trip form (exponent notation below 1e-6 and from
// 1e21 up, "0" for negative zero), strings unchanged, [fmt.Stringer] via
// String, anything else via fmt.Sprint.
//
// Records without the key are handled according to the [MissingPolicy];
// an error is only returned under [MissingError].
func GroupByKey[T any](records []T, key string, opts ...GroupOption) (*Groups[T], error) {
	o := DefaultGroupOptions()
	for _, opt := range opts {
		opt(&o)
	}
	groups := newGroups[T]()
	for i, record := range records {
		val, ok := lookup(record, key)
		if ok {
			groups.add(KeyString(val), record)
			continue
		}
		o.Logger.Debug("record missing grouping key",
			zap.String("key", key),
			zap.Int("index", i),
			zap.Stringer("policy", o.Missing))
		switch o.Missing {
		case MissingSkip:
		case MissingError:
			return nil, fmt.Errorf("%w: %q at index %d", ErrMissingKey, key, i)
		default:
			groups.add(o.MissingKey, record)
		}
	}
	return groups, nil
}

// KeyString converts a grouping key value to its bucket name.
func KeyString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return formatNumber(float64(val), 32)
	case float64:
		return formatNumber(val, 64)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatNumber renders f the way JSON-derived data prints numbers: shortest
// round-trip digits, exponent form outside [1e-6, 1e21), a single "0" for
// both zeros, and "NaN"/"Infinity" for the non-finite values.
func formatNumber(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bits)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func lookup(record any, key string) (any, bool) {
	if m, ok := record.(map[string]any); ok {
		if v, ok := m[key]; ok {
			return v, true
		}
		if strings.Contains(key, ".") && Has(m, key) {
			return Get(m, key), true
		}
		return nil, false
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	default:
		return nil, false
	}
}

func structField(rv reflect.Value, key string) (any, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if f.Name == key || (name != "" && name != "-" && name == key) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
