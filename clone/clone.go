package clone

import (
	"reflect"
	"time"
	"unsafe"
)

// opaque types are immutable values whose internals must not be rebuilt
// field by field. Copying a *time.Location would break the pointer
// identity that time.Time equality and Location() rely on.
var opaque = map[reflect.Type]bool{
	reflect.TypeOf(time.Time{}):           true,
	reflect.TypeOf((*time.Location)(nil)): true,
}

// Deep returns a deep copy of v. See the package documentation for the
// copying rules.
func Deep[T any](v T) T {
	c := Value(v)
	if c == nil {
		var zero T
		return zero
	}
	return c.(T)
}

// Value returns a deep copy of the dynamically typed value v.
// Scalars, including nil, are returned unchanged.
func Value(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return cloneMap(val)
	case []any:
		return cloneSlice(val)
	}
	rv := reflect.ValueOf(v)
	if isScalar(rv.Kind()) || opaque[rv.Type()] {
		return v
	}
	// Walk from an addressable root so unexported struct fields can be
	// reached through reflect.NewAt.
	root := reflect.New(rv.Type()).Elem()
	root.Set(rv)
	return deep(root).Interface()
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Value(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Value(v)
	}
	return out
}

func deep(src reflect.Value) reflect.Value {
	if opaque[src.Type()] {
		return src
	}
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return src
		}
		dst := reflect.New(src.Type().Elem())
		dst.Elem().Set(deep(src.Elem()))
		return dst

	case reflect.Interface:
		if src.IsNil() {
			return src
		}
		dst := reflect.New(src.Type()).Elem()
		dst.Set(deep(src.Elem()))
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(deep(src.Index(i)))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(src.Type()).Elem()
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(deep(src.Index(i)))
		}
		return dst

	case reflect.Map:
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(deep(iter.Key()), deep(iter.Value()))
		}
		return dst

	case reflect.Struct:
		if !src.CanAddr() {
			tmp := reflect.New(src.Type()).Elem()
			tmp.Set(src)
			src = tmp
		}
		dst := reflect.New(src.Type()).Elem()
		for i := 0; i < src.NumField(); i++ {
			sf, df := src.Field(i), dst.Field(i)
			if !df.CanSet() {
				sf, df = exposed(sf), exposed(df)
			}
			df.Set(deep(sf))
		}
		return dst

	default:
		// Scalars, channels, functions and unsafe pointers.
		return src
	}
}

// exposed returns a settable view of an addressable unexported field.
func exposed(v reflect.Value) reflect.Value {
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
