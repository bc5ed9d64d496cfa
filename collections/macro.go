package collections

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The collection is passed as an any so that macros can be registered once
// and used across any Collection[T] instantiation. Type-assert inside the
// macro to the concrete *Collection[YourType].
type MacroFunc func(collection any, args ...any) (any, error)

// Names of the capabilities attached by [InstallMap] and [InstallReduce].
const (
	MacroMap    = "myMap"
	MacroReduce = "myReduce"
)

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
//	collections.RegisterMacro("sum", func(col any, _ ...any) (any, error) {
//	    c := col.(*collections.Collection[int])
//	    return c.Reduce(func(a, b int) int { return a + b }, 0), nil
//	})
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// RegisterMacroOnce adds fn under name unless a macro with that name is
// already registered. It reports whether fn was installed. The check and
// the insert happen under one lock, so concurrent callers racing on the
// same name see exactly one true.
func RegisterMacroOnce(name string, fn MacroFunc) bool {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	if _, ok := macroRegistry.macros[name]; ok {
		return false
	}
	macroRegistry.macros[name] = fn
	return true
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied collection and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, collection any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(collection, args...)
}

// Macro calls the named registered macro on c, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in capabilities
// ─────────────────────────────────────────────────────────────────────────────

// InstallMap attaches the [MacroMap] capability to collections. It reports
// whether this call installed it; once any macro is registered under the
// name, further calls do nothing and return false.
//
// The macro operates on a *Collection[any]:
//
//	c.Macro(collections.MacroMap, func(item any, i int, items []any) any { ... })
//	c.Macro(collections.MacroMap, func(this, item any, i int, items []any) any { ... }, this)
//
// The second form receives the trailing argument as its receiver. The
// result is a *Collection[any] of the same length.
func InstallMap() bool {
	return RegisterMacroOnce(MacroMap, mapMacro)
}

// InstallReduce attaches the [MacroReduce] capability to collections, with
// the same install-once behaviour as [InstallMap].
//
//	c.Macro(collections.MacroReduce, func(acc, item any, i int, items []any) any { ... })
//	c.Macro(collections.MacroReduce, fn, initial)
//
// Without an initial value an empty collection yields [ErrReduceOfEmpty].
func InstallReduce() bool {
	return RegisterMacroOnce(MacroReduce, reduceMacro)
}

func mapMacro(col any, args ...any) (any, error) {
	c, err := anyCollection(MacroMap, col)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s requires a callback", ErrInvalidMacroArgs, MacroMap)
	}
	var this any
	if len(args) > 1 {
		this = args[1]
	}
	switch fn := args[0].(type) {
	case func(any, int, []any) any:
		return MapAll(c, fn), nil
	case MapFunc[any, any]:
		return MapAll(c, fn), nil
	case func(any, any, int, []any) any:
		return MapBound(c, fn, this), nil
	case BoundMapFunc[any, any, any]:
		return MapBound(c, fn, this), nil
	default:
		return nil, fmt.Errorf("%w: %s callback has type %T", ErrInvalidMacroArgs, MacroMap, args[0])
	}
}

func reduceMacro(col any, args ...any) (any, error) {
	c, err := anyCollection(MacroReduce, col)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s requires a callback", ErrInvalidMacroArgs, MacroReduce)
	}
	var fn ReduceFunc[any, any]
	switch f := args[0].(type) {
	case func(any, any, int, []any) any:
		fn = f
	case ReduceFunc[any, any]:
		fn = f
	default:
		return nil, fmt.Errorf("%w: %s callback has type %T", ErrInvalidMacroArgs, MacroReduce, args[0])
	}
	return c.ReduceAll(fn, args[1:]...)
}

func anyCollection(name string, col any) (*Collection[any], error) {
	c, ok := col.(*Collection[any])
	if !ok {
		return nil, fmt.Errorf("%w: %s expects *Collection[any], got %T", ErrInvalidMacroArgs, name, col)
	}
	return c, nil
}
