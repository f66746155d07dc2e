package collections

import (
	"fmt"
	"slices"
	"sync"
)

// MacroFunc extends collections at runtime.
//
// Macros are registered once and shared by Indexed, Associative, Fixed and
// Lazy for every instantiation, so the receiver arrives as an any. Assert
// it to the concrete type the macro supports, or to [Collection] to read
// any of them:
//
//	collections.RegisterMacro("total", func(col any, _ ...any) any {
//	    c, ok := col.(collections.Collection[int, int])
//	    if !ok {
//	        return nil
//	    }
//	    return collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
//	})
//
//	total, _ := collections.NewIndexed(1, 2, 3).Macro("total") // 6
type MacroFunc func(collection any, args ...any) any

type macroTable struct {
	mu    sync.RWMutex
	funcs map[string]MacroFunc
}

func (t *macroTable) lookup(name string) (MacroFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.funcs[name]
	return fn, ok
}

var macros = &macroTable{funcs: make(map[string]MacroFunc)}

// RegisterMacro stores fn under name, replacing any macro already there.
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.funcs[name] = fn
}

// HasMacro reports whether name is registered.
func HasMacro(name string) bool {
	_, ok := macros.lookup(name)
	return ok
}

// MacroNames returns the registered names in sorted order.
func MacroNames() []string {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	names := make([]string, 0, len(macros.funcs))
	for name := range macros.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushMacros unregisters every macro.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	clear(macros.funcs)
}

// CallMacro runs the macro registered under name on collection. Each
// collection's Macro method is a shorthand for it. An unknown name yields
// an error wrapping [ErrMacroNotFound].
func CallMacro(name string, collection any, args ...any) (any, error) {
	fn, ok := macros.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(collection, args...), nil
}
