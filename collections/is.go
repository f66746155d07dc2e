package collections

import (
	"reflect"
	"slices"

	"github.com/hasbyte1/go-laravel-support/arr"
)

// Is answers structural questions about a collection. Quantified checks
// are vacuously true on an empty collection.
type Is[K comparable, V any] struct {
	source Collection[K, V]
}

// NewIs binds an Is operator to source.
func NewIs[K comparable, V any](source Collection[K, V]) *Is[K, V] {
	return &Is[K, V]{source: source}
}

// Empty reports whether the collection has no elements. Lazy sources are
// probed for a single element rather than counted.
func (is *Is[K, V]) Empty() bool {
	if is.source.Kind() == KindArray {
		return is.source.Count() == 0
	}
	for range is.source.All() {
		return false
	}
	return true
}

// Unique reports whether no two values are equal by [arr.Equal].
// Fingerprintable values are deduplicated by hash, the rest pairwise.
func (is *Is[K, V]) Unique() bool {
	seen := make(map[string]struct{})
	var rest []V
	for _, v := range is.source.All() {
		if !arr.Fingerprintable(v) {
			if slices.ContainsFunc(rest, func(r V) bool { return arr.Equal(r, v) }) {
				return false
			}
			rest = append(rest, v)
			continue
		}
		fp := arr.Fingerprint(v)
		if _, dup := seen[fp]; dup {
			return false
		}
		seen[fp] = struct{}{}
	}
	return true
}

// Sequential reports whether the keys are exactly the integers 0 … n-1 in
// order.
func (is *Is[K, V]) Sequential() bool {
	var want int64
	for k := range is.source.All() {
		n, ok := intKey(k)
		if !ok || n != want {
			return false
		}
		want++
	}
	return true
}

// Associative reports whether the collection is not [Is.Sequential].
func (is *Is[K, V]) Associative() bool { return !is.Sequential() }

// Homogeneous reports whether every value has the same [DebugType].
func (is *Is[K, V]) Homogeneous() bool {
	first, seen := "", false
	for _, v := range is.source.All() {
		t := DebugType(v)
		if !seen {
			first, seen = t, true
			continue
		}
		if t != first {
			return false
		}
	}
	return true
}

// Heterogeneous reports whether at least two values differ in type.
func (is *Is[K, V]) Heterogeneous() bool { return !is.Homogeneous() }

// ClassHomogeneous reports whether every value is an object (a struct or
// a pointer to one) and all share the same type.
func (is *Is[K, V]) ClassHomogeneous() bool {
	var first reflect.Type
	for _, v := range is.source.All() {
		t := reflect.TypeOf(v)
		if !isObject(t) {
			return false
		}
		if first == nil {
			first = t
			continue
		}
		if t != first {
			return false
		}
	}
	return true
}

// AllInstanceOf reports whether every value is assignable to t. Pass an
// interface type to check for an implementation:
//
//	c.Is().AllInstanceOf(reflect.TypeFor[fmt.Stringer]())
func (is *Is[K, V]) AllInstanceOf(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, v := range is.source.All() {
		vt := reflect.TypeOf(v)
		if vt == nil || !vt.AssignableTo(t) {
			return false
		}
	}
	return true
}

// Flat reports whether no value is itself a collection, slice, array or
// map.
func (is *Is[K, V]) Flat() bool {
	for _, v := range is.source.All() {
		if isNested(v) {
			return false
		}
	}
	return true
}

// Multidimensional reports whether some value is a collection, slice,
// array or map.
func (is *Is[K, V]) Multidimensional() bool { return !is.Flat() }

// Truthy reports whether every value is non-nil, non-zero and, for
// slices, maps and collections, non-empty.
func (is *Is[K, V]) Truthy() bool {
	for _, v := range is.source.All() {
		if !truthy(v) {
			return false
		}
	}
	return true
}

// Pure reports whether every value is nil or a scalar (bool, number or
// string).
func (is *Is[K, V]) Pure() bool {
	for _, v := range is.source.All() {
		if any(v) == nil {
			continue
		}
		if !isScalar(reflect.ValueOf(v).Kind()) {
			return false
		}
	}
	return true
}

// DebugType returns the type tag used by [Is.Homogeneous] and
// [CountBy.Type]: "nil" for nil, otherwise the dynamic Go type such as
// "int", "string" or "*collections.Indexed[int]".
func DebugType(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func intKey(k any) (int64, bool) {
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		return int64(u), u <= 1<<63-1
	}
	return 0, false
}

func isObject(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isNested(v any) bool {
	if _, ok := v.(sized); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(sized); ok {
		return c.Count() > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}
