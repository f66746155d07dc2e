package collections

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq2"
)

// This file contains package-level generic functions for operations that
// change a collection's key or value type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They accept any
// [Collection] and compose with the operator accessors:
//
//	names := collections.Map(
//	    users.Skip().While(collections.Where(func(u User, _ int) bool { return u.Admin })),
//	    func(u User, _ int) string { return u.Name },
//	)

// Map returns a Lazy yielding fn(value, key) under the original keys. fn
// runs on every traversal of the result, against the source as it is at
// that moment.
//
//	doubled := collections.Map(collections.NewIndexed(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[K comparable, V, R any](c Collection[K, V], fn func(value V, key K) R) *Lazy[K, R] {
	return NewLazy(func() iter.Seq2[K, R] {
		return seq2.Map(c.All(), func(k K, v V) (K, R) { return k, fn(v, k) })
	})
}

// Reduce folds c into a single value, starting from initial.
//
//	sum := collections.Reduce(collections.NewIndexed(1, 2, 3, 4),
//	    func(acc, n, _ int) int { return acc + n }, 0)
func Reduce[K comparable, V, R any](c Collection[K, V], fn func(acc R, value V, key K) R, initial R) R {
	return seq2.Reduce(c.All(), func(acc R, k K, v V) R { return fn(acc, v, k) }, initial)
}

// GroupBy partitions c by the group key fn returns. Groups appear in the
// order their first member was encountered.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee, _ int) string { return e.Department })
func GroupBy[K comparable, V any, G comparable](c Collection[K, V], fn func(value V, key K) G) *Associative[G, *Indexed[V]] {
	groups := NewAssociative[G, []V]()
	for k, v := range c.All() {
		g := fn(v, k)
		groups.Set(g, append(groups.Get(g).OrElse(nil), v))
	}
	out := NewAssociative[G, *Indexed[V]]()
	for g, members := range groups.All() {
		out.Set(g, &Indexed[V]{items: members})
	}
	return out
}

// KeyBy re-keys c by fn. When two values share a key the later value wins
// and the key keeps its first position.
//
//	byID := collections.KeyBy(users, func(u User, _ int) int { return u.ID })
func KeyBy[K comparable, V any, G comparable](c Collection[K, V], fn func(value V, key K) G) *Associative[G, V] {
	out := NewAssociative[G, V]()
	for k, v := range c.All() {
		out.Set(fn(v, k), v)
	}
	return out
}

// CountValues returns a typed frequency table of the values in c, in
// first-encountered order. Use [CountBy.Values] when V is not comparable.
func CountValues[K comparable, V comparable](c Collection[K, V]) *Associative[V, int] {
	out := NewAssociative[V, int]()
	for _, v := range c.All() {
		out.Set(v, out.Get(v).OrElse(0)+1)
	}
	return out
}

// Collect materializes c into an Associative. For a Lazy with repeated
// keys the later value wins.
func Collect[K comparable, V any](c Collection[K, V]) *Associative[K, V] {
	return AssociativeFrom(c.ToArray()...)
}

// ValuesOf materializes the values of c into an Indexed, discarding keys.
func ValuesOf[K comparable, V any](c Collection[K, V]) *Indexed[V] {
	out := &Indexed[V]{}
	for _, v := range c.All() {
		out.items = append(out.items, v)
	}
	return out
}

// Combine pairs keys with values positionally.
// Returns [ErrMismatchedLengths] if len(keys) != len(values).
//
//	m, _ := collections.Combine([]string{"a", "b"}, []int{1, 2})
//	// → {a: 1, b: 2}
func Combine[K comparable, V any](keys []K, values []V) (*Associative[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := NewAssociative[K, V]()
	for i, k := range keys {
		out.Set(k, values[i])
	}
	return out, nil
}
