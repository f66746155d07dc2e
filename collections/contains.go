package collections

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq2"

	"github.com/hasbyte1/go-laravel-support/arr"
)

// Contains answers membership questions about a collection.
type Contains[K comparable, V any] struct {
	source Collection[K, V]
}

// NewContains binds a Contains operator to source.
func NewContains[K comparable, V any](source Collection[K, V]) *Contains[K, V] {
	return &Contains[K, V]{source: source}
}

// Where reports whether fn returns Keep for some element. Stop ends the
// scan with false.
func (c *Contains[K, V]) Where(fn Predicate[K, V]) bool {
	for k, v := range c.source.All() {
		switch fn(v, k) {
		case Keep:
			return true
		case Stop:
			return false
		}
	}
	return false
}

// Value reports whether some element's value equals value.
func (c *Contains[K, V]) Value(value V) bool {
	return seq2.Exists(c.source.All(), func(_ K, v V) bool { return arr.Equal(v, value) })
}

// Key reports whether some element has key.
func (c *Contains[K, V]) Key(key K) bool {
	return seq2.Exists(c.source.All(), func(k K, _ V) bool { return k == key })
}

// Pair reports whether some element has both key and value.
func (c *Contains[K, V]) Pair(key K, value V) bool {
	return seq2.Exists(c.source.All(), func(k K, v V) bool { return k == key && arr.Equal(v, value) })
}

// Ensure checks quantified predicates over a collection.
type Ensure[K comparable, V any] struct {
	source Collection[K, V]
}

// NewEnsure binds an Ensure operator to source.
func NewEnsure[K comparable, V any](source Collection[K, V]) *Ensure[K, V] {
	return &Ensure[K, V]{source: source}
}

// All reports whether fn returns Keep for every element, stopping at the
// first Drop. Stop ends the scan and the elements seen so far decide.
// An empty collection satisfies All.
func (e *Ensure[K, V]) All(fn Predicate[K, V]) bool {
	return seq2.Every(e.scan(fn), func(_ K, v Verdict) bool { return v == Keep })
}

// None reports whether fn returns Keep for no element, stopping at the
// first Keep. Stop ends the scan and the elements seen so far decide.
func (e *Ensure[K, V]) None(fn Predicate[K, V]) bool {
	return seq2.None(e.scan(fn), func(_ K, v Verdict) bool { return v == Keep })
}

// scan yields each element's verdict until fn returns Stop.
func (e *Ensure[K, V]) scan(fn Predicate[K, V]) iter.Seq2[K, Verdict] {
	return func(yield func(K, Verdict) bool) {
		for k, v := range e.source.All() {
			verdict := fn(v, k)
			if verdict == Stop || !yield(k, verdict) {
				return
			}
		}
	}
}
