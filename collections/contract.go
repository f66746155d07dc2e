package collections

import "iter"

// Kind tells the operation objects how a collection stores its elements.
//
// Operations pick a fast path for [KindArray] collections (bulk slice
// primitives over ToArray) and fall back to predicate-driven iteration
// otherwise.
type Kind uint8

const (
	// KindArray marks eager collections backed by in-memory storage whose
	// ToArray/FromArray round-trip exactly.
	KindArray Kind = iota + 1
	// KindLazy marks generator-backed collections that materialize nothing
	// until consumed.
	KindLazy
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindLazy:
		return "lazy"
	default:
		return "unknown"
	}
}

// Collection is the read surface shared by every collection.
//
// Accept Collection in your own functions so that eager and lazy
// collections can be passed interchangeably.
type Collection[K comparable, V any] interface {
	// All returns the elements in order. Ranging over it twice traverses
	// the collection twice.
	All() iter.Seq2[K, V]

	// Count returns the number of elements. For lazy collections this
	// consumes one full traversal.
	Count() int

	// Kind reports the storage strategy.
	Kind() Kind

	// ToArray returns the elements as ordered pairs.
	ToArray() []Pair[K, V]
}

// Filterable is a [Collection] that can produce a filtered copy of itself.
type Filterable[K comparable, V any, C any] interface {
	Collection[K, V]

	// Filter returns a new collection of the same type holding the
	// elements for which fn returns Keep. Stop ends the scan.
	Filter(fn Predicate[K, V]) C
}

// Selectable is a [Filterable] that can also be rebuilt from pairs, which
// lets positional operations address its elements by index.
type Selectable[K comparable, V any, C any] interface {
	Filterable[K, V, C]

	// FilterWith is Filter with a predicate built by newPredicate for each
	// traversal. Stateful predicates (counters, flags) must go through
	// FilterWith so that lazy collections restart them on every pass.
	FilterWith(newPredicate func() Predicate[K, V]) C

	// FromArray builds a new collection of the same type from pairs.
	FromArray(pairs []Pair[K, V]) C
}

// ArrStorage is the constraint satisfied by every collection the sort and
// chunk operators accept as a source. Eager implementations report
// [KindArray] from Kind.
type ArrStorage[K comparable, V any, C any] interface {
	Selectable[K, V, C]
}

// Chunkable is the constraint satisfied by every collection [NewChunk]
// accepts. Chunks are Lazy values holding the source type, so chunking is
// a package-level constructor rather than a method on the collections.
type Chunkable[K comparable, V any, C any] interface {
	ArrStorage[K, V, C]
}

// Mergeable is implemented by collections that support set algebra.
type Mergeable[K comparable, V any, C any] interface {
	ArrStorage[K, V, C]

	// Union returns a new collection with the elements of other added to
	// the receiver's.
	Union(other Collection[K, V]) C
}

// sized matches any collection regardless of its type parameters.
type sized interface {
	Count() int
	Kind() Kind
}

// lazyView wraps any collection as a Lazy traversing it.
func lazyView[K comparable, V any](c Collection[K, V]) *Lazy[K, V] {
	return NewLazy(c.All)
}
