package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Indexed is an eager list collection: its keys are always 0 … Count()-1.
//
// Transformation methods return a new Indexed and leave the receiver
// unchanged; operations that drop elements (Filter, chunking, set algebra)
// re-index the result.
//
//	c := collections.NewIndexed("John", "Jane", "Jane", "Richard")
//	c.CountBy().Values() // → {John: 1, Jane: 2, Richard: 1}
type Indexed[V any] struct {
	items []V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewIndexed creates an Indexed from a variadic list of values (copied).
func NewIndexed[V any](values ...V) *Indexed[V] {
	return IndexedFrom(values)
}

// IndexedFrom creates an Indexed from a slice (the slice is copied).
func IndexedFrom[V any](values []V) *Indexed[V] {
	dst := make([]V, len(values))
	copy(dst, values)
	return &Indexed[V]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Values returns a copy of the underlying slice.
func (c *Indexed[V]) Values() []V {
	out := make([]V, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the value at index, or an empty value when index is out of
// range.
func (c *Indexed[V]) Get(index int) optional.Value[V] {
	if index < 0 || index >= len(c.items) {
		return optional.None[V]()
	}
	return optional.Some(c.items[index])
}

// Has reports whether index is a valid position.
func (c *Indexed[V]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// IsEmpty reports whether the collection has no elements.
func (c *Indexed[V]) IsEmpty() bool { return len(c.items) == 0 }

// Push returns a new collection with values appended.
func (c *Indexed[V]) Push(values ...V) *Indexed[V] {
	out := make([]V, len(c.items)+len(values))
	copy(out, c.items)
	copy(out[len(c.items):], values)
	return &Indexed[V]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection contract
// ─────────────────────────────────────────────────────────────────────────────

// All returns the elements as (index, value).
func (c *Indexed[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range c.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Count returns the number of elements.
func (c *Indexed[V]) Count() int { return len(c.items) }

// Kind returns [KindArray].
func (c *Indexed[V]) Kind() Kind { return KindArray }

// ToArray returns the elements as (index, value) pairs.
func (c *Indexed[V]) ToArray() []Pair[int, V] {
	out := make([]Pair[int, V], len(c.items))
	for i, v := range c.items {
		out[i] = Pair[int, V]{Key: i, Value: v}
	}
	return out
}

// FromArray returns a new Indexed holding the pair values in order. Keys
// are discarded.
func (c *Indexed[V]) FromArray(pairs []Pair[int, V]) *Indexed[V] {
	out := make([]V, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return &Indexed[V]{items: out}
}

// Filter returns a new, re-indexed collection with the elements for which
// fn returns Keep. Stop ends the scan.
func (c *Indexed[V]) Filter(fn Predicate[int, V]) *Indexed[V] {
	out := make([]V, 0, len(c.items))
	for i, v := range c.items {
		verdict := fn(v, i)
		if verdict == Stop {
			break
		}
		if verdict == Keep {
			out = append(out, v)
		}
	}
	return &Indexed[V]{items: out}
}

// FilterWith calls newPredicate once and filters with the result.
func (c *Indexed[V]) FilterWith(newPredicate func() Predicate[int, V]) *Indexed[V] {
	return c.Filter(newPredicate())
}

// Union returns a new collection with other's values appended.
func (c *Indexed[V]) Union(other Collection[int, V]) *Indexed[V] {
	out := c.Values()
	for _, v := range other.All() {
		out = append(out, v)
	}
	return &Indexed[V]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, index) for every element.
func (c *Indexed[V]) Each(fn func(V, int)) {
	for i, v := range c.items {
		fn(v, i)
	}
}

// Tap calls fn(c) for side-effects and returns c unchanged.
func (c *Indexed[V]) Tap(fn func(*Indexed[V])) *Indexed[V] {
	fn(c)
	return c
}

// MarshalJSON encodes the values as a JSON array.
func (c *Indexed[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Indexed[V]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Dump logs the collection through the configured logger and returns c.
func (c *Indexed[V]) Dump() *Indexed[V] {
	b, err := c.MarshalJSON()
	dump(KindArray, len(c.items), b, err)
	return c
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Indexed[V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operators
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the positional selection operator bound to c.
func (c *Indexed[V]) Select() *Select[int, V, *Indexed[V]] { return NewSelect[int, V](c) }

// Skip returns the skipping operator bound to c.
func (c *Indexed[V]) Skip() *Skip[int, V, *Indexed[V]] { return NewSkip[int, V](c) }

// Sort returns the value-sorting operator bound to c.
func (c *Indexed[V]) Sort() *Sort[int, V, *Indexed[V]] { return NewSort[int, V](c) }

// SortKeys returns the key-sorting operator bound to c.
func (c *Indexed[V]) SortKeys() *SortKeys[int, V, *Indexed[V]] { return NewSortKeys[int, V](c) }

// SetOperation returns the set-algebra operator between c and compare.
func (c *Indexed[V]) SetOperation(compare Collection[int, V]) *SetOperation[int, V, *Indexed[V]] {
	return NewSetOperation[int, V](c, compare)
}

// Find returns the lookup operator bound to c.
func (c *Indexed[V]) Find() *Find[int, V] { return NewFind[int, V](c) }

// Is returns the structural predicate operator bound to c.
func (c *Indexed[V]) Is() *Is[int, V] { return NewIs[int, V](c) }

// Ensure returns the quantifier operator bound to c.
func (c *Indexed[V]) Ensure() *Ensure[int, V] { return NewEnsure[int, V](c) }

// Contains returns the membership operator bound to c.
func (c *Indexed[V]) Contains() *Contains[int, V] { return NewContains[int, V](c) }

// CountBy returns the counting operator bound to c.
func (c *Indexed[V]) CountBy() *CountBy[int, V] { return NewCountBy[int, V](c) }
