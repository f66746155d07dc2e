package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Associative is an eager, insertion-ordered map.
//
// Keys are unique. Iteration, ToArray and JSON encoding follow insertion
// order. Operations that derive a new Associative keep the original keys.
//
//	user := collections.AssociativeFrom(
//	    collections.P[any, any]("firstname", "John"),
//	    collections.P[any, any]("lastname", "Doe"),
//	)
type Associative[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewAssociative creates an empty Associative.
func NewAssociative[K comparable, V any]() *Associative[K, V] {
	return &Associative[K, V]{values: make(map[K]V)}
}

// AssociativeFrom creates an Associative from pairs. A repeated key keeps
// its first position and takes the last value.
func AssociativeFrom[K comparable, V any](pairs ...Pair[K, V]) *Associative[K, V] {
	a := &Associative[K, V]{
		keys:   make([]K, 0, len(pairs)),
		values: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Storage API
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, or an empty value.
func (a *Associative[K, V]) Get(key K) optional.Value[V] {
	v, ok := a.values[key]
	if !ok {
		return optional.None[V]()
	}
	return optional.Some(v)
}

// Has reports whether key is present.
func (a *Associative[K, V]) Has(key K) bool {
	_, ok := a.values[key]
	return ok
}

// Set stores value under key, appending the key if it is new.
func (a *Associative[K, V]) Set(key K, value V) {
	if a.values == nil {
		a.values = make(map[K]V)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Add stores value under a new key. It returns [ErrKeyExists] if key is
// already present.
func (a *Associative[K, V]) Add(key K, value V) error {
	if a.Has(key) {
		return fmt.Errorf("%w: %v", ErrKeyExists, key)
	}
	a.Set(key, value)
	return nil
}

// Remove deletes key. It returns [ErrKeyNotFound] if key is absent.
func (a *Associative[K, V]) Remove(key K) error {
	if !a.Has(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	delete(a.values, key)
	a.keys = slices.DeleteFunc(a.keys, func(k K) bool { return k == key })
	return nil
}

// Keys returns the keys in insertion order.
func (a *Associative[K, V]) Keys() []K { return slices.Clone(a.keys) }

// Values returns the values in insertion order.
func (a *Associative[K, V]) Values() []V {
	out := make([]V, len(a.keys))
	for i, k := range a.keys {
		out[i] = a.values[k]
	}
	return out
}

// IsEmpty reports whether the collection has no elements.
func (a *Associative[K, V]) IsEmpty() bool { return len(a.keys) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Collection contract
// ─────────────────────────────────────────────────────────────────────────────

// All returns the elements in insertion order.
func (a *Associative[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Count returns the number of elements.
func (a *Associative[K, V]) Count() int { return len(a.keys) }

// Kind returns [KindArray].
func (a *Associative[K, V]) Kind() Kind { return KindArray }

// ToArray returns the elements as ordered pairs.
func (a *Associative[K, V]) ToArray() []Pair[K, V] {
	out := make([]Pair[K, V], len(a.keys))
	for i, k := range a.keys {
		out[i] = Pair[K, V]{Key: k, Value: a.values[k]}
	}
	return out
}

// FromArray returns a new Associative built from pairs. See
// [AssociativeFrom] for duplicate keys.
func (a *Associative[K, V]) FromArray(pairs []Pair[K, V]) *Associative[K, V] {
	return AssociativeFrom(pairs...)
}

// Filter returns a new Associative with the elements for which fn returns
// Keep, keys preserved. Stop ends the scan.
func (a *Associative[K, V]) Filter(fn Predicate[K, V]) *Associative[K, V] {
	out := NewAssociative[K, V]()
	for _, k := range a.keys {
		v := a.values[k]
		verdict := fn(v, k)
		if verdict == Stop {
			break
		}
		if verdict == Keep {
			out.Set(k, v)
		}
	}
	return out
}

// FilterWith calls newPredicate once and filters with the result.
func (a *Associative[K, V]) FilterWith(newPredicate func() Predicate[K, V]) *Associative[K, V] {
	return a.Filter(newPredicate())
}

// Union returns a new Associative with the elements of other whose keys
// are not yet present appended. Existing keys keep the receiver's value.
func (a *Associative[K, V]) Union(other Collection[K, V]) *Associative[K, V] {
	out := AssociativeFrom(a.ToArray()...)
	for k, v := range other.All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & debugging
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every element.
func (a *Associative[K, V]) Each(fn func(V, K)) {
	for _, k := range a.keys {
		fn(a.values[k], k)
	}
}

// Tap calls fn(a) for side-effects and returns a unchanged.
func (a *Associative[K, V]) Tap(fn func(*Associative[K, V])) *Associative[K, V] {
	fn(a)
	return a
}

// MarshalJSON encodes the elements as [[key, value], ...] so that order
// and non-string keys survive.
func (a *Associative[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToArray())
}

// UnmarshalJSON decodes [[key, value], ...].
func (a *Associative[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPairs, err)
	}
	*a = *AssociativeFrom(pairs...)
	return nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (a *Associative[K, V]) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.ToArray())
	}
	return string(b)
}

// Dump logs the collection through the configured logger and returns a.
func (a *Associative[K, V]) Dump() *Associative[K, V] {
	b, err := a.MarshalJSON()
	dump(KindArray, len(a.keys), b, err)
	return a
}

// Macro calls the named registered macro on a, forwarding args.
func (a *Associative[K, V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, a, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operators
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the positional selection operator bound to a.
func (a *Associative[K, V]) Select() *Select[K, V, *Associative[K, V]] { return NewSelect[K, V](a) }

// Skip returns the skipping operator bound to a.
func (a *Associative[K, V]) Skip() *Skip[K, V, *Associative[K, V]] { return NewSkip[K, V](a) }

// Sort returns the value-sorting operator bound to a.
func (a *Associative[K, V]) Sort() *Sort[K, V, *Associative[K, V]] { return NewSort[K, V](a) }

// SortKeys returns the key-sorting operator bound to a.
func (a *Associative[K, V]) SortKeys() *SortKeys[K, V, *Associative[K, V]] {
	return NewSortKeys[K, V](a)
}

// SetOperation returns the set-algebra operator between a and compare.
func (a *Associative[K, V]) SetOperation(compare Collection[K, V]) *SetOperation[K, V, *Associative[K, V]] {
	return NewSetOperation[K, V](a, compare)
}

// Find returns the lookup operator bound to a.
func (a *Associative[K, V]) Find() *Find[K, V] { return NewFind[K, V](a) }

// Is returns the structural predicate operator bound to a.
func (a *Associative[K, V]) Is() *Is[K, V] { return NewIs[K, V](a) }

// Ensure returns the quantifier operator bound to a.
func (a *Associative[K, V]) Ensure() *Ensure[K, V] { return NewEnsure[K, V](a) }

// Contains returns the membership operator bound to a.
func (a *Associative[K, V]) Contains() *Contains[K, V] { return NewContains[K, V](a) }

// CountBy returns the counting operator bound to a.
func (a *Associative[K, V]) CountBy() *CountBy[K, V] { return NewCountBy[K, V](a) }
