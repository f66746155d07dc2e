package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq2"
)

// Lazy is a generator-backed collection.
//
// It stores a factory instead of elements. Every traversal calls the
// factory again and walks the fresh sequence it returns, so a Lazy can be
// consumed any number of times and by several consumers independently.
// The factory must not depend on state that a traversal changes.
//
// Keys need not be unique: [Lazy.ToArray] returns ordered pairs, never a
// map.
//
//	squares := collections.NewLazy(func() iter.Seq2[int, int] {
//	    return func(yield func(int, int) bool) {
//	        for i := 1; i <= 3; i++ {
//	            if !yield(i, i*i) {
//	                return
//	            }
//	        }
//	    }
//	})
//	squares.ToArray() // → [(1, 1) (2, 4) (3, 9)]
type Lazy[K comparable, V any] struct {
	factory func() iter.Seq2[K, V]
}

// NewLazy creates a Lazy whose traversals are produced by factory.
func NewLazy[K comparable, V any](factory func() iter.Seq2[K, V]) *Lazy[K, V] {
	return &Lazy[K, V]{factory: factory}
}

// LazyOf creates a Lazy over seq. seq itself must be re-runnable, which is
// true of every iter.Seq2 that does not close over consumed state.
func LazyOf[K comparable, V any](seq iter.Seq2[K, V]) *Lazy[K, V] {
	return NewLazy(func() iter.Seq2[K, V] { return seq })
}

// LazyFromArray creates a Lazy yielding pairs in order. pairs is copied.
func LazyFromArray[K comparable, V any](pairs []Pair[K, V]) *Lazy[K, V] {
	own := make([]Pair[K, V], len(pairs))
	copy(own, pairs)
	return NewLazy(func() iter.Seq2[K, V] { return pairSeq(own) })
}

// EmptyLazy creates a Lazy with no elements.
func EmptyLazy[K comparable, V any]() *Lazy[K, V] {
	return LazyFromArray[K, V](nil)
}

func pairSeq[K comparable, V any](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Collection contract
// ─────────────────────────────────────────────────────────────────────────────

// All runs the factory and returns the fresh sequence.
func (l *Lazy[K, V]) All() iter.Seq2[K, V] { return l.factory() }

// Count consumes one traversal and returns its length.
func (l *Lazy[K, V]) Count() int {
	return seq2.Reduce(l.All(), func(n int, _ K, _ V) int { return n + 1 }, 0)
}

// Kind returns [KindLazy].
func (l *Lazy[K, V]) Kind() Kind { return KindLazy }

// ToArray drains one traversal into ordered pairs.
func (l *Lazy[K, V]) ToArray() []Pair[K, V] {
	out := make([]Pair[K, V], 0)
	for k, v := range l.All() {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// FromArray returns a new Lazy yielding pairs in order.
func (l *Lazy[K, V]) FromArray(pairs []Pair[K, V]) *Lazy[K, V] {
	return LazyFromArray(pairs)
}

// Filter returns a new Lazy yielding the elements for which fn returns
// Keep. Stop ends the traversal without yielding the current element. The
// receiver is not modified.
func (l *Lazy[K, V]) Filter(fn Predicate[K, V]) *Lazy[K, V] {
	return l.FilterWith(func() Predicate[K, V] { return fn })
}

// FilterWith is Filter with a predicate created by newPredicate at the
// start of every traversal.
func (l *Lazy[K, V]) FilterWith(newPredicate func() Predicate[K, V]) *Lazy[K, V] {
	source := l.factory
	return NewLazy(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			fn := newPredicate()
			for k, v := range source() {
				switch fn(v, k) {
				case Stop:
					return
				case Keep:
					if !yield(k, v) {
						return
					}
				}
			}
		}
	})
}

// Union returns a new Lazy yielding the receiver's elements followed by
// other's. Duplicate keys are kept.
func (l *Lazy[K, V]) Union(other Collection[K, V]) *Lazy[K, V] {
	source := l.factory
	return NewLazy(func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {
			for k, v := range source() {
				if !yield(k, v) {
					return
				}
			}
			for k, v := range other.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Transform replaces every value with fn(value, key), keeping keys.
//
// Transform mutates the receiver: its factory is wrapped in place and the
// same *Lazy is returned for chaining.
func (l *Lazy[K, V]) Transform(fn func(value V, key K) V) *Lazy[K, V] {
	source := l.factory
	l.factory = func() iter.Seq2[K, V] {
		return seq2.Map(source(), func(k K, v V) (K, V) { return k, fn(v, k) })
	}
	return l
}

// TransformKeys replaces every key with fn(value, key), keeping values.
//
// Like [Lazy.Transform] it mutates the receiver and returns it.
func (l *Lazy[K, V]) TransformKeys(fn func(value V, key K) K) *Lazy[K, V] {
	source := l.factory
	l.factory = func() iter.Seq2[K, V] {
		return seq2.Map(source(), func(k K, v V) (K, V) { return fn(v, k), v })
	}
	return l
}

// ApplyToKeys is the non-mutating form of [Lazy.TransformKeys]: it clones
// the receiver, transforms the clone's keys and returns the clone.
func (l *Lazy[K, V]) ApplyToKeys(fn func(value V, key K) K) *Lazy[K, V] {
	return l.Clone().TransformKeys(fn)
}

// Clone returns a new Lazy sharing the receiver's current factory.
func (l *Lazy[K, V]) Clone() *Lazy[K, V] {
	return NewLazy(l.factory)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization & debugging
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON drains one traversal and encodes it as [[key, value], ...].
func (l *Lazy[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToArray())
}

// UnmarshalJSON rebuilds the factory from encoded pairs and immediately
// runs one traversal, so malformed input fails here rather than on first
// use. Decoding errors wrap [ErrMalformedPairs].
func (l *Lazy[K, V]) UnmarshalJSON(data []byte) error {
	log := settings().Logger
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		log.Warn().Err(err).Msg("lazy collection: decode failed")
		return fmt.Errorf("%w: %w", ErrMalformedPairs, err)
	}
	l.factory = LazyFromArray(pairs).factory
	n := len(l.ToArray())
	log.Debug().Int("pairs", n).Msg("lazy collection: rebuilt from serialized pairs")
	return nil
}

// String returns the JSON representation. It implements [fmt.Stringer].
func (l *Lazy[K, V]) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.ToArray())
	}
	return string(b)
}

// Each calls fn(value, key) for every element of one traversal.
func (l *Lazy[K, V]) Each(fn func(V, K)) {
	for k, v := range l.All() {
		fn(v, k)
	}
}

// Tap calls fn(l) for side-effects and returns l unchanged.
func (l *Lazy[K, V]) Tap(fn func(*Lazy[K, V])) *Lazy[K, V] {
	fn(l)
	return l
}

// Dump logs the collection through the configured logger and returns l.
func (l *Lazy[K, V]) Dump() *Lazy[K, V] {
	pairs := l.ToArray()
	b, err := json.Marshal(pairs)
	dump(KindLazy, len(pairs), b, err)
	return l
}

// Macro calls the named registered macro on l, forwarding args.
func (l *Lazy[K, V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operators
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the positional selection operator bound to l.
func (l *Lazy[K, V]) Select() *Select[K, V, *Lazy[K, V]] { return NewSelect[K, V](l) }

// Skip returns the skipping operator bound to l.
func (l *Lazy[K, V]) Skip() *Skip[K, V, *Lazy[K, V]] { return NewSkip[K, V](l) }

// Sort returns the value-sorting operator bound to l.
func (l *Lazy[K, V]) Sort() *Sort[K, V, *Lazy[K, V]] { return NewSort[K, V](l) }

// SortKeys returns the key-sorting operator bound to l.
func (l *Lazy[K, V]) SortKeys() *SortKeys[K, V, *Lazy[K, V]] { return NewSortKeys[K, V](l) }

// SetOperation returns the set-algebra operator between l and compare.
func (l *Lazy[K, V]) SetOperation(compare Collection[K, V]) *SetOperation[K, V, *Lazy[K, V]] {
	return NewSetOperation[K, V](l, compare)
}

// Find returns the lookup operator bound to l.
func (l *Lazy[K, V]) Find() *Find[K, V] { return NewFind[K, V](l) }

// Is returns the structural predicate operator bound to l.
func (l *Lazy[K, V]) Is() *Is[K, V] { return NewIs[K, V](l) }

// Ensure returns the quantifier operator bound to l.
func (l *Lazy[K, V]) Ensure() *Ensure[K, V] { return NewEnsure[K, V](l) }

// Contains returns the membership operator bound to l.
func (l *Lazy[K, V]) Contains() *Contains[K, V] { return NewContains[K, V](l) }

// CountBy returns the counting operator bound to l.
func (l *Lazy[K, V]) CountBy() *CountBy[K, V] { return NewCountBy[K, V](l) }
