package collections

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Fixed is an eager collection with a size chosen at construction time.
//
// Slots are addressed by index 0 … Size()-1 and hold the zero value until
// set. Derived collections (filtering, chunking, sorting) get a size equal
// to their element count.
type Fixed[V any] struct {
	slots []V
}

// NewFixed creates a Fixed with size zero-valued slots. A negative size is
// treated as zero.
func NewFixed[V any](size int) *Fixed[V] {
	return &Fixed[V]{slots: make([]V, max(size, 0))}
}

// FixedFrom creates a Fixed sized and filled from values (copied).
func FixedFrom[V any](values ...V) *Fixed[V] {
	f := NewFixed[V](len(values))
	copy(f.slots, values)
	return f
}

// Size returns the number of slots.
func (f *Fixed[V]) Size() int { return len(f.slots) }

// Get returns the value at index, or [ErrIndexOutOfRange].
func (f *Fixed[V]) Get(index int) (V, error) {
	var zero V
	if index < 0 || index >= len(f.slots) {
		return zero, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(f.slots))
	}
	return f.slots[index], nil
}

// Set stores value at index in place, or returns [ErrIndexOutOfRange].
func (f *Fixed[V]) Set(index int, value V) error {
	if index < 0 || index >= len(f.slots) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(f.slots))
	}
	f.slots[index] = value
	return nil
}

// All returns the slots as (index, value).
func (f *Fixed[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range f.slots {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Count returns the number of slots.
func (f *Fixed[V]) Count() int { return len(f.slots) }

// Kind returns [KindArray].
func (f *Fixed[V]) Kind() Kind { return KindArray }

// ToArray returns the slots as (index, value) pairs.
func (f *Fixed[V]) ToArray() []Pair[int, V] {
	out := make([]Pair[int, V], len(f.slots))
	for i, v := range f.slots {
		out[i] = Pair[int, V]{Key: i, Value: v}
	}
	return out
}

// FromArray returns a new Fixed of len(pairs) slots holding the pair
// values in order.
func (f *Fixed[V]) FromArray(pairs []Pair[int, V]) *Fixed[V] {
	out := NewFixed[V](len(pairs))
	for i, p := range pairs {
		out.slots[i] = p.Value
	}
	return out
}

// Filter returns a new Fixed sized to the elements for which fn returns
// Keep. Stop ends the scan.
func (f *Fixed[V]) Filter(fn Predicate[int, V]) *Fixed[V] {
	kept := make([]V, 0, len(f.slots))
	for i, v := range f.slots {
		verdict := fn(v, i)
		if verdict == Stop {
			break
		}
		if verdict == Keep {
			kept = append(kept, v)
		}
	}
	return &Fixed[V]{slots: kept}
}

// FilterWith calls newPredicate once and filters with the result.
func (f *Fixed[V]) FilterWith(newPredicate func() Predicate[int, V]) *Fixed[V] {
	return f.Filter(newPredicate())
}

// Union returns a new Fixed holding the receiver's slots followed by
// other's values.
func (f *Fixed[V]) Union(other Collection[int, V]) *Fixed[V] {
	out := make([]V, len(f.slots), len(f.slots)+other.Count())
	copy(out, f.slots)
	for _, v := range other.All() {
		out = append(out, v)
	}
	return &Fixed[V]{slots: out}
}

// MarshalJSON encodes the slots as a JSON array.
func (f *Fixed[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.slots)
}

// String implements [fmt.Stringer].
func (f *Fixed[V]) String() string {
	b, err := f.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", f.slots)
	}
	return string(b)
}

// Dump logs the collection through the configured logger and returns f.
func (f *Fixed[V]) Dump() *Fixed[V] {
	b, err := f.MarshalJSON()
	dump(KindArray, len(f.slots), b, err)
	return f
}

// Macro calls the named registered macro on f, forwarding args.
func (f *Fixed[V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, f, args...)
}

// Select returns the positional selection operator bound to f.
func (f *Fixed[V]) Select() *Select[int, V, *Fixed[V]] { return NewSelect[int, V](f) }

// Skip returns the skipping operator bound to f.
func (f *Fixed[V]) Skip() *Skip[int, V, *Fixed[V]] { return NewSkip[int, V](f) }

// Sort returns the value-sorting operator bound to f.
func (f *Fixed[V]) Sort() *Sort[int, V, *Fixed[V]] { return NewSort[int, V](f) }

// SortKeys returns the key-sorting operator bound to f.
func (f *Fixed[V]) SortKeys() *SortKeys[int, V, *Fixed[V]] { return NewSortKeys[int, V](f) }

// SetOperation returns the set-algebra operator between f and compare.
func (f *Fixed[V]) SetOperation(compare Collection[int, V]) *SetOperation[int, V, *Fixed[V]] {
	return NewSetOperation[int, V](f, compare)
}

// Find returns the lookup operator bound to f.
func (f *Fixed[V]) Find() *Find[int, V] { return NewFind[int, V](f) }

// Is returns the structural predicate operator bound to f.
func (f *Fixed[V]) Is() *Is[int, V] { return NewIs[int, V](f) }

// Ensure returns the quantifier operator bound to f.
func (f *Fixed[V]) Ensure() *Ensure[int, V] { return NewEnsure[int, V](f) }

// Contains returns the membership operator bound to f.
func (f *Fixed[V]) Contains() *Contains[int, V] { return NewContains[int, V](f) }

// CountBy returns the counting operator bound to f.
func (f *Fixed[V]) CountBy() *CountBy[int, V] { return NewCountBy[int, V](f) }
