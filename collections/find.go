package collections

import (
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq2"

	"github.com/hasbyte1/go-laravel-support/arr"
)

// Find looks up keys and values. Every lookup returns an optional.Value;
// a miss is empty and never collides with a stored nil, false, 0 or "".
type Find[K comparable, V any] struct {
	source Collection[K, V]
}

// NewFind binds a Find operator to source.
func NewFind[K comparable, V any](source Collection[K, V]) *Find[K, V] {
	return &Find[K, V]{source: source}
}

// Key returns the key of the first element whose value equals value.
func (f *Find[K, V]) Key(value V) optional.Value[K] {
	if f.source.Kind() == KindArray {
		pairs := f.source.ToArray()
		i := arr.Search(pairs, func(p Pair[K, V]) bool { return arr.Equal(p.Value, value) })
		if i < 0 {
			return optional.None[K]()
		}
		return optional.Some(pairs[i].Key)
	}
	return f.FirstKey(func(v V, _ K) Verdict { return Check(arr.Equal(v, value)) })
}

// Value returns the value of the first element stored under key.
func (f *Find[K, V]) Value(key K) optional.Value[V] {
	for _, v := range seq2.FilterByKey(f.source.All(), func(k K) bool { return k == key }) {
		return optional.Some(v)
	}
	return optional.None[V]()
}

// First returns the value of the first element for which fn returns Keep.
func (f *Find[K, V]) First(fn Predicate[K, V]) optional.Value[V] {
	_, v, ok := f.first(fn)
	if !ok {
		return optional.None[V]()
	}
	return optional.Some(v)
}

// FirstKey returns the key of the first element for which fn returns Keep.
func (f *Find[K, V]) FirstKey(fn Predicate[K, V]) optional.Value[K] {
	k, _, ok := f.first(fn)
	if !ok {
		return optional.None[K]()
	}
	return optional.Some(k)
}

// Last returns the value of the last element for which fn returns Keep.
// The whole collection is scanned unless fn returns Stop.
func (f *Find[K, V]) Last(fn Predicate[K, V]) optional.Value[V] {
	_, v, ok := f.last(fn)
	if !ok {
		return optional.None[V]()
	}
	return optional.Some(v)
}

// LastKey returns the key of the last element for which fn returns Keep.
func (f *Find[K, V]) LastKey(fn Predicate[K, V]) optional.Value[K] {
	k, _, ok := f.last(fn)
	if !ok {
		return optional.None[K]()
	}
	return optional.Some(k)
}

// Before returns the value immediately preceding the first element equal
// to value. Empty when value is absent or is the first element.
func (f *Find[K, V]) Before(value V) optional.Value[V] {
	return f.BeforeWhere(func(v V, _ K) Verdict { return Check(arr.Equal(v, value)) })
}

// After returns the value immediately following the first element equal
// to value. Empty when value is absent or is the last element.
func (f *Find[K, V]) After(value V) optional.Value[V] {
	return f.AfterWhere(func(v V, _ K) Verdict { return Check(arr.Equal(v, value)) })
}

// BeforeWhere returns the value immediately preceding the first element
// for which fn returns Keep.
func (f *Find[K, V]) BeforeWhere(fn Predicate[K, V]) optional.Value[V] {
	previous := optional.None[V]()
	for k, v := range f.source.All() {
		switch fn(v, k) {
		case Keep:
			return previous
		case Stop:
			return optional.None[V]()
		}
		previous = optional.Some(v)
	}
	return optional.None[V]()
}

// AfterWhere returns the value immediately following the first element
// for which fn returns Keep.
func (f *Find[K, V]) AfterWhere(fn Predicate[K, V]) optional.Value[V] {
	matched := false
	for k, v := range f.source.All() {
		if matched {
			return optional.Some(v)
		}
		switch fn(v, k) {
		case Keep:
			matched = true
		case Stop:
			return optional.None[V]()
		}
	}
	return optional.None[V]()
}

func (f *Find[K, V]) first(fn Predicate[K, V]) (key K, value V, found bool) {
	for k, v := range f.source.All() {
		switch fn(v, k) {
		case Keep:
			return k, v, true
		case Stop:
			return key, value, false
		}
	}
	return key, value, false
}

func (f *Find[K, V]) last(fn Predicate[K, V]) (key K, value V, found bool) {
	for k, v := range f.source.All() {
		verdict := fn(v, k)
		if verdict == Stop {
			break
		}
		if verdict == Keep {
			key, value, found = k, v, true
		}
	}
	return key, value, found
}
