package collections

import "github.com/hasbyte1/go-laravel-support/arr"

// Select extracts positional sub-sequences. Results have the source's
// concrete type.
type Select[K comparable, V any, C Selectable[K, V, C]] struct {
	source C
}

// NewSelect binds a Select operator to source.
func NewSelect[K comparable, V any, C Selectable[K, V, C]](source C) *Select[K, V, C] {
	return &Select[K, V, C]{source: source}
}

// First returns the first n elements. A negative n selects nothing.
func (s *Select[K, V, C]) First(n int) C {
	return s.Slice(0, max(n, 0))
}

// Last returns the last n elements. A negative n selects nothing.
func (s *Select[K, V, C]) Last(n int) C {
	if n <= 0 {
		return s.Slice(0, 0)
	}
	return s.Slice(-n)
}

// Slice returns the elements selected by offset and an optional length
// with [arr.Slice] semantics. Lazy sources keep a non-negative offset and
// length lazy; negative values need the full length and materialize one
// traversal.
func (s *Select[K, V, C]) Slice(offset int, length ...int) C {
	lazyFriendly := offset >= 0 && (len(length) == 0 || length[0] >= 0)
	if s.source.Kind() == KindArray || !lazyFriendly {
		return s.source.FromArray(arr.Slice(s.source.ToArray(), offset, length...))
	}
	return s.source.FilterWith(func() Predicate[K, V] {
		i := 0
		return func(V, K) Verdict {
			at := i
			i++
			switch {
			case len(length) > 0 && at >= offset+length[0]:
				return Stop
			case at < offset:
				return Drop
			}
			return Keep
		}
	})
}

// Skip drops leading elements by position or predicate. Results have the
// source's concrete type.
type Skip[K comparable, V any, C Selectable[K, V, C]] struct {
	source C
}

// NewSkip binds a Skip operator to source.
func NewSkip[K comparable, V any, C Selectable[K, V, C]](source C) *Skip[K, V, C] {
	return &Skip[K, V, C]{source: source}
}

// First returns everything after the first n elements. A negative n skips
// nothing.
func (s *Skip[K, V, C]) First(n int) C {
	n = max(n, 0)
	if s.source.Kind() == KindArray {
		return s.source.FromArray(arr.Slice(s.source.ToArray(), n))
	}
	return s.source.FilterWith(func() Predicate[K, V] {
		i := 0
		return func(V, K) Verdict {
			i++
			return Check(i > n)
		}
	})
}

// Last returns everything but the last n elements. A negative n skips
// nothing.
func (s *Skip[K, V, C]) Last(n int) C {
	pairs := s.source.ToArray()
	if n <= 0 {
		return s.source.FromArray(pairs)
	}
	return s.source.FromArray(arr.Slice(pairs, 0, -n))
}

// Until drops elements until fn first returns Keep, then keeps that
// element and every element after it. Stop before the match ends the scan
// with an empty result.
//
//	// [John Jane Jane Jane Richard Richard], v == "Richard" → [Richard Richard]
func (s *Skip[K, V, C]) Until(fn Predicate[K, V]) C {
	return s.source.FilterWith(func() Predicate[K, V] {
		found := false
		return func(v V, k K) Verdict {
			if found {
				return Keep
			}
			verdict := fn(v, k)
			found = verdict == Keep
			return verdict
		}
	})
}

// While drops elements while fn returns Keep, then keeps the first element
// for which it returns Drop and every element after it.
func (s *Skip[K, V, C]) While(fn Predicate[K, V]) C {
	return s.source.FilterWith(func() Predicate[K, V] {
		found := false
		return func(v V, k K) Verdict {
			if found {
				return Keep
			}
			switch fn(v, k) {
			case Stop:
				return Stop
			case Keep:
				return Drop
			}
			found = true
			return Keep
		}
	})
}
