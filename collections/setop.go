package collections

import "github.com/hasbyte1/go-laravel-support/arr"

// SetOperation performs set algebra between a collection ("this") and a
// compare collection. Results always have this's concrete type; neither
// operand is modified.
//
// When both operands report [KindArray] the work is done with bulk slice
// primitives: hashed (O(n+m)) for exact matching of values that
// [arr.Fingerprintable] accepts, pairwise otherwise. Otherwise this is filtered through compare's [Contains]
// operator, which is O(n·m).
//
// Values are compared with [arr.Equal]; keys with ==. The *Using variants
// replace the comparison on one or both sides with a callback.
type SetOperation[K comparable, V any, C Mergeable[K, V, C]] struct {
	this    C
	compare Collection[K, V]
}

// NewSetOperation binds a SetOperation to this and compare.
func NewSetOperation[K comparable, V any, C Mergeable[K, V, C]](this C, compare Collection[K, V]) *SetOperation[K, V, C] {
	return &SetOperation[K, V, C]{this: this, compare: compare}
}

// matcher decides whether two entries match. hash is nil when only eq can
// decide, which rules out the hashed fast path. When hashable is set, hash
// agrees with eq only for the entries it accepts.
type matcher[K comparable, V any] struct {
	hash     func(Pair[K, V]) any
	hashable func(Pair[K, V]) bool
	eq       func(a, b Pair[K, V]) bool
}

// hashes reports whether every entry of every operand can go through hash.
func (m matcher[K, V]) hashes(operands ...[]Pair[K, V]) bool {
	if m.hash == nil {
		return false
	}
	if m.hashable == nil {
		return true
	}
	for _, pairs := range operands {
		for _, p := range pairs {
			if !m.hashable(p) {
				return false
			}
		}
	}
	return true
}

func valueHashable[K comparable, V any](p Pair[K, V]) bool { return arr.Fingerprintable(p.Value) }

func byValue[K comparable, V any]() matcher[K, V] {
	return matcher[K, V]{
		hash:     func(p Pair[K, V]) any { return arr.Fingerprint(p.Value) },
		hashable: valueHashable[K, V],
		eq:       func(a, b Pair[K, V]) bool { return arr.Equal(a.Value, b.Value) },
	}
}

func byValueUsing[K comparable, V any](eq func(a, b V) bool) matcher[K, V] {
	return matcher[K, V]{eq: func(a, b Pair[K, V]) bool { return eq(a.Value, b.Value) }}
}

func byKey[K comparable, V any]() matcher[K, V] {
	return matcher[K, V]{
		hash: func(p Pair[K, V]) any { return p.Key },
		eq:   func(a, b Pair[K, V]) bool { return a.Key == b.Key },
	}
}

func byKeyUsing[K comparable, V any](eq func(a, b K) bool) matcher[K, V] {
	return matcher[K, V]{eq: func(a, b Pair[K, V]) bool { return eq(a.Key, b.Key) }}
}

type assocHash[K comparable] struct {
	key   K
	value string
}

func byAssoc[K comparable, V any]() matcher[K, V] {
	return matcher[K, V]{
		hash:     func(p Pair[K, V]) any { return assocHash[K]{key: p.Key, value: arr.Fingerprint(p.Value)} },
		hashable: valueHashable[K, V],
		eq:       func(a, b Pair[K, V]) bool { return a.Key == b.Key && arr.Equal(a.Value, b.Value) },
	}
}

func byAssocUsing[K comparable, V any](keq func(a, b K) bool, veq func(a, b V) bool) matcher[K, V] {
	if keq == nil {
		keq = func(a, b K) bool { return a == b }
	}
	if veq == nil {
		veq = func(a, b V) bool { return arr.Equal(a, b) }
	}
	return matcher[K, V]{eq: func(a, b Pair[K, V]) bool { return keq(a.Key, b.Key) && veq(a.Value, b.Value) }}
}

// ─────────────────────────────────────────────────────────────────────────────
// Difference
// ─────────────────────────────────────────────────────────────────────────────

// DifferenceValue keeps the elements whose value is absent from compare.
func (s *SetOperation[K, V, C]) DifferenceValue() C {
	return s.apply(byValue[K, V](), false)
}

// DifferenceValueUsing is DifferenceValue with values matched by eq.
func (s *SetOperation[K, V, C]) DifferenceValueUsing(eq func(a, b V) bool) C {
	return s.apply(byValueUsing[K](eq), false)
}

// DifferenceKey keeps the elements whose key is absent from compare.
func (s *SetOperation[K, V, C]) DifferenceKey() C {
	return s.apply(byKey[K, V](), false)
}

// DifferenceKeyUsing is DifferenceKey with keys matched by eq.
func (s *SetOperation[K, V, C]) DifferenceKeyUsing(eq func(a, b K) bool) C {
	return s.apply(byKeyUsing[K, V](eq), false)
}

// DifferenceAssoc keeps the elements whose key/value pair is absent from
// compare.
func (s *SetOperation[K, V, C]) DifferenceAssoc() C {
	return s.apply(byAssoc[K, V](), false)
}

// DifferenceAssocUsingKey is DifferenceAssoc with keys matched by keq and
// values matched exactly.
func (s *SetOperation[K, V, C]) DifferenceAssocUsingKey(keq func(a, b K) bool) C {
	return s.apply(byAssocUsing[K, V](keq, nil), false)
}

// DifferenceAssocUsingValue is DifferenceAssoc with values matched by veq
// and keys matched exactly.
func (s *SetOperation[K, V, C]) DifferenceAssocUsingValue(veq func(a, b V) bool) C {
	return s.apply(byAssocUsing[K](nil, veq), false)
}

// DifferenceAssocUsing is DifferenceAssoc with both sides matched by
// callbacks.
func (s *SetOperation[K, V, C]) DifferenceAssocUsing(keq func(a, b K) bool, veq func(a, b V) bool) C {
	return s.apply(byAssocUsing(keq, veq), false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Intersection
// ─────────────────────────────────────────────────────────────────────────────

// IntersectValue keeps the elements whose value is present in compare.
func (s *SetOperation[K, V, C]) IntersectValue() C {
	return s.apply(byValue[K, V](), true)
}

// IntersectValueUsing is IntersectValue with values matched by eq.
func (s *SetOperation[K, V, C]) IntersectValueUsing(eq func(a, b V) bool) C {
	return s.apply(byValueUsing[K](eq), true)
}

// IntersectKey keeps the elements whose key is present in compare.
func (s *SetOperation[K, V, C]) IntersectKey() C {
	return s.apply(byKey[K, V](), true)
}

// IntersectKeyUsing is IntersectKey with keys matched by eq.
func (s *SetOperation[K, V, C]) IntersectKeyUsing(eq func(a, b K) bool) C {
	return s.apply(byKeyUsing[K, V](eq), true)
}

// IntersectAssoc keeps the elements whose key/value pair is present in
// compare.
func (s *SetOperation[K, V, C]) IntersectAssoc() C {
	return s.apply(byAssoc[K, V](), true)
}

// IntersectAssocUsingKey is IntersectAssoc with keys matched by keq.
func (s *SetOperation[K, V, C]) IntersectAssocUsingKey(keq func(a, b K) bool) C {
	return s.apply(byAssocUsing[K, V](keq, nil), true)
}

// IntersectAssocUsingValue is IntersectAssoc with values matched by veq.
func (s *SetOperation[K, V, C]) IntersectAssocUsingValue(veq func(a, b V) bool) C {
	return s.apply(byAssocUsing[K](nil, veq), true)
}

// IntersectAssocUsing is IntersectAssoc with both sides matched by
// callbacks.
func (s *SetOperation[K, V, C]) IntersectAssocUsing(keq func(a, b K) bool, veq func(a, b V) bool) C {
	return s.apply(byAssocUsing(keq, veq), true)
}

// ─────────────────────────────────────────────────────────────────────────────
// Symmetric difference
// ─────────────────────────────────────────────────────────────────────────────

// SymmetricDifferenceValue returns the elements whose value appears on
// only one side: this's first, then compare's, merged with Union.
func (s *SetOperation[K, V, C]) SymmetricDifferenceValue() C {
	return s.symmetric(byValue[K, V]())
}

// SymmetricDifferenceKey returns the elements whose key appears on only
// one side.
func (s *SetOperation[K, V, C]) SymmetricDifferenceKey() C {
	return s.symmetric(byKey[K, V]())
}

func (s *SetOperation[K, V, C]) symmetric(m matcher[K, V]) C {
	return s.apply(m, false).Union(s.inverse(m))
}

// inverse computes compare minus this with the operands swapped. An
// array-backed compare is viewed as an Associative so the swapped
// operation keeps the fast path.
func (s *SetOperation[K, V, C]) inverse(m matcher[K, V]) Collection[K, V] {
	if s.compare.Kind() == KindArray {
		return NewSetOperation[K, V](AssociativeFrom(s.compare.ToArray()...), s.this).apply(m, false)
	}
	return NewSetOperation[K, V](lazyView(s.compare), s.this).apply(m, false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Strategies
// ─────────────────────────────────────────────────────────────────────────────

// apply keeps the elements of this that have (retain) or lack (!retain) a
// match in compare.
func (s *SetOperation[K, V, C]) apply(m matcher[K, V], retain bool) C {
	if s.this.Kind() == KindArray && s.compare.Kind() == KindArray {
		return s.this.FromArray(s.bulk(m, retain))
	}
	contains := NewContains(s.compare)
	return s.this.Filter(func(v V, k K) Verdict {
		p := Pair[K, V]{Key: k, Value: v}
		found := contains.Where(func(cv V, ck K) Verdict {
			return Check(m.eq(p, Pair[K, V]{Key: ck, Value: cv}))
		})
		return Check(found == retain)
	})
}

func (s *SetOperation[K, V, C]) bulk(m matcher[K, V], retain bool) []Pair[K, V] {
	a, b := s.this.ToArray(), s.compare.ToArray()
	hashed := m.hashes(a, b)
	switch {
	case hashed && retain:
		return arr.IntersectBy(a, b, m.hash)
	case hashed:
		return arr.DiffBy(a, b, m.hash)
	case retain:
		return arr.IntersectFunc(a, b, m.eq)
	default:
		return arr.DiffFunc(a, b, m.eq)
	}
}
