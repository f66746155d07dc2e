package collections

import "github.com/hasbyte1/go-laravel-support/arr"

// Sort orders a collection by value. The source is copied into pairs,
// sorted stably and rebuilt with FromArray; it is never modified.
type Sort[K comparable, V any, C ArrStorage[K, V, C]] struct {
	source C
}

// NewSort binds a Sort operator to source.
func NewSort[K comparable, V any, C ArrStorage[K, V, C]](source C) *Sort[K, V, C] {
	return &Sort[K, V, C]{source: source}
}

// Ascending sorts values from low to high under flag.
func (s *Sort[K, V, C]) Ascending(flag arr.SortFlag) C {
	return s.by(func(a, b Pair[K, V]) int { return arr.Compare(a.Value, b.Value, flag) })
}

// Descending sorts values from high to low under flag.
func (s *Sort[K, V, C]) Descending(flag arr.SortFlag) C {
	return s.by(func(a, b Pair[K, V]) int { return arr.Compare(b.Value, a.Value, flag) })
}

// By sorts values with a three-way comparator.
func (s *Sort[K, V, C]) By(compare func(a, b V) int) C {
	return s.by(func(a, b Pair[K, V]) int { return compare(a.Value, b.Value) })
}

// ByFloat sorts values with a comparator returning a float. Results are
// truncated toward zero before use, so 0.99 and -0.5 both mean "equal".
// Return -1, 0 or 1 from compare when values may be close together.
func (s *Sort[K, V, C]) ByFloat(compare func(a, b V) float64) C {
	return s.By(func(a, b V) int { return int(compare(a, b)) })
}

func (s *Sort[K, V, C]) by(compare func(a, b Pair[K, V]) int) C {
	return s.source.FromArray(arr.SortStable(s.source.ToArray(), compare))
}

// SortKeys orders a collection by key. It mirrors [Sort].
type SortKeys[K comparable, V any, C ArrStorage[K, V, C]] struct {
	source C
}

// NewSortKeys binds a SortKeys operator to source.
func NewSortKeys[K comparable, V any, C ArrStorage[K, V, C]](source C) *SortKeys[K, V, C] {
	return &SortKeys[K, V, C]{source: source}
}

// Ascending sorts keys from low to high under flag.
func (s *SortKeys[K, V, C]) Ascending(flag arr.SortFlag) C {
	return s.by(func(a, b Pair[K, V]) int { return arr.Compare(a.Key, b.Key, flag) })
}

// Descending sorts keys from high to low under flag.
func (s *SortKeys[K, V, C]) Descending(flag arr.SortFlag) C {
	return s.by(func(a, b Pair[K, V]) int { return arr.Compare(b.Key, a.Key, flag) })
}

// By sorts keys with a three-way comparator.
func (s *SortKeys[K, V, C]) By(compare func(a, b K) int) C {
	return s.by(func(a, b Pair[K, V]) int { return compare(a.Key, b.Key) })
}

// ByFloat sorts keys with a comparator returning a float, truncated toward
// zero like [Sort.ByFloat].
func (s *SortKeys[K, V, C]) ByFloat(compare func(a, b K) float64) C {
	return s.By(func(a, b K) int { return int(compare(a, b)) })
}

func (s *SortKeys[K, V, C]) by(compare func(a, b Pair[K, V]) int) C {
	return s.source.FromArray(arr.SortStable(s.source.ToArray(), compare))
}
