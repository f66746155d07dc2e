package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-support/arr"
	"github.com/hasbyte1/go-laravel-support/collections"
)

// makeInts creates an Indexed[int] of size n for benchmarks.
func makeInts(n int) *collections.Indexed[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.IndexedFrom(items)
}

// makeLazy creates a Lazy[int, int] of size n for benchmarks.
func makeLazy(n int) *collections.Lazy[int, int] {
	return collections.LazyFromArray(makeInts(n).ToArray())
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	even := collections.Where(func(n, _ int) bool { return n%2 == 0 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(even)
	}
}

func BenchmarkLazyFilter(b *testing.B) {
	l := makeLazy(10_000)
	even := collections.Where(func(n, _ int) bool { return n%2 == 0 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(even).Count()
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n, _ int) int { return n * 2 }).Count()
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	c := makeInts(10_000).Sort().Descending(arr.SortRegular) // pre-reverse once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort().Ascending(arr.SortRegular)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.GroupBy(c, func(n, _ int) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		})
	}
}

func BenchmarkChunkByStep(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.NewChunk[int, int](c).ByStep(100).Count()
	}
}

func BenchmarkChunkSliding(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.NewChunk[int, int](c).Sliding(10, 3).Count()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Set operations: hashed fast path vs predicate fallback
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkDifferenceValueArray(b *testing.B) {
	a, c := makeInts(2_000), makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.SetOperation(c).DifferenceValue()
	}
}

func BenchmarkDifferenceValueLazy(b *testing.B) {
	a, c := makeInts(2_000), makeLazy(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.SetOperation(c).DifferenceValue()
	}
}

func BenchmarkIsUnique(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	c := collections.IndexedFrom(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Is().Unique()
	}
}

func BenchmarkCountByValues(b *testing.B) {
	items := make([]string, 10_000)
	for i := range items {
		items[i] = string(rune('a' + i%26))
	}
	c := collections.IndexedFrom(items)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.CountBy().Values()
	}
}
