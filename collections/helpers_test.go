package collections_test

import (
	"iter"
	"reflect"
	"testing"

	"github.com/hasbyte1/go-laravel-support/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Indexed[int] { return collections.NewIndexed(ns...) }

func lazyInts(ns ...int) *collections.Lazy[int, int] {
	return collections.LazyFromArray(ints(ns...).ToArray())
}

func rangeInts(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

func names() *collections.Indexed[string] {
	return collections.NewIndexed("John", "Jane", "Jane", "Jane", "Richard", "Richard")
}

// countingLazy yields ns and increments *calls every time a traversal
// starts.
func countingLazy(calls *int, ns ...int) *collections.Lazy[int, int] {
	return collections.NewLazy(func() iter.Seq2[int, int] {
		*calls++
		return func(yield func(int, int) bool) {
			for i, n := range ns {
				if !yield(i, n) {
					return
				}
			}
		}
	})
}

func valuesOf[K comparable, V any](c collections.Collection[K, V]) []V {
	out := []V{}
	for _, v := range c.All() {
		out = append(out, v)
	}
	return out
}

func keysOf[K comparable, V any](c collections.Collection[K, V]) []K {
	out := []K{}
	for k := range c.All() {
		out = append(out, k)
	}
	return out
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func assertDeep(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}
