package collections_test

import (
	"encoding/json"
	"errors"
	"iter"
	"testing"

	"github.com/hasbyte1/go-laravel-support/collections"
)

func TestLazyIsRestartable(t *testing.T) {
	calls := 0
	l := countingLazy(&calls, 1, 2, 3)
	if calls != 0 {
		t.Fatalf("factory ran %d times before consumption", calls)
	}
	assertSlice(t, valuesOf(l), []int{1, 2, 3})
	assertSlice(t, valuesOf(l), []int{1, 2, 3})
	assertEqual(t, calls, 2)
}

func TestLazyIndependentConsumers(t *testing.T) {
	l := lazyInts(1, 2, 3)
	next1, stop1 := iter.Pull2(l.All())
	defer stop1()
	next2, stop2 := iter.Pull2(l.All())
	defer stop2()

	_, a, _ := next1()
	_, b, _ := next1()
	_, c, _ := next2()
	if a != 1 || b != 2 || c != 1 {
		t.Fatalf("consumers interfered: %d %d %d", a, b, c)
	}
}

func TestLazyCountAndKind(t *testing.T) {
	l := lazyInts(4, 5, 6)
	assertEqual(t, l.Count(), 3)
	assertEqual(t, l.Kind(), collections.KindLazy)
	assertEqual(t, collections.EmptyLazy[int, int]().Count(), 0)
}

func TestLazyOf(t *testing.T) {
	l := collections.LazyOf(ints(7, 8).All())
	assertSlice(t, valuesOf(l), []int{7, 8})
	assertSlice(t, valuesOf(l), []int{7, 8})
}

func TestLazyFromArrayCopies(t *testing.T) {
	pairs := []collections.Pair[string, int]{collections.P("a", 1)}
	l := collections.LazyFromArray(pairs)
	pairs[0].Value = 99
	assertSlice(t, valuesOf(l), []int{1})
}

func TestLazyFilter(t *testing.T) {
	l := lazyInts(rangeInts(1, 10)...)
	evens := l.Filter(collections.Where(func(n, _ int) bool { return n%2 == 0 }))
	assertSlice(t, valuesOf(evens), []int{2, 4, 6, 8, 10})
	assertSlice(t, keysOf(evens), []int{1, 3, 5, 7, 9})
	assertEqual(t, l.Count(), 10)
}

func TestLazyFilterStop(t *testing.T) {
	got := lazyInts(rangeInts(1, 10)...).Filter(func(n, _ int) collections.Verdict {
		if n == 7 {
			return collections.Stop
		}
		return collections.Check(n%2 == 0)
	})
	assertSlice(t, valuesOf(got), []int{2, 4, 6})
}

func TestLazyFilterWithRestartsPredicate(t *testing.T) {
	firstTwo := lazyInts(1, 2, 3, 4).Select().First(2)
	assertSlice(t, valuesOf(firstTwo), []int{1, 2})
	assertSlice(t, valuesOf(firstTwo), []int{1, 2})
}

func TestLazyUnionKeepsDuplicateKeys(t *testing.T) {
	got := lazyInts(1, 2).Union(ints(3))
	assertSlice(t, keysOf(got), []int{0, 1, 0})
	assertSlice(t, valuesOf(got), []int{1, 2, 3})
}

func TestLazyTransformMutatesReceiver(t *testing.T) {
	l := lazyInts(1, 2, 3)
	r := l.Transform(func(n, _ int) int { return n * 10 })
	if r != l {
		t.Fatal("Transform should return its receiver")
	}
	assertSlice(t, valuesOf(l), []int{10, 20, 30})
}

func TestLazyTransformKeys(t *testing.T) {
	l := lazyInts(1, 2)
	l.TransformKeys(func(_, k int) int { return k + 100 })
	assertSlice(t, keysOf(l), []int{100, 101})
}

func TestLazyApplyToKeysClones(t *testing.T) {
	l := lazyInts(1, 2, 3)
	c := l.ApplyToKeys(func(_, k int) int { return k * 2 })
	if c == l {
		t.Fatal("ApplyToKeys should return a new Lazy")
	}
	assertSlice(t, keysOf(l), []int{0, 1, 2})
	assertSlice(t, keysOf(c), []int{0, 2, 4})
}

func TestLazyJSONRoundTrip(t *testing.T) {
	l := collections.LazyFromArray([]collections.Pair[string, int]{
		collections.P("a", 1),
		collections.P("b", 2),
		collections.P("a", 3),
	})
	b, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, string(b), `[["a",1],["b",2],["a",3]]`)

	var back collections.Lazy[string, int]
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, back.ToArray(), l.ToArray())
	assertEqual(t, back.String(), string(b))
}

func TestLazyUnmarshalMalformed(t *testing.T) {
	for _, input := range []string{`{"a":1}`, `[["a"]]`, `[["a","x"]]`} {
		var l collections.Lazy[string, int]
		err := l.UnmarshalJSON([]byte(input))
		if !errors.Is(err, collections.ErrMalformedPairs) {
			t.Fatalf("%s: expected ErrMalformedPairs, got %v", input, err)
		}
	}
}

func TestLazyEachAndTap(t *testing.T) {
	sum := 0
	lazyInts(1, 2, 3).Each(func(n, _ int) { sum += n })
	assertEqual(t, sum, 6)

	tapped := false
	l := lazyInts(1)
	if l.Tap(func(*collections.Lazy[int, int]) { tapped = true }) != l || !tapped {
		t.Fatal("Tap should call fn and return the receiver")
	}
}
