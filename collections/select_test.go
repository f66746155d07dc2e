package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-support/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Select
// ─────────────────────────────────────────────────────────────────────────────

func TestSelectFirst(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Select().First(2).Values(), []int{1, 2})
	assertSlice(t, ints(1, 2, 3).Select().First(5).Values(), []int{1, 2, 3})
	assertEqual(t, ints(1, 2, 3).Select().First(-1).Count(), 0)
	assertSlice(t, valuesOf(lazyInts(1, 2, 3).Select().First(2)), []int{1, 2})
}

func TestSelectFirstStopsLazySource(t *testing.T) {
	pulled := 0
	l := lazyInts(rangeInts(1, 100)...).Filter(collections.Where(func(int, int) bool {
		pulled++
		return true
	}))
	assertSlice(t, valuesOf(l.Select().First(3)), []int{1, 2, 3})
	if pulled > 4 {
		t.Fatalf("First(3) pulled %d elements from the source", pulled)
	}
}

func TestSelectLast(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).Select().Last(2).Values(), []int{3, 4})
	assertSlice(t, valuesOf(lazyInts(1, 2, 3, 4).Select().Last(3)), []int{2, 3, 4})
	assertEqual(t, ints(1, 2).Select().Last(0).Count(), 0)
}

func TestSelectSlice(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		length []int
		want   []int
	}{
		{"offset only", 2, nil, []int{3, 4, 5}},
		{"offset and length", 1, []int{2}, []int{2, 3}},
		{"negative offset", -2, nil, []int{4, 5}},
		{"negative length", 1, []int{-1}, []int{2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSlice(t, ints(1, 2, 3, 4, 5).Select().Slice(tt.offset, tt.length...).Values(), tt.want)
			assertSlice(t, valuesOf(lazyInts(1, 2, 3, 4, 5).Select().Slice(tt.offset, tt.length...)), tt.want)
		})
	}
}

func TestSelectKeepsAssociativeKeys(t *testing.T) {
	a := collections.AssociativeFrom(collections.P("a", 1), collections.P("b", 2), collections.P("c", 3))
	assertSlice(t, a.Select().Last(2).Keys(), []string{"b", "c"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Skip
// ─────────────────────────────────────────────────────────────────────────────

func TestSkipFirst(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).Skip().First(2).Values(), []int{3, 4})
	assertSlice(t, ints(1, 2).Skip().First(-3).Values(), []int{1, 2})

	got := lazyInts(1, 2, 3, 4).Skip().First(1)
	assertSlice(t, keysOf(got), []int{1, 2, 3})
	assertSlice(t, valuesOf(got), []int{2, 3, 4})
	assertSlice(t, valuesOf(got), []int{2, 3, 4})
}

func TestSkipLast(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).Skip().Last(1).Values(), []int{1, 2, 3})
	assertSlice(t, valuesOf(lazyInts(1, 2, 3).Skip().Last(5)), []int{})
	assertSlice(t, ints(1, 2).Skip().Last(0).Values(), []int{1, 2})
}

func TestSkipUntil(t *testing.T) {
	got := names().Skip().Until(collections.Where(func(v string, _ int) bool { return v == "Richard" }))
	assertSlice(t, got.Values(), []string{"Richard", "Richard"})
}

func TestSkipUntilStop(t *testing.T) {
	got := names().Skip().Until(func(v string, _ int) collections.Verdict {
		if v == "Jane" {
			return collections.Stop
		}
		return collections.Check(v == "Richard")
	})
	assertEqual(t, got.Count(), 0)
}

func TestSkipWhile(t *testing.T) {
	less := collections.Where(func(n, _ int) bool { return n < 3 })
	assertSlice(t, ints(1, 2, 3, 1).Skip().While(less).Values(), []int{3, 1})

	l := lazyInts(1, 2, 3, 1).Skip().While(less)
	assertSlice(t, valuesOf(l), []int{3, 1})
	assertSlice(t, valuesOf(l), []int{3, 1})
}
