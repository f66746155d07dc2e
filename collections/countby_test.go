package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-support/collections"
)

func TestCountByValue(t *testing.T) {
	assertEqual(t, names().CountBy().Value("Jane"), 3)
	assertEqual(t, names().CountBy().Value("Nobody"), 0)
	assertEqual(t, collections.NewIndexed([]int{1}, []int{1}, []int{2}).CountBy().Value([]int{1}), 2)
}

func TestCountByType(t *testing.T) {
	mixed := collections.NewIndexed[any](1, "a", 2, nil, 3.5)
	assertEqual(t, mixed.CountBy().Type("int"), 2)
	assertEqual(t, mixed.CountBy().Type("nil"), 1)
	assertEqual(t, mixed.CountBy().Type("float64"), 1)
}

func TestCountByValues(t *testing.T) {
	got := names().CountBy().Values()
	assertSlice(t, got.Keys(), []string{"John", "Jane", "Richard"})
	assertEqual(t, got.Get("Jane").MustGet(), 3)
	assertEqual(t, got.Get("John").MustGet(), 1)
	assertEqual(t, got.Get("Richard").MustGet(), 2)
}

func TestCountByValuesBuckets(t *testing.T) {
	got := collections.NewIndexed[any](1, "1", []int{1}, []int{1}, nil, "").CountBy().Values()
	assertSlice(t, got.ToArray(), []collections.Pair[string, int]{
		collections.P("1", 2), collections.P("[1]", 2), collections.P("null", 1), collections.P("", 1),
	})
}

func TestCountByWhere(t *testing.T) {
	got := names().CountBy().Where(func(v string, _ int) string {
		if len(v) > 4 {
			return "long"
		}
		return "short"
	})
	assertSlice(t, got.ToArray(), []collections.Pair[string, int]{
		collections.P("short", 4), collections.P("long", 2),
	})
}

func TestCountByOnLazy(t *testing.T) {
	l := collections.LazyOf(names().All())
	assertEqual(t, l.CountBy().Values().Get("Richard").MustGet(), 2)
}
