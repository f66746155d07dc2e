package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-support/collections"
)

func chunkValues[K comparable, V any, C collections.Collection[K, V]](l *collections.Lazy[int, C]) [][]V {
	out := [][]V{}
	for _, chunk := range l.All() {
		out = append(out, valuesOf[K, V](chunk))
	}
	return out
}

func TestChunkByStep(t *testing.T) {
	src := ints(rangeInts(1, 7)...)
	chunks := collections.NewChunk[int, int](src).ByStep(3)
	assertDeep(t, chunkValues[int, int](chunks), [][]int{{1, 2, 3}, {4, 5, 6}, {7}})
	assertSlice(t, keysOf(chunks), []int{0, 1, 2})

	var joined []int
	for _, c := range chunks.All() {
		joined = append(joined, c.Values()...)
	}
	assertSlice(t, joined, src.Values())
}

func TestChunkClampsToOne(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(1, 2)).ByStep(0))
	assertDeep(t, got, [][]int{{1}, {2}})
}

func TestChunkKeepsSourceType(t *testing.T) {
	a := collections.AssociativeFrom(collections.P("a", 1), collections.P("b", 2), collections.P("c", 3))
	chunks := collections.NewChunk[string, int](a).ByStep(2).ToArray()
	assertEqual(t, len(chunks), 2)
	assertSlice(t, chunks[0].Value.Keys(), []string{"a", "b"})
	assertSlice(t, chunks[1].Value.Keys(), []string{"c"})
}

func TestChunkOnLazyIsRestartable(t *testing.T) {
	calls := 0
	chunks := collections.NewChunk[int, int](countingLazy(&calls, 1, 2, 3)).ByStep(2)
	want := [][]int{{1, 2}, {3}}
	assertDeep(t, chunkValues[int, int](chunks), want)
	assertDeep(t, chunkValues[int, int](chunks), want)
	assertEqual(t, calls, 2)
}

func TestChunkIn(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(rangeInts(1, 10)...)).In(4))
	assertDeep(t, got, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10}})
}

func TestChunkSplitFairness(t *testing.T) {
	var sizes []int
	for _, c := range collections.NewChunk[int, int](ints(rangeInts(1, 10)...)).Split(4).All() {
		sizes = append(sizes, c.Count())
	}
	assertSlice(t, sizes, []int{3, 3, 2, 2})
}

func TestChunkSplitMoreGroupsThanElements(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(1, 2, 3)).Split(5))
	assertDeep(t, got, [][]int{{1}, {2}, {3}})
}

func TestChunkByWidthCycles(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(rangeInts(1, 10)...)).ByWidth(5, 3, 2))
	assertDeep(t, got, [][]int{{1, 2, 3, 4, 5}, {6, 7, 8}, {9, 10}})

	got = chunkValues[int, int](collections.NewChunk[int, int](ints(rangeInts(1, 7)...)).ByWidth(1, 2))
	assertDeep(t, got, [][]int{{1}, {2, 3}, {4}, {5, 6}, {7}})
}

func TestChunkByValueChange(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(1, 1, 2, 2, 2, 1)).ByValueChange())
	assertDeep(t, got, [][]int{{1, 1}, {2, 2, 2}, {1}})
}

func TestChunkSliding(t *testing.T) {
	windows := chunkValues[int, int](collections.NewChunk[int, int](ints(rangeInts(1, 10)...)).Sliding(3, 1))
	assertEqual(t, len(windows), 8)
	assertDeep(t, windows[0], []int{1, 2, 3})
	assertDeep(t, windows[7], []int{8, 9, 10})

	tests := []struct {
		size, step int
		want       [][]int
	}{
		{3, 2, [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}, {7, 8, 9}}},
		{2, 3, [][]int{{1, 2}, {4, 5}, {7, 8}}},
		{4, 4, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}},
		{11, 1, [][]int{}},
	}
	for _, tt := range tests {
		got := chunkValues[int, int](collections.NewChunk[int, int](ints(rangeInts(1, 10)...)).Sliding(tt.size, tt.step))
		assertDeep(t, got, tt.want)
	}
}

func TestChunkWhenStopDropsPending(t *testing.T) {
	src := collections.AssociativeFrom[any, any](
		collections.P[any, any]("firstname", "John"),
		collections.P[any, any]("lastname", "Doe"),
		collections.P[any, any]("age", 25),
		collections.P[any, any](10, 2),
	)
	chunks := collections.NewChunk[any, any](src).When(func(v any, _ any) collections.Verdict {
		switch v {
		case 2:
			return collections.Stop
		case "Doe", 25:
			return collections.Keep
		}
		return collections.Drop
	}).ToArray()

	assertEqual(t, len(chunks), 2)
	assertSlice(t, chunks[0].Value.Keys(), []any{"firstname", "lastname"})
	assertSlice(t, chunks[1].Value.Keys(), []any{"age"})
}

func TestChunkWhenStopDropsEverythingAfterLastFlush(t *testing.T) {
	src := collections.AssociativeFrom[any, any](
		collections.P[any, any]("firstname", "John"),
		collections.P[any, any]("lastname", "Doe"),
		collections.P[any, any]("age", 25),
		collections.P[any, any](10, 2),
	)
	chunks := collections.NewChunk[any, any](src).When(func(v any, _ any) collections.Verdict {
		switch v {
		case 2:
			return collections.Stop
		case "Doe":
			return collections.Keep
		}
		return collections.Drop
	}).ToArray()

	// age is still pending when 2 stops the scan, so it is dropped with it.
	assertEqual(t, len(chunks), 1)
	assertSlice(t, chunks[0].Value.Keys(), []any{"firstname", "lastname"})
}

func TestChunkWhenStopDiscardsUnflushedBuffer(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(1, 2, 3, 4)).When(func(n, _ int) collections.Verdict {
		switch n {
		case 1:
			return collections.Keep
		case 4:
			return collections.Stop
		}
		return collections.Drop
	}))
	assertDeep(t, got, [][]int{{1}})
}

func TestChunkWhenFlushesRemainder(t *testing.T) {
	got := chunkValues[int, int](collections.NewChunk[int, int](ints(1, 2, 3)).When(collections.Where(func(n, _ int) bool { return n == 1 })))
	assertDeep(t, got, [][]int{{1}, {2, 3}})
}
