package collections

import (
	"iter"

	"github.com/hasbyte1/go-laravel-support/arr"
)

// Chunk splits a source collection into consecutive sub-collections.
//
// Every method returns a *Lazy[int, C] mapping chunk index to chunk. The
// chunks are computed on each traversal of that Lazy and are built with
// the source's own FromArray, so chunking an *Associative yields
// *Associative chunks with their keys intact.
//
// Numeric parameters below 1 are treated as 1.
type Chunk[K comparable, V any, C Chunkable[K, V, C]] struct {
	source C
}

// NewChunk binds a Chunk operator to source. K and V cannot be inferred
// from C and must be given explicitly:
//
//	collections.NewChunk[int, string](names).ByStep(2)
func NewChunk[K comparable, V any, C Chunkable[K, V, C]](source C) *Chunk[K, V, C] {
	return &Chunk[K, V, C]{source: source}
}

// When accumulates elements into a pending chunk and closes it after
// every element for which fn returns Keep. Drop keeps accumulating.
//
// Stop ends chunking at once: the pending chunk, including the element
// that produced Stop, is discarded. After normal exhaustion a non-empty
// pending chunk is emitted as the final chunk.
func (c *Chunk[K, V, C]) When(fn Predicate[K, V]) *Lazy[int, C] {
	return c.whenWith(func() Predicate[K, V] { return fn })
}

// ByStep emits chunks of size elements; the last one may be shorter.
func (c *Chunk[K, V, C]) ByStep(size int) *Lazy[int, C] {
	size = max(size, 1)
	return c.whenWith(func() Predicate[K, V] {
		n := 0
		return func(V, K) Verdict {
			n++
			return Check(n%size == 0)
		}
	})
}

// In splits the source into at most groups chunks, filling each to
// ceil(count/groups) elements before starting the next. The last chunk
// may be shorter.
func (c *Chunk[K, V, C]) In(groups int) *Lazy[int, C] {
	groups = max(groups, 1)
	return c.whenWith(func() Predicate[K, V] {
		size := max((c.source.Count()+groups-1)/groups, 1)
		n := 0
		return func(V, K) Verdict {
			n++
			return Check(n%size == 0)
		}
	})
}

// Split splits the source into groups chunks whose sizes differ by at
// most one. The first count%groups chunks take the extra element. When the
// source has fewer than groups elements, only non-empty chunks are
// emitted.
func (c *Chunk[K, V, C]) Split(groups int) *Lazy[int, C] {
	groups = max(groups, 1)
	return c.whenWith(func() Predicate[K, V] {
		count := c.source.Count()
		base, extra := count/groups, count%groups
		group, n := 0, 0
		return func(V, K) Verdict {
			n++
			size := base
			if group < extra {
				size++
			}
			if n < size {
				return Drop
			}
			group, n = group+1, 0
			return Keep
		}
	})
}

// ByValueChange starts a new chunk whenever a value differs from the one
// before it. Values are compared with [arr.Equal].
func (c *Chunk[K, V, C]) ByValueChange() *Lazy[int, C] {
	return c.emit(func(yield func(C) bool) {
		var (
			buf      []Pair[K, V]
			previous V
		)
		for k, v := range c.source.All() {
			if len(buf) > 0 && !arr.Equal(previous, v) {
				if !yield(c.source.FromArray(buf)) {
					return
				}
				buf = nil
			}
			buf = append(buf, Pair[K, V]{Key: k, Value: v})
			previous = v
		}
		if len(buf) > 0 {
			yield(c.source.FromArray(buf))
		}
	})
}

// ByWidth cycles through the given widths: the first chunk holds width
// elements, the next widths[0], and so on, starting over after the last
// width.
//
//	// 1…10 with widths 5, 3, 2 → [1 2 3 4 5] [6 7 8] [9 10]
func (c *Chunk[K, V, C]) ByWidth(width int, widths ...int) *Lazy[int, C] {
	cycle := make([]int, 0, len(widths)+1)
	for _, w := range append([]int{width}, widths...) {
		cycle = append(cycle, max(w, 1))
	}
	return c.whenWith(func() Predicate[K, V] {
		at, n := 0, 0
		return func(V, K) Verdict {
			n++
			if n < cycle[at] {
				return Drop
			}
			at, n = (at+1)%len(cycle), 0
			return Keep
		}
	})
}

// Sliding emits overlapping windows of exactly size consecutive elements,
// each window starting step elements after the previous one.
//
// Trailing elements that cannot fill a whole window are dropped: a source
// of n elements yields (n-size)/step+1 windows when n >= size, else none.
func (c *Chunk[K, V, C]) Sliding(size, step int) *Lazy[int, C] {
	size, step = max(size, 1), max(step, 1)
	return c.emit(func(yield func(C) bool) {
		buf := make([]Pair[K, V], 0, size)
		skip := 0
		for k, v := range c.source.All() {
			if skip > 0 {
				skip--
				continue
			}
			buf = append(buf, Pair[K, V]{Key: k, Value: v})
			if len(buf) < size {
				continue
			}
			if !yield(c.source.FromArray(buf)) {
				return
			}
			if step >= size {
				buf = buf[:0]
				skip = step - size
				continue
			}
			buf = append(buf[:0:0], buf[step:]...)
		}
	})
}

// whenWith implements When with a predicate created per traversal.
func (c *Chunk[K, V, C]) whenWith(newPredicate func() Predicate[K, V]) *Lazy[int, C] {
	return c.emit(func(yield func(C) bool) {
		fn := newPredicate()
		var buf []Pair[K, V]
		for k, v := range c.source.All() {
			verdict := fn(v, k)
			if verdict == Stop {
				return
			}
			buf = append(buf, Pair[K, V]{Key: k, Value: v})
			if verdict == Keep {
				if !yield(c.source.FromArray(buf)) {
					return
				}
				buf = nil
			}
		}
		if len(buf) > 0 {
			yield(c.source.FromArray(buf))
		}
	})
}

// emit numbers the chunks produced by gen.
func (c *Chunk[K, V, C]) emit(gen func(yield func(C) bool)) *Lazy[int, C] {
	return NewLazy(func() iter.Seq2[int, C] {
		return func(yield func(int, C) bool) {
			i := 0
			gen(func(chunk C) bool {
				ok := yield(i, chunk)
				i++
				return ok
			})
		}
	})
}
