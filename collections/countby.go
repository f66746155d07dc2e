package collections

import (
	"encoding/json"
	"fmt"

	"github.com/go-softwarelab/common/pkg/seq2"
	"github.com/spf13/cast"

	"github.com/hasbyte1/go-laravel-support/arr"
)

// CountBy counts occurrences. Frequency tables are returned as
// *Associative[string, int] in first-encountered order.
type CountBy[K comparable, V any] struct {
	source Collection[K, V]
}

// NewCountBy binds a CountBy operator to source.
func NewCountBy[K comparable, V any](source Collection[K, V]) *CountBy[K, V] {
	return &CountBy[K, V]{source: source}
}

// Value returns how many values equal value.
func (c *CountBy[K, V]) Value(value V) int {
	return seq2.Reduce(c.source.All(), func(n int, _ K, v V) int {
		if arr.Equal(v, value) {
			return n + 1
		}
		return n
	}, 0)
}

// Type returns how many values have the [DebugType] tag.
func (c *CountBy[K, V]) Type(tag string) int {
	return seq2.Reduce(c.source.All(), func(n int, _ K, v V) int {
		if DebugType(v) == tag {
			return n + 1
		}
		return n
	}, 0)
}

// Values returns a frequency table keyed by value. nil is keyed "null",
// scalars by their string form, other values by their JSON encoding, or
// their Go syntax when they cannot be encoded. Values whose keys coincide
// (1 and "1", nil and "null") share a bucket.
//
//	// [John Jane Jane Jane Richard Richard] → {John: 1, Jane: 3, Richard: 2}
func (c *CountBy[K, V]) Values() *Associative[string, int] {
	return c.Where(func(v V, _ K) string { return bucket(v) })
}

// Where returns a frequency table keyed by fn(value, key).
func (c *CountBy[K, V]) Where(fn func(value V, key K) string) *Associative[string, int] {
	out := NewAssociative[string, int]()
	for k, v := range c.source.All() {
		b := fn(v, k)
		out.Set(b, out.Get(b).OrElse(0)+1)
	}
	return out
}

func bucket(v any) string {
	if v == nil {
		return "null"
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%#v", v)
}
