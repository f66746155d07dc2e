// Package collections provides generic eager and lazy key/value collections
// and a set of operation objects that work on any of them, inspired by
// Laravel's Illuminate/Collections.
//
// # Overview
//
// Every collection implements [Collection]: an ordered sequence of
// (key, value) entries that can be ranged over with All and exported with
// ToArray. Four implementations are provided:
//
//   - [Indexed] – a list keyed 0 … n-1
//   - [Associative] – an insertion-ordered map with unique keys
//   - [Fixed] – a list with a size chosen up front
//   - [Lazy] – a generator re-run on every traversal
//
// Operations are grouped into small operator types reached through
// accessor methods, and always return the receiver's concrete type:
//
//	result := collections.NewIndexed(5, 3, 8, 1, 9, 2).
//	    Sort().Descending(arr.SortNumeric).
//	    Select().First(3) // → [9,8,5]
//
// Chunking is the exception. Its results hold the source type, so it is
// reached through [NewChunk] with explicit key and value types:
//
//	pages := collections.NewChunk[int, string](names).ByStep(20)
//
// # Predicates
//
// Callbacks return a [Verdict] rather than a bool. Besides [Keep] and [Drop]
// a callback may return [Stop] to end the running operation immediately;
// wrap a boolean callback with [Where] when early termination is not
// needed.
//
// # Lookups
//
// Lookups return an optional.Value from go-softwarelab/common, so a stored
// nil, false, 0 or "" is never confused with "not found". ShouldGet on an
// empty result fails with [ErrNotFound].
//
// # Fast paths
//
// Each collection reports a [Kind]. Operators use bulk slice primitives
// from package arr when every operand is [KindArray] and fall back to
// predicate-driven iteration otherwise. Both strategies return the same
// elements in the same order.
//
// # Lazy collections
//
// A [Lazy] stores a factory, not elements. Filtering, selecting and
// chunking a Lazy produce new Lazy values without consuming anything;
// sorting and set algebra materialize one traversal. Transform and
// TransformKeys mutate the receiver, ApplyToKeys works on a clone.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the key or value type are package-level
// functions: [Map], [Reduce], [GroupBy], [KeyBy], [CountValues],
// [Collect], [ValuesOf] and [Combine].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through the Macro method every collection exposes:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Indexed[int])
//	    return c.Filter(collections.Where(func(n, _ int) bool { return n%2 == 0 }))
//	})
//
//	evens, _ := collections.NewIndexed(1, 2, 3, 4).Macro("evens")
//
// # Logging
//
// Dump and JSON decoding report through a zerolog logger. Replace it, or
// change the level Dump uses, with [Configure].
package collections
