// Package arr provides the low-level slice primitives the collections
// package is built on, inspired by PHP's array_* functions.
//
// All helpers are generic and operate on plain []T values. They never
// mutate their input: every function returns a fresh slice.
//
// # Slicing
//
// [Slice] follows array_slice semantics, including negative offsets and
// lengths:
//
//	arr.Slice([]int{1, 2, 3, 4, 5}, 1, 2)   // → [2 3]
//	arr.Slice([]int{1, 2, 3, 4, 5}, -2)     // → [4 5]
//	arr.Slice([]int{1, 2, 3, 4, 5}, 1, -1)  // → [2 3 4]
//
// # Sorting
//
// [SortStable] sorts a copy with a three-way comparator. [Compare] is the
// multi-mode comparison behind sort flags:
//
//	arr.SortStable(items, func(a, b any) int {
//	    return arr.Compare(a, b, arr.SortNumeric)
//	})
//
// # Set algebra
//
// [DiffBy] and [IntersectBy] are hashed (O(n+m)) and key every element
// through a caller-supplied function, usually [Fingerprint]. [DiffFunc]
// and [IntersectFunc] take an equality callback and are O(n·m).
//
// # Equality
//
// [Equal] is deep equality. [Fingerprint] is a BLAKE2b digest of a value's
// Go-syntax rendering, suitable as a map key when values are not comparable.
// It only stands in for Equal on values [Fingerprintable] accepts.
package arr
