package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of the portion of items selected by offset and an
// optional length, with array_slice semantics:
//
//   - a negative offset counts from the end of items;
//   - a missing length means "up to the end";
//   - a negative length stops that many elements before the end.
//
// Out-of-range values are clamped; the result is never nil.
func Slice[T any](items []T, offset int, length ...int) []T {
	total := len(items)
	if offset < 0 {
		offset += total
		if offset < 0 {
			offset = 0
		}
	}
	if offset > total {
		offset = total
	}

	end := total
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = total + l
		} else {
			end = offset + l
		}
	}
	if end > total {
		end = total
	}
	if end <= offset {
		return []T{}
	}

	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
