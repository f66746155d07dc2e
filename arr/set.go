package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// UniqueBy returns elements with duplicates removed using a key function,
// preserving the first occurrence.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DiffBy returns elements of a whose key is not the key of any element of b.
func DiffBy[T any, K comparable](a, b []T, key func(T) K) []T {
	set := keySet(b, key)
	out := make([]T, 0, len(a))
	for _, item := range a {
		if _, found := set[key(item)]; !found {
			out = append(out, item)
		}
	}
	return out
}

// IntersectBy returns elements of a whose key is the key of some element of b.
func IntersectBy[T any, K comparable](a, b []T, key func(T) K) []T {
	set := keySet(b, key)
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[key(item)]; found {
			out = append(out, item)
		}
	}
	return out
}

// DiffFunc returns elements of a for which eq reports no match in b.
func DiffFunc[T any](a, b []T, eq func(x, y T) bool) []T {
	out := make([]T, 0, len(a))
	for _, item := range a {
		if !anyMatch(item, b, eq) {
			out = append(out, item)
		}
	}
	return out
}

// IntersectFunc returns elements of a for which eq reports a match in b.
func IntersectFunc[T any](a, b []T, eq func(x, y T) bool) []T {
	out := make([]T, 0)
	for _, item := range a {
		if anyMatch(item, b, eq) {
			out = append(out, item)
		}
	}
	return out
}

func keySet[T any, K comparable](items []T, key func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(items))
	for _, item := range items {
		set[key(item)] = struct{}{}
	}
	return set
}

func anyMatch[T any](item T, in []T, eq func(x, y T) bool) bool {
	for _, other := range in {
		if eq(item, other) {
			return true
		}
	}
	return false
}
