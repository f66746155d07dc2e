package collections

// Verdict is the result of a [Predicate].
//
// Besides the two boolean outcomes it carries a third one, [Stop], which
// tells the running operation to stop consuming its source right away. The
// element that produced Stop is never included in the result.
type Verdict uint8

const (
	// Drop is the "false" outcome. It is the zero value.
	Drop Verdict = iota
	// Keep is the "true" outcome.
	Keep
	// Stop ends the iteration.
	Stop
)

// Check converts a boolean into Keep or Drop.
func Check(ok bool) Verdict {
	if ok {
		return Keep
	}
	return Drop
}

// String implements [fmt.Stringer].
func (v Verdict) String() string {
	switch v {
	case Drop:
		return "drop"
	case Keep:
		return "keep"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Predicate is called with each value and its key.
type Predicate[K comparable, V any] func(value V, key K) Verdict

// Where adapts a boolean callback into a [Predicate] that never stops.
func Where[K comparable, V any](fn func(value V, key K) bool) Predicate[K, V] {
	return func(value V, key K) Verdict { return Check(fn(value, key)) }
}
