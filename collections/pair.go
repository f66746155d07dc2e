package collections

import (
	"encoding/json"
	"fmt"
)

// Pair is one key/value entry of a collection.
//
// It is the element type of [Collection.ToArray] and the input of every
// FromArray constructor. Unlike a Go map, a []Pair keeps order and may hold
// the same key twice.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is shorthand for Pair[K, V]{Key: key, Value: value}.
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// MarshalJSON encodes the pair as a two-element array [key, value].
func (p Pair[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}

// UnmarshalJSON decodes a two-element array [key, value].
func (p *Pair[K, V]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair must have exactly 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Key); err != nil {
		return fmt.Errorf("pair key: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Value); err != nil {
		return fmt.Errorf("pair value: %w", err)
	}
	return nil
}
