package arr

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

var (
	goStringerType = reflect.TypeFor[fmt.GoStringer]()
	formatterType  = reflect.TypeFor[fmt.Formatter]()
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of v's dynamic type
// and Go-syntax representation.
//
// Fingerprints agree with [Equal] only for values accepted by
// [Fingerprintable]. Pointers are rendered by address and floats by their
// text, so two pointers to equal values differ and two NaNs match.
func Fingerprint(v any) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%T\x00%#v", v, v)))
	return hex.EncodeToString(sum[:])
}

// Fingerprintable reports whether Fingerprint(v) equals Fingerprint(w)
// exactly when Equal(v, w) holds for every w of the same type.
//
// That is the case for values built only from booleans, integers, strings,
// and slices, arrays and structs of those. Pointers, maps, floats, complex
// numbers, channels, functions and non-nil nested interfaces are rejected,
// as are types with custom %#v formatting.
func Fingerprintable(v any) bool {
	if v == nil {
		return true
	}
	return fingerprintable(reflect.ValueOf(v))
}

func fingerprintable(v reflect.Value) bool {
	t := v.Type()
	if t.Implements(goStringerType) || t.Implements(formatterType) {
		return false
	}
	switch v.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Interface:
		// %#v drops the dynamic type of nested interface values.
		return v.IsNil()
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if !fingerprintable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range v.NumField() {
			if !fingerprintable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether a and b are deeply equal.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
