package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// SortFlag selects how [Compare] orders two values.
type SortFlag int

const (
	// SortRegular compares numbers (and numeric strings) numerically and
	// everything else by its string form.
	SortRegular SortFlag = iota

	// SortNumeric converts both sides to float64. Values that cannot be
	// converted compare as 0.
	SortNumeric

	// SortString compares the string forms byte-wise.
	SortString

	// SortStringFold compares the string forms case-insensitively.
	SortStringFold
)

// String implements [fmt.Stringer].
func (f SortFlag) String() string {
	switch f {
	case SortRegular:
		return "regular"
	case SortNumeric:
		return "numeric"
	case SortString:
		return "string"
	case SortStringFold:
		return "string-fold"
	default:
		return "SortFlag(" + strconv.Itoa(int(f)) + ")"
	}
}

// SortStable returns a sorted copy of items. Equal elements keep their
// original order.
func SortStable[T any](items []T, compare func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, compare)
	return out
}

// Compare returns a negative number, zero or a positive number when a is
// less than, equal to or greater than b under flag.
func Compare(a, b any, flag SortFlag) int {
	switch flag {
	case SortNumeric:
		return cmp.Compare(toNumber(a), toNumber(b))
	case SortString:
		return strings.Compare(toString(a), toString(b))
	case SortStringFold:
		return strings.Compare(strings.ToLower(toString(a)), strings.ToLower(toString(b)))
	default:
		if isNumeric(a) && isNumeric(b) {
			return cmp.Compare(toNumber(a), toNumber(b))
		}
		return strings.Compare(toString(a), toString(b))
	}
}

func isNumeric(v any) bool {
	switch x := v.(type) {
	case nil, bool:
		return false
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return err == nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

func toString(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
