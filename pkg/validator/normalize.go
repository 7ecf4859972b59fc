package validator

import (
	"math"
	"reflect"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// asInt widens any signed or unsigned integer kind to int64.
// over reports an unsigned value above math.MaxInt64; n is then meaningless
// and the value is larger than any int64 bound.
func asInt(value any) (n int64, over bool, ok bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, true, true
		}
		return int64(u), false, true
	default:
		return 0, false, false
	}
}

func asFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// asString accepts string kinds, including named string types.
func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// runeLength counts characters of s after NFC normalization, so a letter
// followed by a combining mark counts once when a precomposed form exists.
func runeLength(s string) int {
	if norm.NFC.IsNormalString(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// textLength is the length of string-like values: strings and rune slices.
func textLength(value any) (int, bool) {
	if s, ok := asString(value); ok {
		return runeLength(s), true
	}
	if r, ok := value.([]rune); ok {
		return runeLength(string(r)), true
	}
	return 0, false
}

// collectionSize is the element count of slices, arrays, maps and channels.
func collectionSize(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}
