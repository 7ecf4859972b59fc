package validator

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Length bounds the character count of a string or rune slice, both ends
// inclusive. Characters are counted after NFC normalization.
func Length(min, max int) Constraint {
	if min < 0 || min > max {
		panic(fmt.Sprintf("validator: invalid length bounds [%d, %d]", min, max))
	}
	return Constraint{
		kind:    KindLength,
		params:  map[string]any{ParamMin: min, ParamMax: max},
		message: DefaultMessage,
	}
}

// LetterCase selects the case the Case constraint requires.
type LetterCase string

const (
	Upper LetterCase = "upper"
	Lower LetterCase = "lower"
)

// Case requires a string to be entirely in the given letter case.
// Characters without case (digits, punctuation) are ignored.
func Case(lc LetterCase) Constraint {
	if lc != Upper && lc != Lower {
		panic(fmt.Sprintf("validator: unknown letter case %q", lc))
	}
	return Constraint{
		kind:    KindCase,
		params:  map[string]any{ParamCase: string(lc)},
		message: DefaultMessage,
	}
}

// CharClass names a set of runes accepted by the Charset constraint.
type CharClass string

const (
	Digits   CharClass = "digits"
	Letters  CharClass = "letters"
	Alnum    CharClass = "alnum"
	Latin    CharClass = "latin"
	Cyrillic CharClass = "cyrillic"
	Hex      CharClass = "hex"
)

var charClasses = map[CharClass]func(rune) bool{
	Digits:  unicode.IsDigit,
	Letters: unicode.IsLetter,
	Alnum: func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	},
	Latin: func(r rune) bool {
		return unicode.Is(unicode.Latin, r)
	},
	Cyrillic: func(r rune) bool {
		return unicode.Is(unicode.Cyrillic, r)
	},
	Hex: func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	},
}

// Charset requires every character of a string to belong to class.
// The empty string passes.
func Charset(class CharClass) Constraint {
	if _, ok := charClasses[class]; !ok {
		panic(fmt.Sprintf("validator: unknown character class %q", class))
	}
	return Constraint{
		kind:    KindCharset,
		params:  map[string]any{ParamClass: string(class)},
		message: DefaultMessage,
	}
}

// OneOf requires a string to equal one of values.
func OneOf(values ...string) Constraint {
	if len(values) == 0 {
		panic("validator: OneOf needs at least one value")
	}
	return Constraint{
		kind:    KindOneOf,
		params:  map[string]any{ParamValues: strings.Join(values, ", ")},
		message: DefaultMessage,
		spec:    slices.Clone(values),
	}
}

func validateLength(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	n, ok := textLength(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	if min, ok := intParam(c, ParamMin); ok && int64(n) < min {
		return failure(field, c, "length.too_short", ParamActual, n), nil
	}
	if max, ok := intParam(c, ParamMax); ok && int64(n) > max {
		return failure(field, c, "length.too_long", ParamActual, n), nil
	}
	return nil, nil
}

func validateCase(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	// Casers keep state between calls, so each check builds its own.
	switch lc, _ := c.params[ParamCase].(string); LetterCase(lc) {
	case Upper:
		if cases.Upper(language.Und).String(s) != s {
			return failure(field, c, "case.not_upper"), nil
		}
	case Lower:
		if cases.Lower(language.Und).String(s) != s {
			return failure(field, c, "case.not_lower"), nil
		}
	default:
		return nil, InvalidConstraint(field, c, fmt.Errorf("unknown letter case %q", lc))
	}
	return nil, nil
}

func validateCharset(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	class, _ := c.params[ParamClass].(string)
	in, ok := charClasses[CharClass(class)]
	if !ok {
		return nil, InvalidConstraint(field, c, fmt.Errorf("unknown character class %q", class))
	}
	for _, r := range s {
		if !in(r) {
			return failure(field, c, "charset.mismatch"), nil
		}
	}
	return nil, nil
}

func validateOneOf(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	allowed, ok := c.spec.([]string)
	if !ok {
		joined, _ := c.params[ParamValues].(string)
		allowed = strings.Split(joined, ", ")
	}
	if !slices.Contains(allowed, s) {
		return failure(field, c, "oneof.not_allowed"), nil
	}
	return nil, nil
}
