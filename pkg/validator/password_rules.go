package validator

import (
	"context"
	"fmt"
	"unicode"
)

// PasswordPolicy sets the minimum number of characters of each class.
type PasswordPolicy struct {
	Upper   int
	Lower   int
	Digits  int
	Special int
}

// DefaultPasswordPolicy requires one character of each class.
var DefaultPasswordPolicy = PasswordPolicy{Upper: 1, Lower: 1, Digits: 1, Special: 1}

// Password checks the character mix of a string against policy.
// Classes are checked in the order upper, lower, digits, special and the first
// unmet one is reported with REQUIRED and ACTUAL counts.
func Password(policy PasswordPolicy) Constraint {
	if policy.Upper < 0 || policy.Lower < 0 || policy.Digits < 0 || policy.Special < 0 {
		panic(fmt.Sprintf("validator: negative password policy %+v", policy))
	}
	return Constraint{
		kind:    KindPassword,
		message: DefaultMessage,
		spec:    policy,
	}
}

type charCounts struct {
	upper, lower, digits, special int
}

func countChars(s string) charCounts {
	var n charCounts
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			n.upper++
		case unicode.IsLower(r):
			n.lower++
		case unicode.IsDigit(r):
			n.digits++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			n.special++
		}
	}
	return n
}

func validatePassword(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	policy, ok := c.spec.(PasswordPolicy)
	if !ok {
		policy = DefaultPasswordPolicy
	}

	n := countChars(s)
	checks := []struct {
		reason           string
		required, actual int
	}{
		{"password.upper", policy.Upper, n.upper},
		{"password.lower", policy.Lower, n.lower},
		{"password.digits", policy.Digits, n.digits},
		{"password.special", policy.Special, n.special},
	}
	for _, ch := range checks {
		if ch.actual < ch.required {
			return failure(field, c, ch.reason, ParamRequired, ch.required, ParamActual, ch.actual), nil
		}
	}
	return nil, nil
}
