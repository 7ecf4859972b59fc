package validator

import (
	"context"
	"strings"
)

// NotNull requires the field to be present. It is the only built-in that
// reports an absent value.
func NotNull() Constraint {
	return Constraint{kind: KindNotNull, message: DefaultMessage}
}

// NotBlank requires a string to contain at least one non-space character.
func NotBlank() Constraint {
	return Constraint{kind: KindNotBlank, message: DefaultMessage}
}

func validateNotNull(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return failure(field, c, "notnull.missing"), nil
	}
	return nil, nil
}

func validateNotBlank(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}
	if strings.TrimSpace(s) == "" {
		return failure(field, c, "notblank.blank"), nil
	}
	return nil, nil
}
