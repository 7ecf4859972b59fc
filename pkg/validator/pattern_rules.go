package validator

import (
	"context"
	"fmt"
	"regexp"
)

// Pattern requires the whole string to match expr. expr is anchored on both
// ends, so "[a-z]+" rejects "abc1". Panics when expr does not compile.
func Pattern(expr string) Constraint {
	return Constraint{
		kind:    KindPattern,
		params:  map[string]any{ParamPattern: expr},
		message: DefaultMessage,
		spec:    regexp.MustCompile(fullMatch(expr)),
	}
}

func fullMatch(expr string) string {
	return `^(?:` + expr + `)$`
}

func validatePattern(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	re, ok := c.spec.(*regexp.Regexp)
	if !ok {
		expr, _ := c.params[ParamPattern].(string)
		var err error
		if re, err = regexp.Compile(fullMatch(expr)); err != nil {
			return nil, InvalidConstraint(field, c, fmt.Errorf("compile pattern %q: %w", expr, err))
		}
	}

	if !re.MatchString(s) {
		return failure(field, c, "pattern.mismatch"), nil
	}
	return nil, nil
}
