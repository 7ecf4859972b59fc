package validator

import (
	"context"
)

// Failure is the structured result of a failed check: a reason code selecting
// the localized default text, and the named message parameters.
type Failure struct {
	Reason string
	Params map[string]any
}

// Validator executes one constraint kind.
//
// Validate returns nil, nil when the value satisfies c, a Failure when it does
// not, and an error (usually a *ConfigError) when the constraint cannot be
// applied at all. value is nil when the field is absent; built-in validators
// other than NotNull treat an absent value as valid.
//
// Validators hold no per-call state and may be shared between sessions and
// goroutines.
type Validator interface {
	Validate(ctx context.Context, field Field, value any, c Constraint) (*Failure, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, field Field, value any, c Constraint) (*Failure, error)

func (f ValidatorFunc) Validate(ctx context.Context, field Field, value any, c Constraint) (*Failure, error) {
	return f(ctx, field, value, c)
}

// Repeatable is implemented by validators whose kind may be attached to one
// field several times. After the first failing instance the session skips the
// remaining instances of that kind on the field.
type Repeatable interface {
	Repeatable() bool
}

type repeatable struct {
	ValidatorFunc
}

func (repeatable) Repeatable() bool {
	return true
}

func isRepeatable(v Validator) bool {
	r, ok := v.(Repeatable)
	return ok && r.Repeatable()
}

// Fail builds a Failure for field. params are name/value pairs, e.g.
// Fail(field, "range.too_low", ParamMin, 1, ParamMax, 10).
// FIELD is always set. An odd trailing name is ignored.
func Fail(field Field, reason string, params ...any) *Failure {
	p := make(map[string]any, len(params)/2+1)
	for i := 0; i < len(params)-1; i += 2 {
		name, ok := params[i].(string)
		if !ok {
			continue
		}
		p[name] = params[i+1]
	}
	p[ParamField] = field.Name

	return &Failure{Reason: reason, Params: p}
}

// failure is Fail with the constraint's own parameters merged in; explicit
// params win over constraint params.
func failure(field Field, c Constraint, reason string, params ...any) *Failure {
	f := Fail(field, reason, params...)
	for k, v := range c.params {
		if _, ok := f.Params[k]; !ok {
			f.Params[k] = v
		}
	}
	return f
}
