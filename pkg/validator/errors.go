package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Fatal configuration errors. They mean the schema is broken, not the data,
// and are never collected as violations.
var (
	// ErrUnsupportedFieldType is returned when a constraint is attached to a
	// field whose runtime type its validator does not recognize.
	ErrUnsupportedFieldType = errors.New("unsupported field type for constraint")

	// ErrInvalidExtension is returned when a user-supplied predicate or
	// existence check is missing, fails or panics.
	ErrInvalidExtension = errors.New("invalid extension implementation")

	// ErrInvalidConstraint is returned when a constraint built with
	// NewConstraint carries parameters its validator cannot use, such as a
	// pattern that does not compile or an unknown character class.
	ErrInvalidConstraint = errors.New("invalid constraint parameters")

	// ErrInvalidLocale is returned by LoadConfig for an unparsable locale.
	ErrInvalidLocale = errors.New("invalid locale")
)

var errMissingImplementation = errors.New("no implementation provided")

// ConfigError is the concrete fatal error produced while validating.
// It unwraps to one of the sentinel errors above and to the underlying cause.
type ConfigError struct {
	Field string
	Kind  Kind
	// Type is the runtime type of the offending value, if known.
	Type reflect.Type
	// Message is the localized description filled in by the session.
	Message string

	err   error
	cause error
}

// UnsupportedType builds the error a validator returns for a value of a type
// outside its allow-list.
func UnsupportedType(field Field, c Constraint, value any) *ConfigError {
	return &ConfigError{
		Field: field.Name,
		Kind:  c.Kind(),
		Type:  reflect.TypeOf(value),
		err:   ErrUnsupportedFieldType,
	}
}

// InvalidExtension builds the error returned when a user-supplied
// implementation cannot be used.
func InvalidExtension(field Field, c Constraint, cause error) *ConfigError {
	return &ConfigError{
		Field: field.Name,
		Kind:  c.Kind(),
		Type:  field.Type,
		err:   ErrInvalidExtension,
		cause: cause,
	}
}

// InvalidConstraint builds the error returned for unusable constraint
// parameters.
func InvalidConstraint(field Field, c Constraint, cause error) *ConfigError {
	return &ConfigError{
		Field: field.Name,
		Kind:  c.Kind(),
		Type:  field.Type,
		err:   ErrInvalidConstraint,
		cause: cause,
	}
}

func (e *ConfigError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	var b strings.Builder
	b.WriteString(e.err.Error())
	fmt.Fprintf(&b, ": field %q, constraint %q", e.Field, e.Kind)
	if e.Type != nil {
		fmt.Fprintf(&b, ", type %s", e.Type)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

// code is the catalog key of the localized description.
func (e *ConfigError) code() string {
	switch e.err {
	case ErrInvalidExtension:
		return "error.invalid_extension"
	case ErrInvalidConstraint:
		return "error.invalid_constraint"
	default:
		return "error.unsupported_field_type"
	}
}

func (e *ConfigError) params() map[string]any {
	typ := "<nil>"
	if e.Type != nil {
		typ = e.Type.String()
	}
	params := map[string]any{
		ParamField: e.Field,
		ParamKind:  string(e.Kind),
		ParamType:  typ,
	}
	if e.cause != nil {
		params[ParamCause] = e.cause.Error()
	}
	return params
}
