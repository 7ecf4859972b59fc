package validator

import "maps"

// Kind identifies a constraint and selects its validator in the Registry.
type Kind string

// Built-in constraint kinds.
const (
	KindNotNull   Kind = "notnull"
	KindNotBlank  Kind = "notblank"
	KindRange     Kind = "range"
	KindDecimal   Kind = "decimal"
	KindID        Kind = "id"
	KindLength    Kind = "length"
	KindSize      Kind = "size"
	KindPattern   Kind = "pattern"
	KindCharset   Kind = "charset"
	KindCase      Kind = "case"
	KindPassword  Kind = "password"
	KindEmail     Kind = "email"
	KindUUID      Kind = "uuid"
	KindOneOf     Kind = "oneof"
	KindDate      Kind = "date"
	KindAge       Kind = "age"
	KindPredicate Kind = "predicate"
	KindExists    Kind = "exists"
)

// DefaultMessage is the template sentinel replaced by the localized default
// text of the specific failure reason.
const DefaultMessage = "%DEFAULT_MESSAGE%"

// Named parameters. They are both constraint parameters and message
// placeholders, e.g. %MIN%.
const (
	ParamField    = "FIELD"
	ParamMin      = "MIN"
	ParamMax      = "MAX"
	ParamPattern  = "PATTERN"
	ParamClass    = "CLASS"
	ParamCase     = "CASE"
	ParamValues   = "VALUES"
	ParamRequired = "REQUIRED"
	ParamActual   = "ACTUAL"
	ParamType     = "TYPE"
	ParamKind     = "KIND"
	ParamCause    = "CAUSE"
)

// Constraint is the metadata attached to a field: a kind, kind-specific
// parameters and a message template. It is immutable once built.
type Constraint struct {
	kind    Kind
	params  map[string]any
	message string

	// spec holds compiled artifacts of built-in kinds (regexp, policy,
	// extension implementation) that are not message parameters.
	spec any
}

// NewConstraint builds a constraint with the default message template.
// Use it for kinds registered by the caller.
func NewConstraint(kind Kind, params map[string]any) Constraint {
	return Constraint{
		kind:    kind,
		params:  maps.Clone(params),
		message: DefaultMessage,
	}
}

func (c Constraint) Kind() Kind {
	return c.kind
}

// Message returns the message template.
func (c Constraint) Message() string {
	if c.message == "" {
		return DefaultMessage
	}
	return c.message
}

// WithMessage returns a copy of c with a caller-supplied message template.
// The template may reference %FIELD% and the constraint's parameters, and
// may embed %DEFAULT_MESSAGE%.
func (c Constraint) WithMessage(template string) Constraint {
	c.message = template
	return c
}

func (c Constraint) Param(name string) (any, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Params returns a copy of the constraint parameters.
func (c Constraint) Params() map[string]any {
	return maps.Clone(c.params)
}
