package validator

import (
	"context"
	"fmt"
	"reflect"
)

// Predicate is a caller-supplied check on values of type V.
// An error means the check could not run and aborts validation; false is an
// ordinary violation.
type Predicate[V any] interface {
	Test(value V) (bool, error)
}

// PredicateFunc adapts a plain boolean function to Predicate.
type PredicateFunc[V any] func(value V) bool

func (f PredicateFunc[V]) Test(value V) (bool, error) {
	return f(value), nil
}

// Existence is a caller-supplied lookup, typically against a database or cache,
// that reports whether a value refers to something that exists.
type Existence[V any] interface {
	Exists(ctx context.Context, value V) (bool, error)
}

// ExistenceFunc adapts a function to Existence.
type ExistenceFunc[V any] func(ctx context.Context, value V) (bool, error)

func (f ExistenceFunc[V]) Exists(ctx context.Context, value V) (bool, error) {
	return f(ctx, value)
}

// extension is the type-erased form of a Predicate or Existence.
type extension struct {
	typ    reflect.Type
	invoke func(ctx context.Context, value any) (bool, error)
}

// Check attaches a custom predicate. V must be exactly the field's declared
// type, or, for a field declared as *E, E; in the latter case the predicate
// receives a copy of the pointed-to value. A field may carry several Check
// constraints; all must pass and only the first failure is reported.
func Check[V any](p Predicate[V]) Constraint {
	ext := extension{typ: reflect.TypeFor[V]()}
	if !isNilImpl(p) {
		ext.invoke = func(_ context.Context, value any) (bool, error) {
			return p.Test(value.(V))
		}
	}
	return extensionConstraint(KindPredicate, ext)
}

// Exists attaches a custom existence check. Typing and repetition rules are
// the same as for Check.
func Exists[V any](e Existence[V]) Constraint {
	ext := extension{typ: reflect.TypeFor[V]()}
	if !isNilImpl(e) {
		ext.invoke = func(ctx context.Context, value any) (bool, error) {
			return e.Exists(ctx, value.(V))
		}
	}
	return extensionConstraint(KindExists, ext)
}

func extensionConstraint(kind Kind, ext extension) Constraint {
	return Constraint{
		kind:    kind,
		params:  map[string]any{ParamType: ext.typ.String()},
		message: DefaultMessage,
		spec:    ext,
	}
}

// isNilImpl reports a nil interface or an interface holding a nil pointer,
// func, map or similar.
func isNilImpl(impl any) bool {
	if impl == nil {
		return true
	}
	rv := reflect.ValueOf(impl)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func validateExtension(ctx context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	ext, ok := c.spec.(extension)
	if !ok {
		return nil, InvalidExtension(field, c, errMissingImplementation)
	}
	arg := value
	switch {
	case field.Type != nil && ext.typ == field.Type && field.raw != nil:
		arg = field.raw
	case ext.typ != field.valueType():
		return nil, UnsupportedType(field, c, value)
	}
	if ext.invoke == nil {
		return nil, InvalidExtension(field, c, errMissingImplementation)
	}

	passed, err := invokeExtension(ctx, ext, arg)
	if err != nil {
		return nil, InvalidExtension(field, c, err)
	}
	if passed {
		return nil, nil
	}

	reason := "predicate.failed"
	if c.kind == KindExists {
		reason = "exists.missing"
	}
	return failure(field, c, reason), nil
}

func invokeExtension(ctx context.Context, ext extension, value any) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extension panicked: %v", r)
		}
	}()
	return ext.invoke(ctx, value)
}
