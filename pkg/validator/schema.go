package validator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Field describes a schema field as validators see it.
type Field struct {
	Name string
	// Type is the declared type of the field's getter.
	Type reflect.Type

	// raw is the value as the getter returned it, before a declared
	// pointer is removed. Set only while the field is being validated.
	raw any
}

// valueType is the type validators receive values of: a declared pointer
// type with one level removed, any other declared type as it is.
func (f Field) valueType() reflect.Type {
	if f.Type != nil && f.Type.Kind() == reflect.Pointer {
		return f.Type.Elem()
	}
	return f.Type
}

// FieldSpec binds a field name, a getter and the field's constraints.
type FieldSpec[T any] struct {
	field       Field
	get         func(T) any
	constraints []Constraint
}

// FieldOf declares a field of T read by get and checked by constraints in
// the given order. The getter's result type becomes the declared type.
//
//	validator.FieldOf("name", func(u *User) string { return u.Name },
//	    validator.NotNull(),
//	    validator.Length(3, 13),
//	)
func FieldOf[T, V any](name string, get func(T) V, constraints ...Constraint) FieldSpec[T] {
	spec := FieldSpec[T]{
		field:       Field{Name: name, Type: reflect.TypeFor[V]()},
		constraints: slices.Clone(constraints),
	}
	if get != nil {
		spec.get = func(t T) any { return get(t) }
	}
	return spec
}

// read returns the field's current value, or nil when it is absent, and the
// value exactly as the getter returned it.
//
// A field declared as a pointer is dereferenced once. Values of fields
// declared as interfaces are passed on unchanged, whatever their dynamic
// type, so methods with pointer receivers stay reachable.
func (s FieldSpec[T]) read(target T) (value, raw any) {
	raw = s.get(target)
	if raw == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		if s.field.Type.Kind() == reflect.Pointer {
			return rv.Elem().Interface(), raw
		}
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
	}
	return raw, raw
}

// Schema is an explicit list of fields of T and their constraints.
// Fields are enumerated in declaration order and each field's constraints in
// the order they were passed to FieldOf; validation results follow that order.
type Schema[T any] struct {
	fields []FieldSpec[T]
}

// NewSchema builds a schema from field specs.
// It panics on an empty or duplicate field name or a nil getter: a broken
// schema is a programming error and should stop the program at start-up.
func NewSchema[T any](fields ...FieldSpec[T]) *Schema[T] {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.field.Name == "" {
			panic(errors.New("validator: schema field without a name"))
		}
		if f.get == nil {
			panic(fmt.Errorf("validator: field %q has no getter", f.field.Name))
		}
		if _, ok := seen[f.field.Name]; ok {
			panic(fmt.Errorf("validator: duplicate field %q", f.field.Name))
		}
		seen[f.field.Name] = struct{}{}
	}

	return &Schema[T]{fields: slices.Clone(fields)}
}

// Fields lists the field descriptors in enumeration order.
func (s *Schema[T]) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.field
	}
	return out
}

// Constraints lists the constraints attached to the named field.
func (s *Schema[T]) Constraints(name string) []Constraint {
	for _, f := range s.fields {
		if f.field.Name == name {
			return slices.Clone(f.constraints)
		}
	}
	return nil
}

func (s *Schema[T]) Len() int {
	return len(s.fields)
}
