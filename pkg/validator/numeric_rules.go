package validator

import (
	"context"
	"fmt"
	"math"
)

// Range bounds an integer field, both ends inclusive.
// Accepts every signed and unsigned integer kind.
func Range(min, max int64) Constraint {
	if min > max {
		panic(fmt.Sprintf("validator: range min %d is greater than max %d", min, max))
	}
	return Constraint{
		kind:    KindRange,
		params:  map[string]any{ParamMin: min, ParamMax: max},
		message: DefaultMessage,
	}
}

// Decimal bounds a floating point field, both ends inclusive. NaN never passes.
func Decimal(min, max float64) Constraint {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		panic(fmt.Sprintf("validator: invalid decimal bounds [%v, %v]", min, max))
	}
	return Constraint{
		kind:    KindDecimal,
		params:  map[string]any{ParamMin: min, ParamMax: max},
		message: DefaultMessage,
	}
}

// ID requires a positive integer identifier.
func ID() Constraint {
	return IDFrom(1)
}

// IDFrom requires an integer identifier of at least min.
// There is no upper bound beyond the field type's own maximum.
func IDFrom(min int64) Constraint {
	return Constraint{
		kind:    KindID,
		params:  map[string]any{ParamMin: min},
		message: DefaultMessage,
	}
}

// intParam reads an integer constraint parameter of any integer kind.
func intParam(c Constraint, name string) (int64, bool) {
	v, ok := c.params[name]
	if !ok {
		return 0, false
	}
	n, over, ok := asInt(v)
	if !ok {
		return 0, false
	}
	if over {
		return math.MaxInt64, true
	}
	return n, true
}

func floatParam(c Constraint, name string) (float64, bool) {
	v, ok := c.params[name]
	if !ok {
		return 0, false
	}
	if f, ok := asFloat(v); ok {
		return f, true
	}
	if n, _, ok := asInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func validateRange(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	n, over, ok := asInt(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	if min, ok := intParam(c, ParamMin); ok && !over && n < min {
		return failure(field, c, "range.too_low"), nil
	}
	if max, ok := intParam(c, ParamMax); ok && (over || n > max) {
		return failure(field, c, "range.too_high"), nil
	}
	return nil, nil
}

func validateDecimal(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	f, ok := asFloat(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	if math.IsNaN(f) {
		return failure(field, c, "decimal.nan"), nil
	}
	if min, ok := floatParam(c, ParamMin); ok && f < min {
		return failure(field, c, "decimal.too_low"), nil
	}
	if max, ok := floatParam(c, ParamMax); ok && f > max {
		return failure(field, c, "decimal.too_high"), nil
	}
	return nil, nil
}

func validateID(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	n, over, ok := asInt(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}
	if over {
		return nil, nil
	}

	min, ok := intParam(c, ParamMin)
	if !ok {
		min = 1
	}
	if n < min {
		return failure(field, c, "id.too_low", ParamMin, min), nil
	}
	return nil, nil
}
