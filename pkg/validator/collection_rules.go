package validator

import (
	"context"
	"fmt"
)

// Size bounds the element count of a slice, array, map or channel, both ends
// inclusive. Elements themselves are not validated.
func Size(min, max int) Constraint {
	if min < 0 || min > max {
		panic(fmt.Sprintf("validator: invalid size bounds [%d, %d]", min, max))
	}
	return Constraint{
		kind:    KindSize,
		params:  map[string]any{ParamMin: min, ParamMax: max},
		message: DefaultMessage,
	}
}

func validateSize(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	n, ok := collectionSize(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}

	if min, ok := intParam(c, ParamMin); ok && int64(n) < min {
		return failure(field, c, "size.too_small", ParamActual, n), nil
	}
	if max, ok := intParam(c, ParamMax); ok && int64(n) > max {
		return failure(field, c, "size.too_large", ParamActual, n), nil
	}
	return nil, nil
}
