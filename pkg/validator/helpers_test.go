package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// codes renders every message as its catalog code, so tests can assert the
// failure reason directly.
var codes = validator.MessagesFunc(func(_ language.Tag, code string) string {
	return code
})

// validateValue validates value as the single field "value".
func validateValue[V any](t *testing.T, value V, constraints ...validator.Constraint) (validator.Violations, error) {
	t.Helper()
	schema := validator.NewSchema(
		validator.FieldOf("value", func(v V) V { return v }, constraints...),
	)
	return validator.Validate(context.Background(), schema, value, validator.WithMessages(codes))
}

// reason returns the message code of the only violation, or "" when value is valid.
func reason[V any](t *testing.T, value V, c validator.Constraint) string {
	t.Helper()
	violations, err := validateValue(t, value, c)
	require.NoError(t, err)
	if len(violations) == 0 {
		return ""
	}
	require.Len(t, violations, 1)
	return violations[0].GetMessage()
}

func ptr[V any](v V) *V {
	return &v
}
