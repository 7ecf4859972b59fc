package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestViolation(t *testing.T) {
	t.Parallel()

	v := validator.Violation{
		Field:   "age",
		Message: "age must be at least 18",
		Params:  map[string]any{validator.ParamField: "age", validator.ParamMin: int64(18)},
	}

	t.Run("accessors", func(t *testing.T) {
		assert.Equal(t, "age", v.GetField())
		assert.Equal(t, "age must be at least 18", v.GetMessage())
		assert.Equal(t, int64(18), v.GetParams()[validator.ParamMin])
	})

	t.Run("params are copied", func(t *testing.T) {
		params := v.GetParams()
		params[validator.ParamMin] = 0
		assert.Equal(t, int64(18), v.Params[validator.ParamMin])
	})

	t.Run("equal", func(t *testing.T) {
		same := validator.Violation{Field: "age", Message: v.Message, Params: v.GetParams()}
		assert.True(t, v.Equal(same))

		otherParams := validator.Violation{Field: "age", Message: v.Message, Params: map[string]any{validator.ParamMin: int64(21)}}
		assert.False(t, v.Equal(otherParams))

		otherMessage := validator.Violation{Field: "age", Message: "x", Params: v.GetParams()}
		assert.False(t, v.Equal(otherMessage))

		assert.True(t, validator.Violation{Field: "a"}.Equal(validator.Violation{Field: "a", Params: map[string]any{}}))
	})
}

func TestViolations(t *testing.T) {
	t.Parallel()

	vs := validator.Violations{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is invalid"},
	}

	t.Run("error text", func(t *testing.T) {
		var empty validator.Violations
		assert.Equal(t, "validation failed", empty.Error())
		assert.Equal(t, "validation failed: email: is required; password: too short; email: is invalid", vs.Error())
	})

	t.Run("err is nil when empty", func(t *testing.T) {
		var empty validator.Violations
		assert.NoError(t, empty.Err())
		assert.True(t, empty.IsEmpty())
		assert.Error(t, vs.Err())
	})

	t.Run("lookups", func(t *testing.T) {
		assert.True(t, vs.Has("email"))
		assert.False(t, vs.Has("name"))
		assert.Equal(t, []string{"is required", "is invalid"}, vs.Get("email"))
		assert.Nil(t, vs.Get("name"))
		assert.Equal(t, []string{"email", "password"}, vs.Fields())
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", vs.Err())
		assert.True(t, validator.IsViolations(err))

		extracted := validator.ExtractViolations(err)
		require.Len(t, extracted, 3)
		assert.Equal(t, "email", extracted[0].Field)

		assert.False(t, validator.IsViolations(errors.New("other")))
		assert.False(t, validator.IsViolations(nil))
		assert.Nil(t, validator.ExtractViolations(nil))
		assert.Nil(t, validator.ExtractViolations(errors.New("other")))
	})
}
