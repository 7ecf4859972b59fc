package validator_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// sparse holds every shape an absent value can take.
type sparse struct {
	Str    *string
	Tags   []string
	Counts map[string]int
	Any    any
	Label  fmt.Stringer
	When   time.Time
	Born   *time.Time
}

func TestAbsentValuesPass(t *testing.T) {
	t.Parallel()

	called := validator.PredicateFunc[string](func(string) bool {
		t.Error("predicate called for an absent value")
		return false
	})

	tests := []struct {
		name string
		c    validator.Constraint
	}{
		{"not blank", validator.NotBlank()},
		{"range", validator.Range(1, 10)},
		{"decimal", validator.Decimal(0.5, 1.5)},
		{"id", validator.ID()},
		{"length", validator.Length(1, 5)},
		{"size", validator.Size(1, 5)},
		{"pattern", validator.Pattern(`[a-z]+`)},
		{"charset", validator.Charset(validator.Digits)},
		{"case", validator.Case(validator.Upper)},
		{"one of", validator.OneOf("a", "b")},
		{"password", validator.Password(validator.DefaultPasswordPolicy)},
		{"email", validator.Email()},
		{"uuid", validator.UUID()},
		{"past", validator.Past()},
		{"future", validator.Future()},
		{"date between", validator.DateBetween(time.Now(), time.Now().Add(time.Hour))},
		{"age", validator.Age(18, 65)},
		{"check", validator.Check[string](called)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validator.NewSchema(
				validator.FieldOf("str", func(s sparse) *string { return s.Str }, tt.c),
				validator.FieldOf("tags", func(s sparse) []string { return s.Tags }, tt.c),
				validator.FieldOf("counts", func(s sparse) map[string]int { return s.Counts }, tt.c),
				validator.FieldOf("any", func(s sparse) any { return s.Any }, tt.c),
				validator.FieldOf("label", func(s sparse) fmt.Stringer { return s.Label }, tt.c),
				validator.FieldOf("born", func(s sparse) *time.Time { return s.Born }, tt.c),
			)

			violations, err := validator.Validate(context.Background(), schema, sparse{})
			require.NoError(t, err)
			assert.Empty(t, violations)
		})
	}

	t.Run("exists", func(t *testing.T) {
		m := &MockExistence{}
		schema := validator.NewSchema(
			validator.FieldOf("str", func(s sparse) *string { return s.Str }, validator.Exists[string](m)),
			validator.FieldOf("any", func(s sparse) any { return s.Any }, validator.Exists[string](m)),
		)

		violations, err := validator.Validate(context.Background(), schema, sparse{})
		require.NoError(t, err)
		assert.Empty(t, violations)
		m.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("zero time for date constraints", func(t *testing.T) {
		for _, c := range []validator.Constraint{validator.Past(), validator.Future(), validator.Age(18, 65)} {
			schema := validator.NewSchema(validator.FieldOf("when", func(s sparse) time.Time { return s.When }, c))
			violations, err := validator.Validate(context.Background(), schema, sparse{})
			require.NoError(t, err)
			assert.Empty(t, violations)
		}
	})

	t.Run("not null reports every shape", func(t *testing.T) {
		c := validator.NotNull()
		schema := validator.NewSchema(
			validator.FieldOf("str", func(s sparse) *string { return s.Str }, c),
			validator.FieldOf("tags", func(s sparse) []string { return s.Tags }, c),
			validator.FieldOf("counts", func(s sparse) map[string]int { return s.Counts }, c),
			validator.FieldOf("any", func(s sparse) any { return s.Any }, c),
			validator.FieldOf("label", func(s sparse) fmt.Stringer { return s.Label }, c),
		)

		violations, err := validator.Validate(context.Background(), schema, sparse{})
		require.NoError(t, err)
		assert.Equal(t, []string{"str", "tags", "counts", "any", "label"}, violations.Fields())
	})
}
