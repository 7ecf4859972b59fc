package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestLength(t *testing.T) {
	t.Parallel()

	c := validator.Length(3, 13)

	t.Run("counts characters, not bytes", func(t *testing.T) {
		assert.Empty(t, reason(t, "значение", c))
		assert.Empty(t, reason(t, "日本語", c))
	})

	t.Run("combining marks are normalized", func(t *testing.T) {
		// "e" + COMBINING ACUTE ACCENT composes into one character.
		assert.Equal(t, "validation.length.too_short", reason(t, "ae\u0301", validator.Length(3, 5)))
	})

	t.Run("bounds", func(t *testing.T) {
		assert.Empty(t, reason(t, "abc", c))
		assert.Empty(t, reason(t, "abcdefghijklm", c))
		assert.Equal(t, "validation.length.too_short", reason(t, "ab", c))
		assert.Equal(t, "validation.length.too_long", reason(t, "abcdefghijklmn", c))
	})

	t.Run("actual length in params", func(t *testing.T) {
		violations, err := validateValue(t, "ab", c)
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].GetParams()[validator.ParamActual])
	})

	t.Run("rune slice", func(t *testing.T) {
		assert.Equal(t, "validation.length.too_short", reason(t, []rune("ab"), c))
	})

	t.Run("integer is unsupported", func(t *testing.T) {
		violations, err := validateValue(t, 12345, c)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnsupportedFieldType)
		assert.Nil(t, violations)
	})

	t.Run("invalid bounds panic", func(t *testing.T) {
		assert.Panics(t, func() { validator.Length(-1, 3) })
		assert.Panics(t, func() { validator.Length(4, 3) })
	})
}

func TestCase(t *testing.T) {
	t.Parallel()

	assert.Empty(t, reason(t, "ABC-123", validator.Case(validator.Upper)))
	assert.Empty(t, reason(t, "ПРИВЕТ", validator.Case(validator.Upper)))
	assert.Equal(t, "validation.case.not_upper", reason(t, "AbC", validator.Case(validator.Upper)))
	assert.Empty(t, reason(t, "abc_1", validator.Case(validator.Lower)))
	assert.Equal(t, "validation.case.not_lower", reason(t, "Привет", validator.Case(validator.Lower)))

	assert.Panics(t, func() { validator.Case("title") })

	t.Run("unknown case from params is a configuration error", func(t *testing.T) {
		for _, params := range []map[string]any{{validator.ParamCase: "title"}, nil} {
			_, err := validateValue(t, "Abc", validator.NewConstraint(validator.KindCase, params))
			assert.ErrorIs(t, err, validator.ErrInvalidConstraint)
		}
	})
}

func TestCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class validator.CharClass
		value string
		valid bool
	}{
		{"digits", validator.Digits, "0123", true},
		{"digits with letter", validator.Digits, "01a", false},
		{"letters", validator.Letters, "abcЖ", true},
		{"letters with space", validator.Letters, "ab c", false},
		{"alnum", validator.Alnum, "abc123", true},
		{"latin", validator.Latin, "Hello", true},
		{"latin with cyrillic", validator.Latin, "Hell\u043e", false},
		{"cyrillic", validator.Cyrillic, "Привет", true},
		{"hex", validator.Hex, "deadBEEF09", true},
		{"hex with g", validator.Hex, "abcg", false},
		{"empty passes", validator.Digits, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reason(t, tt.value, validator.Charset(tt.class))
			if tt.valid {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, "validation.charset.mismatch", got)
			}
		})
	}

	assert.Panics(t, func() { validator.Charset("emoji") })

	t.Run("unknown class from params is a configuration error", func(t *testing.T) {
		_, err := validateValue(t, "abc", validator.NewConstraint(validator.KindCharset, map[string]any{validator.ParamClass: "emoji"}))
		require.ErrorIs(t, err, validator.ErrInvalidConstraint)
		assert.Contains(t, err.Error(), "emoji")
	})
}

func TestNotBlank(t *testing.T) {
	t.Parallel()

	assert.Empty(t, reason(t, " x ", validator.NotBlank()))
	assert.Equal(t, "validation.notblank.blank", reason(t, "", validator.NotBlank()))
	assert.Equal(t, "validation.notblank.blank", reason(t, " \t\n", validator.NotBlank()))

	var missing *string
	assert.Empty(t, reason(t, missing, validator.NotBlank()))
}

func TestNotNull(t *testing.T) {
	t.Parallel()

	var missing *string
	assert.Equal(t, "validation.notnull.missing", reason(t, missing, validator.NotNull()))

	var nilSlice []int
	assert.Equal(t, "validation.notnull.missing", reason(t, nilSlice, validator.NotNull()))

	empty := ""
	assert.Empty(t, reason(t, &empty, validator.NotNull()))
	assert.Empty(t, reason(t, 0, validator.NotNull()))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	c := validator.OneOf("draft", "published")
	assert.Empty(t, reason(t, "draft", c))
	assert.Equal(t, "validation.oneof.not_allowed", reason(t, "archived", c))

	type Status string
	assert.Empty(t, reason(t, Status("published"), c))

	violations, err := validateValue(t, "x", c)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "draft, published", violations[0].GetParams()[validator.ParamValues])

	assert.Panics(t, func() { validator.OneOf() })
}
