package validator_test

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

func valid(t *testing.T, v validator.Value, rules ...validator.Rule) bool {
	t.Helper()
	r, err := validator.ValidateField(v, rules)
	require.NoError(t, err)
	return r.Valid
}

func TestRequired(t *testing.T) {
	t.Parallel()

	for _, v := range []validator.Value{validator.String(""), validator.Null(), validator.Value{}, validator.Strings()} {
		assert.False(t, valid(t, v, validator.Required()), "%v should fail", v.Tag())
	}
	for _, v := range []validator.Value{validator.Int(0), validator.Bool(false), validator.String("a"), validator.Strings("1")} {
		assert.True(t, valid(t, v, validator.Required()), "%v should pass", v.Tag())
	}

	r, err := validator.ValidateField(validator.Null(), []validator.Rule{validator.Required()})
	require.NoError(t, err)
	assert.Equal(t, []string{"This field is required"}, r.Errors)
}

func TestEmptyValuesDeferToRequired(t *testing.T) {
	t.Parallel()

	rules := []validator.Rule{
		validator.Email(),
		validator.MinLength(5),
		validator.MaxLength(0),
		validator.MatchesRegex(`^\d+$`),
		validator.Number(),
		validator.URL(),
		validator.Phone(),
		validator.StrongPassword(),
		validator.MinValue(10),
		validator.MaxValue(1),
		validator.Range(1, 2),
		validator.Age(18),
		validator.FileSize(1),
		validator.FileType("image/png"),
	}
	empties := []validator.Value{validator.Null(), validator.String(""), validator.Strings()}

	for _, rule := range rules {
		for _, v := range empties {
			assert.True(t, valid(t, v, rule), "%s on empty %s", rule.Name, v.Tag())
		}
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"user@example.com", "first.last+tag@sub.example.co"} {
		assert.True(t, valid(t, validator.String(s), validator.Email()), s)
	}
	for _, s := range []string{"plain", "a@b", "a b@c.de", "@example.com", "user@.com "} {
		assert.False(t, valid(t, validator.String(s), validator.Email()), s)
	}
}

func TestLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		t.Parallel()
		r, err := validator.ValidateField(validator.String("abcd"), []validator.Rule{validator.MinLength(5)})
		require.NoError(t, err)
		assert.False(t, r.Valid)
		assert.Equal(t, []string{"Must be at least 5 characters long"}, r.Errors)

		assert.True(t, valid(t, validator.String("abcde"), validator.MinLength(5)))
	})

	t.Run("max length", func(t *testing.T) {
		t.Parallel()
		r, err := validator.ValidateField(validator.String("abcdef"), []validator.Rule{validator.MaxLength(5)})
		require.NoError(t, err)
		assert.Equal(t, []string{"Must be no more than 5 characters long"}, r.Errors)

		assert.True(t, valid(t, validator.String("abcde"), validator.MaxLength(5)))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()
		composed := validator.String("h\u00e9llo")
		decomposed := validator.String("he\u0301llo")
		for _, v := range []validator.Value{composed, decomposed} {
			assert.True(t, valid(t, v, validator.MinLength(5), validator.MaxLength(5)))
		}
		assert.True(t, valid(t, validator.String("日本語"), validator.MaxLength(3)))
	})
}

func TestPattern(t *testing.T) {
	t.Parallel()

	digits := validator.Pattern(regexp.MustCompile(`^\d+$`))
	assert.True(t, valid(t, validator.String("123"), digits))

	r, err := validator.ValidateField(validator.String("12a"), []validator.Rule{digits})
	require.NoError(t, err)
	assert.Equal(t, []string{"Invalid format"}, r.Errors)

	assert.True(t, valid(t, validator.String("abc"), validator.MatchesRegex(`^[a-c]+$`)))
	assert.Panics(t, func() { validator.MatchesRegex(`(`) })
}

func TestNumber(t *testing.T) {
	t.Parallel()

	accepted := []string{"42", "-2", "3.14", " 3.14 ", "1e5", "2.5E-3", ".5", "   "}
	for _, s := range accepted {
		assert.True(t, valid(t, validator.String(s), validator.Number()), s)
	}

	rejected := []string{"abc", "12a", "0x1F", "Inf", "-infinity", "NaN", "1_000", "1,5", "1e400"}
	for _, s := range rejected {
		r, err := validator.ValidateField(validator.String(s), []validator.Rule{validator.Number()})
		require.NoError(t, err, s)
		assert.Equal(t, []string{"Must be a valid number"}, r.Errors, s)
	}

	assert.True(t, valid(t, validator.NumberValue(3), validator.Number()))
	assert.False(t, valid(t, validator.NumberValue(math.Inf(1)), validator.Number()))
	assert.False(t, valid(t, validator.NumberValue(math.NaN()), validator.Number()))
}

func TestURL(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"https://example.com", "http://localhost:8080/path?q=1", "mailto:user@example.com", "ftp://files.example.com"} {
		assert.True(t, valid(t, validator.String(s), validator.URL()), s)
	}
	for _, s := range []string{"example.com", "/relative/path", "http://", "not a url", "://missing"} {
		assert.False(t, valid(t, validator.String(s), validator.URL()), s)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"+1 (555) 123-4567", "5551234567", "+44 20 7946 0958", "7"} {
		assert.True(t, valid(t, validator.String(s), validator.Phone()), s)
	}
	for _, s := range []string{"0123456", "abc", "+", "555.123.4567", "+12345678901234567"} {
		assert.False(t, valid(t, validator.String(s), validator.Phone()), s)
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	assert.True(t, valid(t, validator.String("Abc12345!"), validator.StrongPassword()))
	assert.True(t, valid(t, validator.String("zZ9&zZ9&"), validator.StrongPassword()))

	for _, s := range []string{
		"abc12345!", // no upper
		"ABC12345!", // no lower
		"Abcdefgh!", // no digit
		"Abc123456", // no symbol
		"Ab1!",      // too short
		"Abc 1234!", // space
		"Abc1234#!", // symbol outside the set
	} {
		assert.False(t, valid(t, validator.String(s), validator.StrongPassword()), s)
	}

	rule := validator.StrongPassword()
	assert.Equal(t, validator.KindPattern, rule.Kind)
	assert.Equal(t, "password(min=8, symbols=@$!%*?&)", rule.Pattern.(validator.PasswordPolicy).String())
}

func TestCustom(t *testing.T) {
	t.Parallel()

	t.Run("sees empty values", func(t *testing.T) {
		t.Parallel()
		notEmpty := validator.Custom(func(v validator.Value, _ validator.Context) bool { return !v.IsEmpty() }, "Fill me")
		r, err := validator.ValidateField(validator.String(""), []validator.Rule{notEmpty})
		require.NoError(t, err)
		assert.Equal(t, []string{"Fill me"}, r.Errors)
	})

	t.Run("accepts any value variant", func(t *testing.T) {
		t.Parallel()
		truthy := validator.Custom(func(v validator.Value, _ validator.Context) bool { return v.Bool() }, "Must accept")
		assert.True(t, valid(t, validator.Bool(true), truthy))
		assert.False(t, valid(t, validator.Bool(false), truthy))
	})

	t.Run("panics propagate", func(t *testing.T) {
		t.Parallel()
		boom := validator.Custom(func(validator.Value, validator.Context) bool { panic("boom") }, "x")
		assert.Panics(t, func() {
			_, _ = validator.ValidateField(validator.String("a"), []validator.Rule{boom})
		})
	})
}

func TestTypeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rule  validator.Rule
		value validator.Value
	}{
		{"email on number", validator.Email(), validator.Int(5)},
		{"min length on bool", validator.MinLength(2), validator.Bool(true)},
		{"pattern on list", validator.MatchesRegex(`.`), validator.Strings("a")},
		{"url on file", validator.URL(), validator.File(validator.FileRef{Name: "f"})},
		{"number on bool", validator.Number(), validator.Bool(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := validator.ValidateField(tt.value, []validator.Rule{tt.rule})
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrValueTypeMismatch)

			var mismatch *validator.MismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.rule.Kind, mismatch.Rule)
			assert.Equal(t, tt.value.Tag(), mismatch.Got)
		})
	}
}

func TestMisconfiguredRules(t *testing.T) {
	t.Parallel()

	t.Run("descriptors", func(t *testing.T) {
		t.Parallel()
		for _, rule := range []validator.Rule{
			{Kind: validator.KindPattern, Message: "x"},
			{Kind: validator.KindCustom, Message: "x"},
			{Kind: validator.KindMinLength, Length: -1},
			{Kind: "zipcode"},
			{},
		} {
			assert.ErrorIs(t, rule.Validate(), validator.ErrSchemaMisconfigured)

			_, err := validator.ValidateField(validator.String("a"), []validator.Rule{rule})
			assert.ErrorIs(t, err, validator.ErrSchemaMisconfigured)
		}
	})

	t.Run("checked even on empty values", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateField(validator.Null(), []validator.Rule{{Kind: validator.KindPattern}})
		assert.ErrorIs(t, err, validator.ErrSchemaMisconfigured)
	})

	t.Run("constructors panic", func(t *testing.T) {
		t.Parallel()
		var nilRegexp *regexp.Regexp
		assert.Panics(t, func() { validator.MinLength(-1) })
		assert.Panics(t, func() { validator.MaxLength(-1) })
		assert.Panics(t, func() { validator.Pattern(nil) })
		assert.Panics(t, func() { validator.Pattern(nilRegexp) })
		assert.Panics(t, func() { validator.Custom(nil, "x") })
	})

	t.Run("schema validate names the field", func(t *testing.T) {
		t.Parallel()
		err := validator.Schema{
			"ok":  {validator.Required()},
			"bad": {validator.Required(), {Kind: validator.KindCustom}},
		}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrSchemaMisconfigured)
		assert.Contains(t, err.Error(), `field "bad" rule 1`)
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.MinLength(3)
	custom := base.WithMessage("Too short")

	assert.Equal(t, "Too short", custom.Message)
	assert.Empty(t, custom.TranslationKey)
	assert.Nil(t, custom.Params())
	assert.Equal(t, "validation.min_length", base.TranslationKey)
	assert.Equal(t, map[string]any{"min": 3}, base.Params())

	params := base.Params()
	params["min"] = 99
	assert.Equal(t, map[string]any{"min": 3}, base.Params())
}
