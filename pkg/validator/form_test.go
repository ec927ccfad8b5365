package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

func TestValidateField_Order(t *testing.T) {
	t.Parallel()

	rules := []validator.Rule{
		validator.MinLength(10),
		validator.MatchesRegex(`^\d+$`),
		validator.Required(),
	}

	r, err := validator.ValidateField(validator.String("abc"), rules)
	require.NoError(t, err)
	assert.False(t, r.Valid)
	assert.Equal(t, []string{"Must be at least 10 characters long", "Invalid format"}, r.Errors)
	assert.Equal(t, r.Errors[0], r.FirstError())
	require.Len(t, r.Failures, 2)
	assert.Equal(t, validator.KindMinLength, r.Failures[0].Rule)
	assert.Equal(t, validator.KindPattern, r.Failures[1].Rule)

	r, err = validator.ValidateField(validator.String("1234567890"), rules)
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.FirstError())
}

func TestValidateFieldContext(t *testing.T) {
	t.Parallel()

	ctx := validator.NewContext("code", validator.Values{"kind": validator.String("numeric")})
	rule := validator.Custom(func(v validator.Value, c validator.Context) bool {
		if c.Get("kind").String() != "numeric" {
			return true
		}
		_, ok := v.Float()
		return ok
	}, "Code must be numeric")

	r, err := validator.ValidateFieldContext(validator.String("x1"), []validator.Rule{rule, validator.MinLength(3)}, ctx)
	require.NoError(t, err)
	require.Len(t, r.Failures, 2)
	assert.Equal(t, "code", r.Failures[0].Field)
	assert.Equal(t, "Code must be numeric", r.Failures[0].Message)
	assert.Equal(t, "validation.min_length", r.Failures[1].TranslationKey)
	assert.Equal(t, map[string]any{"min": 3}, r.Failures[1].TranslationValues)
}

func TestContext(t *testing.T) {
	t.Parallel()

	values := validator.Values{"a": validator.String("1")}
	ctx := validator.NewContext("b", values)
	values["a"] = validator.String("changed")

	assert.Equal(t, "b", ctx.Field())
	assert.Equal(t, validator.String("1"), ctx.Get("a"))
	assert.True(t, ctx.Get("missing").IsNull())

	snap := ctx.Values()
	snap["a"] = validator.String("mutated")
	assert.Equal(t, validator.String("1"), ctx.Get("a"))

	var zero validator.Context
	assert.Empty(t, zero.Field())
	assert.True(t, zero.Get("a").IsNull())
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("required fails first and email adds nothing", func(t *testing.T) {
		t.Parallel()
		result, err := validator.ValidateForm(map[string]validator.FieldInput{
			"email": {Value: validator.String(""), Rules: []validator.Rule{validator.Required(), validator.Email()}},
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, map[string][]string{"email": {"This field is required"}}, result.Errors)
		assert.Equal(t, map[string]string{"email": "This field is required"}, result.FirstErrors)
	})

	t.Run("cross-field custom rule", func(t *testing.T) {
		t.Parallel()
		matches := validator.Custom(func(v validator.Value, ctx validator.Context) bool {
			return v.Equal(ctx.Get("password"))
		}, "Passwords do not match")

		result, err := validator.ValidateForm(map[string]validator.FieldInput{
			"password":        {Value: validator.String("Abc12345!")},
			"confirmPassword": {Value: validator.String("different"), Rules: []validator.Rule{matches}},
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Passwords do not match"}, result.Errors["confirmPassword"])
		_, ok := result.Errors["password"]
		assert.False(t, ok)

		result, err = validator.ValidateForm(map[string]validator.FieldInput{
			"password":        {Value: validator.String("Abc12345!")},
			"confirmPassword": {Value: validator.String("Abc12345!"), Rules: []validator.Rule{validator.MatchField("password")}},
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("passes touched and dirty through sorted", func(t *testing.T) {
		t.Parallel()
		result, err := validator.ValidateForm(map[string]validator.FieldInput{
			"zeta":  {Value: validator.String("z"), Touched: true, Dirty: true},
			"alpha": {Value: validator.String("a"), Touched: true},
			"mid":   {Value: validator.String("m"), Dirty: true},
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Equal(t, []string{"alpha", "zeta"}, result.TouchedFields)
		assert.Equal(t, []string{"mid", "zeta"}, result.DirtyFields)
		assert.NoError(t, result.Err())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		fields := map[string]validator.FieldInput{
			"email":    {Value: validator.String("bad"), Rules: []validator.Rule{validator.Required(), validator.Email()}},
			"password": {Value: validator.String(""), Rules: []validator.Rule{validator.Required(), validator.MinLength(8)}},
			"age":      {Value: validator.Int(12), Rules: []validator.Rule{validator.MinValue(18)}},
		}
		first, err := validator.ValidateForm(fields)
		require.NoError(t, err)
		second, err := validator.ValidateForm(fields)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, []string{"age", "email", "password"}, first.Failures.Fields())
	})

	t.Run("err exposes failures", func(t *testing.T) {
		t.Parallel()
		result, err := validator.ValidateForm(map[string]validator.FieldInput{
			"name": {Value: validator.Null(), Rules: []validator.Rule{validator.Required()}},
		})
		require.NoError(t, err)

		formErr := result.Err()
		require.Error(t, formErr)
		assert.ErrorIs(t, formErr, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(formErr))
		assert.Equal(t, []string{"This field is required"}, validator.ExtractValidationErrors(formErr).Get("name"))
	})

	t.Run("misconfiguration names the field", func(t *testing.T) {
		t.Parallel()
		_, err := validator.ValidateForm(map[string]validator.FieldInput{
			"age": {Value: validator.Bool(true), Rules: []validator.Rule{validator.Number()}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValueTypeMismatch)
		assert.Contains(t, err.Error(), `field "age"`)
	})
}

func TestValidateTouchedFields(t *testing.T) {
	t.Parallel()

	fields := map[string]validator.FieldInput{
		"email":    {Value: validator.String(""), Rules: []validator.Rule{validator.Required()}},
		"password": {Value: validator.String("secret")},
		"confirm": {
			Value:   validator.String("other"),
			Rules:   []validator.Rule{validator.MatchField("password")},
			Touched: true,
		},
	}

	result, err := validator.ValidateTouchedFields(fields)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, map[string][]string{"confirm": {"Passwords do not match"}}, result.Errors)
	assert.Equal(t, []string{"confirm"}, result.TouchedFields)

	delete(fields, "confirm")
	result, err = validator.ValidateTouchedFields(fields)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateFormContext(t *testing.T) {
	t.Parallel()

	fields := map[string]validator.FieldInput{
		"confirm": {Value: validator.String("secret"), Rules: []validator.Rule{validator.MatchField("password")}},
	}

	result, err := validator.ValidateFormContext(fields, validator.Values{
		"password": validator.String("secret"),
		"confirm":  validator.String("stale"),
	})
	require.NoError(t, err)
	assert.True(t, result.Valid, "field inputs override the context values")

	result, err = validator.ValidateFormContext(fields, nil)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestErrorMapHelpers(t *testing.T) {
	t.Parallel()

	errs := map[string][]string{
		"email":    {"Required", "Invalid"},
		"password": {},
	}

	assert.True(t, validator.HasErrors(errs))
	assert.False(t, validator.HasErrors(map[string][]string{"a": {}}))
	assert.False(t, validator.HasErrors(nil))

	assert.Equal(t, "Required", validator.FieldError(errs, "email"))
	assert.Empty(t, validator.FieldError(errs, "password"))
	assert.Empty(t, validator.FieldError(errs, "missing"))

	assert.Equal(t, []string{"Required", "Invalid"}, validator.FieldErrors(errs, "email"))
	assert.NotNil(t, validator.FieldErrors(errs, "missing"))
	assert.Empty(t, validator.FieldErrors(errs, "missing"))

	cleared := validator.ClearFieldErrors(errs, "email")
	assert.NotContains(t, cleared, "email")
	assert.Contains(t, errs, "email", "input is not modified")
	assert.NotNil(t, validator.ClearFieldErrors(nil, "x"))

	merged := validator.MergeFieldResult(errs, "password", []string{"Too short"})
	assert.Equal(t, []string{"Too short"}, merged["password"])
	assert.Equal(t, errs["email"], merged["email"])

	merged = validator.MergeFieldResult(merged, "email", nil)
	assert.NotContains(t, merged, "email")
}

func TestStockSchemas(t *testing.T) {
	t.Parallel()

	form := func(t *testing.T, schema validator.Schema, values validator.Values) validator.FormResult {
		t.Helper()
		require.NoError(t, schema.Validate())
		fields := make(map[string]validator.FieldInput, len(schema))
		for _, name := range schema.Fields() {
			fields[name] = validator.FieldInput{Value: values[name], Rules: schema[name]}
		}
		result, err := validator.ValidateForm(fields)
		require.NoError(t, err)
		return result
	}

	t.Run("user registration", func(t *testing.T) {
		t.Parallel()
		result := form(t, validator.UserRegistrationSchema(), validator.Values{
			"firstName": validator.String("Ada"),
			"lastName":  validator.String("L"),
			"email":     validator.String("ada@example.com"),
			"password":  validator.String("weakpassword"),
		})
		assert.Equal(t, map[string][]string{
			"lastName": {"Last name must be at least 2 characters"},
			"password": {"Password must contain uppercase, lowercase, number and special character"},
		}, result.Errors)
	})

	t.Run("contact form", func(t *testing.T) {
		t.Parallel()
		result := form(t, validator.ContactFormSchema(), validator.Values{
			"name":    validator.String("Ada"),
			"email":   validator.String("ada@example.com"),
			"subject": validator.String("Hello there"),
			"message": validator.String("Short"),
		})
		assert.Equal(t, map[string][]string{"message": {"Message must be at least 10 characters"}}, result.Errors)
	})

	t.Run("login form", func(t *testing.T) {
		t.Parallel()
		result := form(t, validator.LoginFormSchema(), validator.Values{})
		assert.Equal(t, map[string][]string{
			"email":    {"Email is required"},
			"password": {"Password is required"},
		}, result.Errors)
	})

	t.Run("profile form", func(t *testing.T) {
		t.Parallel()
		result := form(t, validator.ProfileFormSchema(), validator.Values{
			"displayName": validator.String("ada_l"),
			"website":     validator.String("not a url"),
			"phone":       validator.String("+1 555 0100"),
		})
		assert.Equal(t, map[string][]string{"website": {"Please enter a valid URL"}}, result.Errors)
	})

	t.Run("fresh schema per call", func(t *testing.T) {
		t.Parallel()
		s := validator.LoginFormSchema()
		s["email"] = nil
		assert.Len(t, validator.LoginFormSchema()["email"], 2)
	})
}

func TestValidationErrorsIsSentinel(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "a", Message: "bad"})
	wrapped := errors.Join(errors.New("context"), errs)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
}
