package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

type mapLocalizer map[string]string

func (m mapLocalizer) Localize(key string, params map[string]any) (string, bool) {
	tmpl, ok := m[key]
	if !ok {
		return "", false
	}
	if n, ok := params["min"]; ok {
		return fmt.Sprintf(tmpl, n), true
	}
	return tmpl, true
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	assert.Equal(t, "validation failed: email: is required", errs.Error())

	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Rule: validator.KindMinLength, Message: "too short"},
		{Field: "email", Rule: validator.KindRequired, Message: "is required"},
		{Field: "password", Rule: validator.KindPattern, Message: "invalid"},
	}

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "invalid"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Len(t, errs.For("password"), 2)
	assert.Empty(t, errs.For("name"))
	assert.True(t, validator.ValidationErrors(nil).IsEmpty())
}

func TestValidationErrors_Messages(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "a", Message: "Must be at least 3 characters long", TranslationKey: "validation.min_length", TranslationValues: map[string]any{"min": 3}},
		{Field: "a", Message: "Invalid format", TranslationKey: "validation.pattern"},
		{Field: "a", Message: "Custom text"},
	}
	loc := mapLocalizer{"validation.min_length": "Mindestens %v Zeichen"}

	assert.Equal(t, []string{"Must be at least 3 characters long", "Invalid format", "Custom text"}, errs.Messages(nil))
	assert.Equal(t, []string{"Mindestens 3 Zeichen", "Invalid format", "Custom text"}, errs.Messages(loc))
	assert.Nil(t, validator.ValidationErrors(nil).Messages(loc))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	errs := validator.ValidationErrors{{Field: "a", Message: "bad"}}
	wrapped := fmt.Errorf("save user: %w", errs)
	assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
}
