package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single rule failure with translation support.
type ValidationError struct {
	Field             string
	Rule              RuleKind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects rule failures and satisfies the error interface.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// For returns the failures recorded for field.
func (ve ValidationErrors) For(field string) ValidationErrors {
	var out ValidationErrors
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Localizer resolves a translation key into a message.
// It reports false when no translation exists.
type Localizer interface {
	Localize(key string, params map[string]any) (string, bool)
}

// Messages renders the failures through loc, falling back to the rule message
// when loc is nil, the failure has no translation key, or no translation exists.
func (ve ValidationErrors) Messages(loc Localizer) []string {
	if len(ve) == 0 {
		return nil
	}
	out := make([]string, 0, len(ve))
	for _, err := range ve {
		out = append(out, err.localized(loc))
	}
	return out
}

func (e ValidationError) localized(loc Localizer) string {
	if loc == nil || e.TranslationKey == "" {
		return e.Message
	}
	if msg, ok := loc.Localize(e.TranslationKey, e.TranslationValues); ok {
		return msg
	}
	return e.Message
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
