package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is the sentinel matched by ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrSchemaMisconfigured is returned when a rule descriptor cannot be evaluated,
	// e.g. a pattern rule without a pattern or a custom rule without a predicate.
	ErrSchemaMisconfigured = errors.New("validator: schema misconfigured")

	// ErrValueTypeMismatch is returned when a rule receives a value variant it does not accept.
	ErrValueTypeMismatch = errors.New("validator: value type not accepted by rule")

	// ErrUnsupportedValue is returned when decoded data has no Value representation.
	ErrUnsupportedValue = errors.New("validator: unsupported value")
)

// MismatchError describes a rule applied to a value variant it does not accept.
type MismatchError struct {
	Rule RuleKind
	Got  Tag
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("validator: rule %q does not accept %s values", e.Rule, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrValueTypeMismatch
}

func misconfigured(kind RuleKind, format string, args ...any) error {
	return fmt.Errorf("%w: rule %q: %s", ErrSchemaMisconfigured, kind, fmt.Sprintf(format, args...))
}
