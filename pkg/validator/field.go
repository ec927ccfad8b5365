package validator

// FieldResult is the outcome of validating one value.
type FieldResult struct {
	Valid    bool
	Errors   []string
	Failures ValidationErrors
}

// FirstError returns the first failure message, or "" when the value is valid.
func (r FieldResult) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// ValidateField evaluates value against rules with an empty validation context.
// See ValidateFieldContext.
func ValidateField(value Value, rules []Rule) (FieldResult, error) {
	return ValidateFieldContext(value, rules, Context{})
}

// ValidateFieldContext evaluates every rule in order and collects the message of
// each failing one. A non-nil error means a rule is misconfigured or was given a
// value variant it does not accept; rule failures are never errors.
// A panicking custom predicate is not recovered.
func ValidateFieldContext(value Value, rules []Rule, ctx Context) (FieldResult, error) {
	var failures ValidationErrors
	for _, rule := range rules {
		ok, err := rule.check(value, ctx)
		if err != nil {
			return FieldResult{}, err
		}
		if ok {
			continue
		}
		failures.Add(ValidationError{
			Field:             ctx.Field(),
			Rule:              rule.Kind,
			Message:           rule.Message,
			TranslationKey:    rule.TranslationKey,
			TranslationValues: rule.Params(),
		})
	}

	return FieldResult{
		Valid:    failures.IsEmpty(),
		Errors:   failures.Messages(nil),
		Failures: failures,
	}, nil
}
