package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Schema maps field names to their ordered rules.
type Schema map[string][]Rule

// Fields returns the field names in sorted order.
func (s Schema) Fields() []string {
	return slices.Sorted(maps.Keys(s))
}

// Has reports whether field has at least one rule.
func (s Schema) Has(field string) bool {
	return len(s[field]) > 0
}

// Validate checks every rule descriptor in the schema.
func (s Schema) Validate() error {
	for _, field := range s.Fields() {
		for i, rule := range s[field] {
			if err := rule.Validate(); err != nil {
				return fmt.Errorf("field %q rule %d: %w", field, i, err)
			}
		}
	}
	return nil
}

// FieldInput is one field handed to ValidateForm.
type FieldInput struct {
	Value   Value
	Rules   []Rule
	Touched bool
	Dirty   bool
}

// FormResult aggregates the per-field outcomes of a form pass.
// Errors only holds fields that failed; a missing key means no error.
type FormResult struct {
	Valid         bool
	Errors        map[string][]string
	FirstErrors   map[string]string
	TouchedFields []string
	DirtyFields   []string
	Failures      ValidationErrors
}

// Err returns the failures as an error, or nil when the form is valid.
func (r FormResult) Err() error {
	if r.Failures.IsEmpty() {
		return nil
	}
	return r.Failures
}

// ValidateForm validates every field independently. Custom predicates see a
// snapshot of all field values. Fields are visited in sorted order so the
// result does not depend on map iteration.
func ValidateForm(fields map[string]FieldInput) (FormResult, error) {
	return validateFields(fields, snapshot(fields), func(FieldInput) bool { return true })
}

// ValidateFormContext is ValidateForm where predicates see values, overlaid
// with the field inputs. Use it when predicates read fields that have no rules.
func ValidateFormContext(fields map[string]FieldInput, values Values) (FormResult, error) {
	snap := values.Clone()
	for name, f := range fields {
		snap[name] = f.Value
	}
	return validateFields(fields, snap, func(FieldInput) bool { return true })
}

// ValidateTouchedFields validates only touched fields. The predicate snapshot
// still contains every field so cross-field rules see untouched siblings.
func ValidateTouchedFields(fields map[string]FieldInput) (FormResult, error) {
	return validateFields(fields, snapshot(fields), func(f FieldInput) bool { return f.Touched })
}

func snapshot(fields map[string]FieldInput) Values {
	values := make(Values, len(fields))
	for name, f := range fields {
		values[name] = f.Value
	}
	return values
}

func validateFields(fields map[string]FieldInput, values Values, include func(FieldInput) bool) (FormResult, error) {
	result := FormResult{
		Valid:       true,
		Errors:      make(map[string][]string),
		FirstErrors: make(map[string]string),
	}
	ctx := Context{values: values}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		field := fields[name]
		if !include(field) {
			continue
		}

		fr, err := ValidateFieldContext(field.Value, field.Rules, ctx.forField(name))
		if err != nil {
			return FormResult{}, fmt.Errorf("field %q: %w", name, err)
		}
		if !fr.Valid {
			result.Valid = false
			result.Errors[name] = fr.Errors
			result.FirstErrors[name] = fr.FirstError()
			result.Failures = append(result.Failures, fr.Failures...)
		}
		if field.Touched {
			result.TouchedFields = append(result.TouchedFields, name)
		}
		if field.Dirty {
			result.DirtyFields = append(result.DirtyFields, name)
		}
	}

	return result, nil
}

// HasErrors reports whether any field has at least one message.
func HasErrors(errs map[string][]string) bool {
	for _, msgs := range errs {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// FieldError returns the first message for field, or "".
func FieldError(errs map[string][]string, field string) string {
	if msgs := errs[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// FieldErrors returns the messages for field, never nil.
func FieldErrors(errs map[string][]string, field string) []string {
	if msgs, ok := errs[field]; ok {
		return slices.Clone(msgs)
	}
	return []string{}
}

// ClearFieldErrors returns a copy of errs without field.
func ClearFieldErrors(errs map[string][]string, field string) map[string][]string {
	out := maps.Clone(errs)
	if out == nil {
		out = make(map[string][]string)
	}
	delete(out, field)
	return out
}

// MergeFieldResult returns a copy of errs where field's entry is replaced by
// messages, or removed when messages is empty. Other entries are untouched.
func MergeFieldResult(errs map[string][]string, field string, messages []string) map[string][]string {
	out := ClearFieldErrors(errs, field)
	if len(messages) > 0 {
		out[field] = slices.Clone(messages)
	}
	return out
}
