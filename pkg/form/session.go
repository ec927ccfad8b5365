package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shashibeit/ui-theme-material/pkg/logger"
	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// SubmitFunc receives a snapshot of the values of a valid form.
type SubmitFunc func(ctx context.Context, values validator.Values) error

// SubmitHandler validates and submits. It returns an error only when the schema
// cannot be evaluated; invalid forms and submit failures are not errors.
type SubmitHandler func(ctx context.Context, ev DefaultPreventer) error

// Session owns the live state of one form.
type Session struct {
	mu         sync.Mutex
	id         uuid.UUID
	schema     validator.Schema
	initial    validator.Values
	policy     Policy
	logger     *slog.Logger
	localizer  validator.Localizer
	transforms map[string]func(string) string
	state      State
}

// New starts a session for schema. With ValidateOnMount the form is validated
// once before New returns.
func New(schema validator.Schema, opts ...Option) (*Session, error) {
	if err := schema.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	s := &Session{
		id:         uuid.New(),
		schema:     schema,
		initial:    validator.Values{},
		policy:     DefaultPolicy(),
		logger:     logger.Discard(),
		transforms: make(map[string]func(string) string),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("form"), logger.SessionID(s.id.String()))
	s.state = newState(s.initial)

	if s.policy.ValidateOnMount {
		if _, err := s.ValidateForm(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) ID() uuid.UUID  { return s.id }
func (s *Session) Policy() Policy { return s.policy }

// State returns a deep copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Session) Values() validator.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Values.Clone()
}

func (s *Session) Value(field string) validator.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Values[field]
}

func (s *Session) Errors() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneErrors(s.state.Errors)
}

func (s *Session) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsValid
}

func (s *Session) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsSubmitting
}

// IsDirty reports whether any field was written since the last reset.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(trueKeys(s.state.Dirty)) > 0
}

// SetValue writes a field and marks it dirty. With ValidateOnChange and rules
// for the field, only that field's error entry is recomputed.
// On error the state is left unchanged.
func (s *Session) SetValue(field string, value validator.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.state.Values.Clone()
	values[field] = value

	if s.policy.ValidateOnChange && s.schema.Has(field) {
		messages, err := s.evaluate(field, values)
		if err != nil {
			return err
		}
		s.state.Errors = validator.MergeFieldResult(s.state.Errors, field, messages)
	}

	s.state.Values = values
	s.state.Dirty[field] = true
	return nil
}

// SetValues merges values into the form and marks every key dirty. No validation runs.
func (s *Session) SetValues(values validator.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for field, v := range values {
		s.state.Values[field] = v
		s.state.Dirty[field] = true
	}
}

// SetFieldTouched sets the touched flag without validating.
func (s *Session) SetFieldTouched(field string, touched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Touched[field] = touched
}

// SetFieldError replaces field's errors, e.g. with server-side messages.
// Empty messages are dropped. No messages clears the entry.
func (s *Session) SetFieldError(field string, messages ...string) {
	messages = slices.DeleteFunc(slices.Clone(messages), func(m string) bool { return m == "" })
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Errors = validator.MergeFieldResult(s.state.Errors, field, messages)
}

func (s *Session) ClearFieldError(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Errors, field)
}

// ValidateField validates one field against its rules regardless of touched or
// dirty state and merges the outcome into Errors. IsValid is not changed.
func (s *Session) ValidateField(field string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.evaluate(field, s.state.Values)
	if err != nil {
		return false, err
	}
	s.state.Errors = validator.MergeFieldResult(s.state.Errors, field, messages)
	return len(messages) == 0, nil
}

// ValidateForm validates every schema field and replaces Errors and IsValid.
func (s *Session) ValidateForm() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateForm()
}

func (s *Session) validateForm() (bool, error) {
	fields := make(map[string]validator.FieldInput, len(s.schema))
	for name, rules := range s.schema {
		fields[name] = validator.FieldInput{
			Value:   s.state.Values[name],
			Rules:   rules,
			Touched: s.state.Touched[name],
			Dirty:   s.state.Dirty[name],
		}
	}

	result, err := validator.ValidateFormContext(fields, s.state.Values)
	if err != nil {
		return false, err
	}

	errs := make(map[string][]string, len(result.Errors))
	for _, name := range result.Failures.Fields() {
		errs[name] = result.Failures.For(name).Messages(s.localizer)
	}
	s.state.Errors = errs
	s.state.IsValid = result.Valid
	return result.Valid, nil
}

// evaluate runs field's rules against values and returns the rendered messages.
func (s *Session) evaluate(field string, values validator.Values) ([]string, error) {
	result, err := validator.ValidateFieldContext(values[field], s.schema[field], validator.NewContext(field, values))
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return result.Failures.Messages(s.localizer), nil
}

// HandleChange returns an input change adapter for field.
func (s *Session) HandleChange(field string) func(ChangeEvent) error {
	return func(ev ChangeEvent) error {
		v := ev.value()
		if fn, ok := s.transforms[field]; ok && v.Tag() == validator.TagString {
			v = validator.String(fn(v.String()))
		}
		return s.SetValue(field, v)
	}
}

// HandleBlur returns a blur adapter for field: it marks the field touched and,
// with ValidateOnBlur and rules for the field, validates it.
func (s *Session) HandleBlur(field string) func() error {
	return func() error {
		s.SetFieldTouched(field, true)
		if s.policy.ValidateOnBlur && s.schema.Has(field) {
			_, err := s.ValidateField(field)
			return err
		}
		return nil
	}
}

// HandleSubmit wraps onSubmit in the validate-then-submit lifecycle.
// A nil onSubmit only validates.
func (s *Session) HandleSubmit(onSubmit SubmitFunc) SubmitHandler {
	return func(ctx context.Context, ev DefaultPreventer) error {
		if ev != nil {
			ev.PreventDefault()
		}

		s.setSubmitting(true)
		defer s.setSubmitting(false)

		valid, err := s.ValidateForm()
		if err != nil {
			s.logger.ErrorContext(ctx, "form validation failed to run", logger.Error(err))
			return err
		}
		if !valid {
			s.logger.DebugContext(ctx, "form submission skipped: invalid", logger.Fields(s.errorFields()))
			return nil
		}
		if onSubmit != nil {
			s.submit(ctx, onSubmit, s.Values())
		}
		return nil
	}
}

func (s *Session) submit(ctx context.Context, onSubmit SubmitFunc, values validator.Values) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "form submission panicked", logger.Panic(r), logger.Duration(time.Since(start)))
		}
	}()

	if err := onSubmit(ctx, values); err != nil {
		s.logger.ErrorContext(ctx, "form submission error", logger.Error(err), logger.Duration(time.Since(start)))
		return
	}
	s.logger.DebugContext(ctx, "form submitted", logger.Duration(time.Since(start)))
}

func (s *Session) setSubmitting(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsSubmitting = on
}

func (s *Session) errorFields() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := make([]string, 0, len(s.state.Errors))
	for name := range s.state.Errors {
		fields = append(fields, name)
	}
	slices.Sort(fields)
	return fields
}

// ResetForm replaces the state wholesale. Nil values restores the initial values.
func (s *Session) ResetForm(values validator.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if values == nil {
		values = s.initial
	}
	s.state = newState(values)
}

// FieldProps projects the state of field and binds its handlers.
// An unset value is reported as the empty string.
func (s *Session) FieldProps(field string) FieldProps {
	s.mu.Lock()
	value := s.state.Values[field]
	props := FieldProps{
		Name:    field,
		Error:   validator.FieldError(s.state.Errors, field),
		Touched: s.state.Touched[field],
		Dirty:   s.state.Dirty[field],
	}
	s.mu.Unlock()

	if value.IsNull() {
		value = validator.String("")
	}
	props.Value = value
	props.OnChange = s.HandleChange(field)
	props.OnBlur = s.HandleBlur(field)
	return props
}
