package form

import (
	"log/slog"

	"github.com/shashibeit/ui-theme-material/pkg/i18n"
	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// Option configures a Session.
type Option func(*Session)

// WithInitialValues sets the values a session starts with and ResetForm returns to.
func WithInitialValues(values validator.Values) Option {
	return func(s *Session) { s.initial = values.Clone() }
}

func WithPolicy(p Policy) Option {
	return func(s *Session) { s.policy = p }
}

func WithValidateOnChange(on bool) Option {
	return func(s *Session) { s.policy.ValidateOnChange = on }
}

func WithValidateOnBlur(on bool) Option {
	return func(s *Session) { s.policy.ValidateOnBlur = on }
}

func WithValidateOnMount(on bool) Option {
	return func(s *Session) { s.policy.ValidateOnMount = on }
}

// WithLogger sets the logger for submit failures and lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLocalizer renders rule messages through loc where the rule has a translation key.
func WithLocalizer(loc validator.Localizer) Option {
	return func(s *Session) { s.localizer = loc }
}

// WithTranslator is WithLocalizer for an i18n.Translator bound to lang.
func WithTranslator(t *i18n.Translator, lang string) Option {
	return func(s *Session) {
		if t != nil {
			s.localizer = t.For(lang)
		}
	}
}

// WithInputTransform cleans string input for field in HandleChange, e.g. sanitizer.Trim.
func WithInputTransform(field string, fn func(string) string) Option {
	return func(s *Session) {
		if fn != nil {
			s.transforms[field] = fn
		}
	}
}
