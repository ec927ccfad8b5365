package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/shashibeit/ui-theme-material/pkg/logger"
)

// DefaultLanguage is used when a requested language has no match.
const DefaultLanguage = "en"

// Option configures a Translator.
type Option func(*Translator)

func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger reports missing translations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// Translator looks up message templates by language and dotted key.
type Translator struct {
	catalog     Catalog
	langs       []string
	matcher     language.Matcher
	defaultLang string
	logger      *slog.Logger
}

// NewTranslator loads the adapter's catalog.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]language.Tag, 0, len(catalog))
	for lang := range catalog {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		t.langs = append(t.langs, lang)
	}
	slices.Sort(t.langs)
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}

	t.catalog = catalog
	t.matcher = language.NewMatcher(tags)
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Resolve maps a requested language onto a loaded one, or the default language.
func (t *Translator) Resolve(lang string) string {
	if _, ok := t.catalog[lang]; ok {
		return lang
	}
	if len(t.langs) == 0 {
		return t.defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Lookup returns the template for key with %{name} placeholders filled from params.
// It reports false when neither the resolved language nor the default language has the key.
func (t *Translator) Lookup(lang, key string, params map[string]any) (string, bool) {
	for _, l := range []string{t.Resolve(lang), t.defaultLang} {
		if tmpl, ok := t.template(l, key); ok {
			return substitute(tmpl, params), true
		}
	}
	t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	return "", false
}

// T is Lookup that falls back to the key itself and takes name/value pairs.
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if msg, ok := t.Lookup(lang, key, params); ok {
		return msg
	}
	return key
}

func (t *Translator) template(lang, key string) (string, bool) {
	var cur any = map[string]any(t.catalog[lang])
	for part := range strings.SplitSeq(key, ".") {
		switch m := cur.(type) {
		case map[string]any:
			cur = m[part]
		default:
			return "", false
		}
		if cur == nil {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with params[name]; unknown names are kept as-is.
func substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// Localizer binds a Translator to one language.
type Localizer struct {
	t    *Translator
	lang string
}

// For returns a Localizer for lang.
func (t *Translator) For(lang string) Localizer {
	return Localizer{t: t, lang: lang}
}

func (l Localizer) Localize(key string, params map[string]any) (string, bool) {
	if l.t == nil {
		return "", false
	}
	return l.t.Lookup(l.lang, key, params)
}
