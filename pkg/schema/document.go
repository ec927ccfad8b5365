package schema

import (
	"fmt"
	"regexp"

	"github.com/shashibeit/ui-theme-material/pkg/cache"
	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// patterns shares compiled expressions between decoded documents.
var patterns = cache.New[string, *regexp.Regexp](256)

// Document is the serialized form of a validator.Schema.
type Document struct {
	Fields map[string][]RuleSpec `json:"fields" yaml:"fields"`
}

// RuleSpec is one rule entry. Only the parameters of the named rule are read.
type RuleSpec struct {
	Rule      string   `json:"rule" yaml:"rule"`
	Message   string   `json:"message,omitempty" yaml:"message,omitempty"`
	Length    *int     `json:"length,omitempty" yaml:"length,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Field     string   `json:"field,omitempty" yaml:"field,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Years     *int     `json:"years,omitempty" yaml:"years,omitempty"`
	MaxMB     *float64 `json:"maxMB,omitempty" yaml:"maxMB,omitempty"`
	Types     []string `json:"types,omitempty" yaml:"types,omitempty"`
	Predicate string   `json:"predicate,omitempty" yaml:"predicate,omitempty"`
}

// Schema builds the validator.Schema the document describes.
// reg may be nil when the document has no custom entries.
func (d Document) Schema(reg Registry) (validator.Schema, error) {
	out := make(validator.Schema, len(d.Fields))
	for name, specs := range d.Fields {
		if name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidDocument)
		}
		rules := make([]validator.Rule, 0, len(specs))
		for i, spec := range specs {
			rule, err := spec.build(reg)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q rule %d: %w", ErrInvalidDocument, name, i, err)
			}
			rules = append(rules, rule)
		}
		out[name] = rules
	}
	return out, nil
}

func (s RuleSpec) build(reg Registry) (validator.Rule, error) {
	rule, err := s.rule(reg)
	if err != nil {
		return validator.Rule{}, err
	}
	if s.Message != "" {
		rule = rule.WithMessage(s.Message)
	}
	return rule, nil
}

func (s RuleSpec) rule(reg Registry) (validator.Rule, error) {
	switch s.Rule {
	case "required":
		return validator.Required(), nil
	case "email":
		return validator.Email(), nil
	case "number":
		return validator.Number(), nil
	case "url":
		return validator.URL(), nil
	case "phone":
		return validator.Phone(), nil
	case "strongPassword":
		return validator.StrongPassword(), nil
	case "minLength", "maxLength":
		n, err := nonNegative("length", s.Length)
		if err != nil {
			return validator.Rule{}, err
		}
		if s.Rule == "minLength" {
			return validator.MinLength(n), nil
		}
		return validator.MaxLength(n), nil
	case "pattern":
		if s.Pattern == "" {
			return validator.Rule{}, fmt.Errorf("pattern: missing")
		}
		re, err := patterns.GetOrLoad(s.Pattern, regexp.Compile)
		if err != nil {
			return validator.Rule{}, fmt.Errorf("pattern: %w", err)
		}
		return validator.Pattern(re), nil
	case "matchField":
		if s.Field == "" {
			return validator.Rule{}, fmt.Errorf("field: missing")
		}
		return validator.MatchField(s.Field), nil
	case "minValue":
		if s.Min == nil {
			return validator.Rule{}, fmt.Errorf("min: missing")
		}
		return validator.MinValue(*s.Min), nil
	case "maxValue":
		if s.Max == nil {
			return validator.Rule{}, fmt.Errorf("max: missing")
		}
		return validator.MaxValue(*s.Max), nil
	case "range":
		if s.Min == nil || s.Max == nil {
			return validator.Rule{}, fmt.Errorf("range: min and max are required")
		}
		if *s.Min > *s.Max {
			return validator.Rule{}, fmt.Errorf("range: min %v exceeds max %v", *s.Min, *s.Max)
		}
		return validator.Range(*s.Min, *s.Max), nil
	case "age":
		years, err := nonNegative("years", s.Years)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.Age(years), nil
	case "fileSize":
		if s.MaxMB == nil || *s.MaxMB <= 0 {
			return validator.Rule{}, fmt.Errorf("maxMB: must be positive")
		}
		return validator.FileSize(*s.MaxMB), nil
	case "fileType":
		if len(s.Types) == 0 {
			return validator.Rule{}, fmt.Errorf("types: missing")
		}
		return validator.FileType(s.Types...), nil
	case "custom":
		if s.Predicate == "" {
			return validator.Rule{}, fmt.Errorf("predicate: missing")
		}
		if s.Message == "" {
			return validator.Rule{}, fmt.Errorf("message: required for custom rules")
		}
		fn, ok := reg.Lookup(s.Predicate)
		if !ok {
			return validator.Rule{}, fmt.Errorf("predicate %q: not registered", s.Predicate)
		}
		return validator.Custom(fn, s.Message), nil
	case "":
		return validator.Rule{}, fmt.Errorf("rule: missing name")
	default:
		return validator.Rule{}, fmt.Errorf("rule %q: unknown", s.Rule)
	}
}

func nonNegative(name string, n *int) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%s: missing", name)
	}
	if *n < 0 {
		return 0, fmt.Errorf("%s: negative value %d", name, *n)
	}
	return *n, nil
}
