package validator

import (
	"maps"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/shashibeit/ui-theme-material/pkg/sanitizer"
)

// RuleKind names the check a Rule performs.
type RuleKind string

const (
	KindRequired  RuleKind = "required"
	KindEmail     RuleKind = "email"
	KindMinLength RuleKind = "minLength"
	KindMaxLength RuleKind = "maxLength"
	KindPattern   RuleKind = "pattern"
	KindNumber    RuleKind = "number"
	KindURL       RuleKind = "url"
	KindPhone     RuleKind = "phone"
	KindCustom    RuleKind = "custom"
)

// Matcher is satisfied by *regexp.Regexp and by non-regexp policies such as StrongPassword.
type Matcher interface {
	MatchString(s string) bool
}

// Predicate decides a custom rule. It receives the raw value and the validation context.
type Predicate func(value Value, ctx Context) bool

// Rule is a declarative description of one check and its failure message.
// Length is meaningful for length rules, Pattern for pattern rules and
// Predicate for custom rules.
type Rule struct {
	Name              string
	Kind              RuleKind
	Message           string
	Length            int
	Pattern           Matcher
	Predicate         Predicate
	TranslationKey    string
	TranslationValues map[string]any
}

// WithMessage returns a copy of the rule that reports msg.
// The translation key is dropped so a caller's message is never replaced by a translation.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	r.TranslationKey = ""
	r.TranslationValues = nil
	return r
}

// Params returns a copy of the rule's translation values.
func (r Rule) Params() map[string]any {
	return maps.Clone(r.TranslationValues)
}

// Validate reports whether the descriptor can be evaluated.
func (r Rule) Validate() error {
	switch r.Kind {
	case KindRequired, KindEmail, KindNumber, KindURL, KindPhone:
		return nil
	case KindMinLength, KindMaxLength:
		if r.Length < 0 {
			return misconfigured(r.Kind, "negative length %d", r.Length)
		}
		return nil
	case KindPattern:
		if r.Pattern == nil {
			return misconfigured(r.Kind, "missing pattern")
		}
		return nil
	case KindCustom:
		if r.Predicate == nil {
			return misconfigured(r.Kind, "missing predicate")
		}
		return nil
	case "":
		return misconfigured(r.Kind, "missing kind")
	default:
		return misconfigured(r.Kind, "unknown kind")
	}
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// phoneFormatting lists the characters stripped before matching a phone number.
const phoneFormatting = " -()"

// accepts reports whether the kind evaluates values of the given tag.
func (k RuleKind) accepts(t Tag) bool {
	switch k {
	case KindRequired, KindCustom:
		return true
	case KindNumber:
		return t == TagString || t == TagNumber
	default:
		return t == TagString
	}
}

// check evaluates the rule. Rule failures return false; only misconfiguration returns an error.
func (r Rule) check(v Value, ctx Context) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	switch r.Kind {
	case KindRequired:
		return !v.IsEmpty(), nil
	case KindCustom:
		return r.Predicate(v, ctx), nil
	}

	// Emptiness belongs to required.
	if v.IsEmpty() {
		return true, nil
	}
	if !r.Kind.accepts(v.Tag()) {
		return false, &MismatchError{Rule: r.Kind, Got: v.Tag()}
	}

	s := v.String()
	switch r.Kind {
	case KindEmail:
		return emailRegex.MatchString(s), nil
	case KindMinLength:
		return textLength(s) >= r.Length, nil
	case KindMaxLength:
		return textLength(s) <= r.Length, nil
	case KindPattern:
		return r.Pattern.MatchString(s), nil
	case KindNumber:
		if n, ok := v.Float(); ok {
			return !math.IsInf(n, 0) && !math.IsNaN(n), nil
		}
		return isNumeric(s), nil
	case KindURL:
		return isAbsoluteURL(s), nil
	case KindPhone:
		return phoneRegex.MatchString(sanitizer.RemoveChars(s, phoneFormatting)), nil
	}
	return true, nil
}

// textLength counts code points of the NFC form, so composed and decomposed
// spellings of the same text have the same length.
func textLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// isNumeric accepts decimal and exponent notation with surrounding whitespace.
// Blank text reads as zero. Hex, Inf and NaN spellings are rejected.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "x") || strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(n, 0)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
