package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Required fails for null, the empty string and an empty list.
// Zero numbers and false pass.
func Required() Rule {
	return Rule{
		Name:           "required",
		Kind:           KindRequired,
		Message:        "This field is required",
		TranslationKey: "validation.required",
	}
}

func Email() Rule {
	return Rule{
		Name:           "email",
		Kind:           KindEmail,
		Message:        "Please enter a valid email address",
		TranslationKey: "validation.email",
	}
}

// MinLength fails when the text has fewer than n characters.
func MinLength(n int) Rule {
	if n < 0 {
		panic(fmt.Errorf("validator: MinLength(%d): negative length", n))
	}
	return Rule{
		Name:              "minLength",
		Kind:              KindMinLength,
		Length:            n,
		Message:           fmt.Sprintf("Must be at least %d characters long", n),
		TranslationKey:    "validation.min_length",
		TranslationValues: map[string]any{"min": n},
	}
}

// MaxLength fails when the text has more than n characters.
func MaxLength(n int) Rule {
	if n < 0 {
		panic(fmt.Errorf("validator: MaxLength(%d): negative length", n))
	}
	return Rule{
		Name:              "maxLength",
		Kind:              KindMaxLength,
		Length:            n,
		Message:           fmt.Sprintf("Must be no more than %d characters long", n),
		TranslationKey:    "validation.max_length",
		TranslationValues: map[string]any{"max": n},
	}
}

// Pattern fails when m does not match the text. Panics on a nil matcher.
func Pattern(m Matcher) Rule {
	if m == nil {
		panic("validator: Pattern: nil matcher")
	}
	if re, ok := m.(*regexp.Regexp); ok && re == nil {
		panic("validator: Pattern: nil regexp")
	}
	return Rule{
		Name:           "pattern",
		Kind:           KindPattern,
		Pattern:        m,
		Message:        "Invalid format",
		TranslationKey: "validation.pattern",
	}
}

// MatchesRegex compiles expr and wraps it in a Pattern rule.
// Compiles on each call; cache the rule for hot paths.
func MatchesRegex(expr string) Rule {
	return Pattern(regexp.MustCompile(expr))
}

func Number() Rule {
	return Rule{
		Name:           "number",
		Kind:           KindNumber,
		Message:        "Must be a valid number",
		TranslationKey: "validation.number",
	}
}

func URL() Rule {
	return Rule{
		Name:           "url",
		Kind:           KindURL,
		Message:        "Please enter a valid URL",
		TranslationKey: "validation.url",
	}
}

// Phone accepts digits with an optional leading plus once spaces, dashes and parentheses are stripped.
func Phone() Rule {
	return Rule{
		Name:           "phone",
		Kind:           KindPhone,
		Message:        "Please enter a valid phone number",
		TranslationKey: "validation.phone",
	}
}

// Custom passes iff fn returns true. fn sees empty values too.
func Custom(fn Predicate, message string) Rule {
	if fn == nil {
		panic("validator: Custom: nil predicate")
	}
	return Rule{
		Name:      "custom",
		Kind:      KindCustom,
		Predicate: fn,
		Message:   message,
	}
}

// passwordSymbols are the symbols a strong password may use.
const passwordSymbols = "@$!%*?&"

// PasswordPolicy matches passwords of at least MinLength characters made of
// letters, digits and passwordSymbols, with one of each class present.
type PasswordPolicy struct {
	MinLength int
}

func (p PasswordPolicy) MatchString(s string) bool {
	if len(s) < p.MinLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

func (p PasswordPolicy) String() string {
	return fmt.Sprintf("password(min=%d, symbols=%s)", p.MinLength, passwordSymbols)
}

// StrongPassword is a pattern rule requiring 8+ characters with lowercase,
// uppercase, digit and symbol characters.
func StrongPassword() Rule {
	r := Pattern(PasswordPolicy{MinLength: 8})
	r.Name = "strongPassword"
	r.Message = "Password must contain at least 8 characters with uppercase, lowercase, number and special character"
	r.TranslationKey = "validation.strong_password"
	r.TranslationValues = map[string]any{"min": 8}
	return r
}
