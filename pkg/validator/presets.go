package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MatchField passes when the value equals the current value of other,
// e.g. a password confirmation.
func MatchField(other string) Rule {
	r := Custom(func(v Value, ctx Context) bool {
		return v.Equal(ctx.Get(other))
	}, "Passwords do not match")
	r.Name = "matchField"
	r.TranslationKey = "validation.match_field"
	r.TranslationValues = map[string]any{"field": other}
	return r
}

// MinValue passes when the numeric value is at least min. Empty values pass.
func MinValue(min float64) Rule {
	r := numericRule(func(n float64) bool { return n >= min },
		fmt.Sprintf("Value must be at least %s", formatFloat(min)))
	r.Name = "minValue"
	r.TranslationKey = "validation.min_value"
	r.TranslationValues = map[string]any{"min": min}
	return r
}

// MaxValue passes when the numeric value is at most max. Empty values pass.
func MaxValue(max float64) Rule {
	r := numericRule(func(n float64) bool { return n <= max },
		fmt.Sprintf("Value must be no more than %s", formatFloat(max)))
	r.Name = "maxValue"
	r.TranslationKey = "validation.max_value"
	r.TranslationValues = map[string]any{"max": max}
	return r
}

// Range passes when the numeric value lies in [min, max]. Empty values pass.
func Range(min, max float64) Rule {
	r := numericRule(func(n float64) bool { return n >= min && n <= max },
		fmt.Sprintf("Value must be between %s and %s", formatFloat(min), formatFloat(max)))
	r.Name = "range"
	r.TranslationKey = "validation.range"
	r.TranslationValues = map[string]any{"min": min, "max": max}
	return r
}

func numericRule(ok func(float64) bool, message string) Rule {
	return Custom(func(v Value, _ Context) bool {
		if v.IsEmpty() {
			return true
		}
		n, valid := numberOf(v)
		return valid && ok(n)
	}, message)
}

func numberOf(v Value) (float64, bool) {
	if n, ok := v.Float(); ok {
		return n, true
	}
	if v.Tag() != TagString || !isNumeric(v.String()) {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	return n, err == nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DateLayout is the layout Age expects birth dates in.
const DateLayout = time.DateOnly

// Age passes when a birth date (YYYY-MM-DD) is at least minYears ago.
// Unparseable dates fail; empty values pass.
func Age(minYears int) Rule {
	return ageAt(minYears, time.Now)
}

func ageAt(minYears int, now func() time.Time) Rule {
	r := Custom(func(v Value, _ Context) bool {
		if v.IsEmpty() {
			return true
		}
		if v.Tag() != TagString {
			return false
		}
		birth, err := time.Parse(DateLayout, strings.TrimSpace(v.String()))
		if err != nil {
			return false
		}
		return yearsBetween(birth, now()) >= minYears
	}, fmt.Sprintf("Must be at least %d years old", minYears))
	r.Name = "age"
	r.TranslationKey = "validation.age"
	r.TranslationValues = map[string]any{"years": minYears}
	return r
}

func yearsBetween(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

const bytesPerMB = 1024 * 1024

// FileSize passes when a file is no larger than maxMB megabytes. Empty values pass.
func FileSize(maxMB float64) Rule {
	limit := int64(maxMB * bytesPerMB)
	r := Custom(func(v Value, _ Context) bool {
		if v.IsEmpty() {
			return true
		}
		return v.Tag() == TagFile && v.File().Size <= limit
	}, fmt.Sprintf("File size must be less than %sMB", formatFloat(maxMB)))
	r.Name = "fileSize"
	r.TranslationKey = "validation.file_size"
	r.TranslationValues = map[string]any{"max_mb": maxMB}
	return r
}

// FileType passes when a file's MIME type is one of allowed. Empty values pass.
func FileType(allowed ...string) Rule {
	allowed = slices.Clone(allowed)
	r := Custom(func(v Value, _ Context) bool {
		if v.IsEmpty() {
			return true
		}
		return v.Tag() == TagFile && slices.Contains(allowed, v.File().Type)
	}, "File type must be one of: "+strings.Join(allowed, ", "))
	r.Name = "fileType"
	r.TranslationKey = "validation.file_type"
	r.TranslationValues = map[string]any{"types": strings.Join(allowed, ", ")}
	return r
}
