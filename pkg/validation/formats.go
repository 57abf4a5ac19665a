package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format tags the wire formats the rule interpreter can check.
type Format string

const (
	FormatSSN      Format = "ssn"
	FormatEIN      Format = "ein"
	FormatEmail    Format = "email"
	FormatPhone    Format = "phone"
	FormatDate     Format = "date"
	FormatCurrency Format = "currency"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateLayouts lists the calendar shapes user input and backend echoes may
// arrive in.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeSSN reduces input to digits and renders the canonical
// XXX-XX-XXXX form. The second return is false unless exactly nine digits
// remain.
func NormalizeSSN(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if len(digits) != 9 {
		return "", false
	}
	return digits[:3] + "-" + digits[3:5] + "-" + digits[5:], true
}

// NormalizeEIN reduces input to digits and renders the canonical XX-XXXXXXX
// form. The second return is false unless exactly nine digits remain.
func NormalizeEIN(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if len(digits) != 9 {
		return "", false
	}
	return digits[:2] + "-" + digits[2:], true
}

// NormalizePhone reduces input to its ten digits. A leading country code 1
// on an eleven-digit number is dropped.
func NormalizePhone(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

// ParseDate parses a calendar date from any accepted layout.
func ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseCurrency strips currency punctuation and parses the remaining
// number. The second return is false when nothing parseable remains.
func ParseCurrency(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t':
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// checkFormat reports whether a non-empty raw value satisfies the format
// tag. Unknown tags pass so schema evolution never hard-fails validation.
func checkFormat(format Format, raw string) bool {
	switch format {
	case FormatSSN:
		_, ok := NormalizeSSN(raw)
		return ok
	case FormatEIN:
		_, ok := NormalizeEIN(raw)
		return ok
	case FormatPhone:
		_, ok := NormalizePhone(raw)
		return ok
	case FormatEmail:
		return emailPattern.MatchString(strings.TrimSpace(raw))
	case FormatDate:
		_, ok := ParseDate(raw)
		return ok
	case FormatCurrency:
		value, ok := ParseCurrency(raw)
		return ok && value >= 0
	default:
		return true
	}
}

func formatMessage(format Format) string {
	switch format {
	case FormatSSN:
		return "Enter a valid Social Security Number (XXX-XX-XXXX)"
	case FormatEIN:
		return "Enter a valid Employer Identification Number (XX-XXXXXXX)"
	case FormatPhone:
		return "Enter a valid 10-digit phone number"
	case FormatEmail:
		return "Enter a valid email address"
	case FormatDate:
		return "Enter a valid date"
	case FormatCurrency:
		return "Enter a valid dollar amount"
	default:
		return "Enter a valid value"
	}
}
