package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	hexIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// Required fails on absent values and empty or whitespace-only strings.
func Required(msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			if v == nil {
				return false
			}
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s) != ""
			}
			return true
		},
		Message:  msg,
		required: true,
	}
}

// Length bounds the character count of a string value. A max of 0 means
// unbounded above.
func Length(min, max int, msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			if n < min {
				return false
			}
			return max <= 0 || n <= max
		},
		Message: msg,
	}
}

// MinLength bounds the character count of a string value from below.
func MinLength(min int, msg string) Constraint {
	return Length(min, 0, msg)
}

// Pattern requires the whole value to match the given expression.
func Pattern(re *regexp.Regexp, msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
		Message: msg,
	}
}

// LetterAndDigit requires at least one letter and one digit. RE2 has no
// lookahead, so this is a rune scan rather than a pattern.
func LetterAndDigit(msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			var hasLetter, hasDigit bool
			for _, r := range s {
				switch {
				case unicode.IsLetter(r):
					hasLetter = true
				case unicode.IsDigit(r):
					hasDigit = true
				}
			}
			return hasLetter && hasDigit
		},
		Message: msg,
	}
}

// Numeric accepts JSON numbers and numeric strings.
func Numeric(msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			_, ok := asFloat(v)
			return ok
		},
		Message: msg,
	}
}

// NonNegative accepts numeric values greater than or equal to zero.
func NonNegative(msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			f, ok := asFloat(v)
			return ok && f >= 0
		},
		Message: msg,
	}
}

// ISODate requires an ISO-8601 calendar date (YYYY-MM-DD).
func ISODate(msg string) Constraint {
	return Constraint{
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, err := time.Parse("2006-01-02", s)
			return err == nil
		},
		Message: msg,
	}
}

// Email requires an email-shaped string.
func Email(msg string) Constraint {
	return Pattern(emailRe, msg)
}

// HexID requires a 24-hex-character opaque identifier.
func HexID(msg string) Constraint {
	return Pattern(hexIDRe, msg)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Used as a rule Transform after the field's constraints pass.
func NormalizeEmail(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return v
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
