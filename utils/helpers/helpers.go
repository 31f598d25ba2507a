package helpers

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeString trims and lower-cases a form choice so "Bricks-One " and
// "bricks-one" are the same value.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToFloat parses free-text numeric input. Thousands commas and surrounding
// spaces are ignored; anything unparseable, NaN or infinite yields 0.
func ToFloat(value interface{}) float64 {
	switch v := value.(type) {
	case string:
		cleanStr := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if cleanStr == "" {
			return 0.0
		}

		f, err := strconv.ParseFloat(cleanStr, 64)
		if err != nil {
			zap.L().Debug("Error converting to float64", zap.String("value", v), zap.Error(err))
			return 0.0
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0.0
		}
		return f
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0.0
		}
		return v
	case int:
		return float64(v)
	default:
		return 0.0
	}
}

// ToInt parses a whole number, returning 0 when the value is not one.
func ToInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// IsEmail performs a syntactic check only.
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
