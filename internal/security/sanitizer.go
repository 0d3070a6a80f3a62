package security

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicy = bluemonday.StrictPolicy()
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// SanitizeString trims and bounds free-text input (names, goal descriptions,
// exercise names) before it reaches the store.
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")

	if len(input) > 1000 {
		input = input[:1000]
	}

	return input
}

// SanitizeHTML removes all HTML tags
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

// SanitizeText applies both passes; use for anything echoed back to a screen.
func SanitizeText(input string) string {
	return SanitizeHTML(SanitizeString(input))
}

// ValidateEmail checks the minimal shape of an email address. Uniqueness is
// the store's job.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateWeight checks a body or lifted weight in kilograms.
func ValidateWeight(weightKg float64) bool {
	return weightKg >= 0 && weightKg < 1000
}
