package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Learner reference number pattern - 12 digits
	LRNPattern = `^\d{12}$`

	// Mobile number pattern - digits, optional leading +, 7 to 15 digits
	MobilePattern = `^\+?\d{7,15}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	LRN    *regexp.Regexp
	Mobile *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	LRN:    regexp.MustCompile(LRNPattern),
	Mobile: regexp.MustCompile(MobilePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// IsValidLRN reports whether the value is a well-formed learner reference number.
// An empty LRN is allowed; the field is optional on registration.
func IsValidLRN(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return CompiledPatterns.LRN.MatchString(value)
}

// IsValidMobile reports whether the value is a plausible mobile number.
func IsValidMobile(value string) bool {
	return CompiledPatterns.Mobile.MatchString(strings.TrimSpace(value))
}
