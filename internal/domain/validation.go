package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}_\-\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateName records a field error unless name has between min and max characters
// (ignoring surrounding whitespace for the minimum) and only letters, digits, underscores,
// hyphens and spaces.
func ValidateName(v *ValidationError, field, name string, minLen, maxLen int) {
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(name)) < minLen:
		v.Addf(field, "must be at least %d characters", minLen)
	case utf8.RuneCountInString(name) > maxLen:
		v.Addf(field, "must be at most %d characters", maxLen)
	case !namePattern.MatchString(name):
		v.Add(field, "may only contain letters, digits, underscores, hyphens and spaces")
	}
}

// ValidateEmail records a field error unless email is empty or well-formed
func ValidateEmail(v *ValidationError, field, email string) {
	if email == "" {
		return
	}
	if !emailPattern.MatchString(email) {
		v.Add(field, "must be a valid email address")
	}
}

// NormalizeEmail lowercases and trims an email so uniqueness is case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
