package credentials

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/7PXS/AvouraAuth/internal/config"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the shape of an email address. The check is the same in
// both profiles.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword applies the password strength policy. Strict requires at
// least 8 characters with an uppercase letter, a lowercase letter and a
// digit; lenient only requires the password to be non-empty.
func ValidPassword(profile config.Profile, password string) bool {
	if profile == config.ProfileLenient {
		return len(password) >= 1
	}

	if len(password) < 8 {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

var sanitizeStrip = strings.NewReplacer(
	"<", "", ">", "",
	"'", "", `"`, "", ";", "",
)

// Sanitize strips characters with injection potential from free-form input
// and caps its length. Lenient profile passes input through untouched.
func Sanitize(profile config.Profile, input string) string {
	if profile == config.ProfileLenient {
		return input
	}

	out := strings.TrimSpace(sanitizeStrip.Replace(input))
	if len(out) > 255 {
		out = out[:255]
	}
	return out
}
