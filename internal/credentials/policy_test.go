package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/7PXS/AvouraAuth/internal/config"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name@sub.example.org", "a+b@x.co"}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	invalid := []string{"", "a", "a@x", "a @x.com", "@x.com", "a@.com "}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidPasswordStrict(t *testing.T) {
	assert.True(t, ValidPassword(config.ProfileStrict, "Abcdef12"))

	cases := map[string]string{
		"too short":    "Ab1",
		"no uppercase": "abcdef12",
		"no lowercase": "ABCDEF12",
		"no digit":     "Abcdefgh",
		"empty":        "",
	}
	for name, pw := range cases {
		assert.False(t, ValidPassword(config.ProfileStrict, pw), name)
	}
}

func TestValidPasswordLenient(t *testing.T) {
	assert.True(t, ValidPassword(config.ProfileLenient, "x"))
	assert.False(t, ValidPassword(config.ProfileLenient, ""))
}

func TestSanitizeStrict(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize(config.ProfileStrict, `<script>alert(1)</script>`))
	assert.Equal(t, "a@x.com", Sanitize(config.ProfileStrict, `  a@x.com;'" `))

	long := strings.Repeat("a", 300)
	assert.Len(t, Sanitize(config.ProfileStrict, long), 255)
}

func TestSanitizeLenientPassthrough(t *testing.T) {
	in := ` <anything> ; `
	assert.Equal(t, in, Sanitize(config.ProfileLenient, in))
}
