package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("")
	require.NoError(t, err)
	assert.Equal(t, ProfileStrict, p, "empty must default to strict, never lenient")

	p, err = ParseProfile("strict")
	require.NoError(t, err)
	assert.Equal(t, ProfileStrict, p)

	p, err = ParseProfile("lenient")
	require.NoError(t, err)
	assert.Equal(t, ProfileLenient, p)

	_, err = ParseProfile("Lenient")
	assert.Error(t, err)
	_, err = ParseProfile("prod")
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_PROFILE", "lenient")
	t.Setenv("APP_PORT", "")
	t.Setenv("TOKEN_SECRET", "")
	t.Setenv("SCRIPTS_DIR", "")
	t.Setenv("SESSION_BACKEND", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, ProfileLenient, cfg.Profile)
	assert.Equal(t, "./scripts", cfg.ScriptsDir)
	assert.Equal(t, "memory", cfg.SessionBackend)
}

func TestLoadStrictRequiresTokenSecret(t *testing.T) {
	t.Setenv("AUTH_PROFILE", "strict")
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("TOKEN_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
}

func TestLoadRejectsUnknownProfile(t *testing.T) {
	t.Setenv("AUTH_PROFILE", "yolo")

	_, err := Load()
	assert.Error(t, err)
}
