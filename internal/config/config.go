package config

import (
	"fmt"
	"os"
)

// Profile selects the operating mode for the security-sensitive components.
// Lenient exists for development and test fixtures only; hashing, token
// opacity and rate limiting are all relaxed under it.
type Profile string

const (
	ProfileStrict  Profile = "strict"
	ProfileLenient Profile = "lenient"
)

// ParseProfile maps an AUTH_PROFILE value to a Profile. An empty value means
// strict; anything else unrecognized is an error so a deployment can never
// fall into lenient mode through a typo.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "", string(ProfileStrict):
		return ProfileStrict, nil
	case string(ProfileLenient):
		return ProfileLenient, nil
	default:
		return "", fmt.Errorf("config: unknown auth profile %q", s)
	}
}

type Config struct {
	AppPort string

	Profile     Profile
	TokenSecret string

	ScriptsDir string

	SessionBackend string
	RedisAddr      string
	RedisPassword  string
}

func Load() (Config, error) {

	profile, err := ParseProfile(os.Getenv("AUTH_PROFILE"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{

		AppPort: getenv("APP_PORT", "3000"),

		Profile:     profile,
		TokenSecret: os.Getenv("TOKEN_SECRET"),

		ScriptsDir: getenv("SCRIPTS_DIR", "./scripts"),

		SessionBackend: getenv("SESSION_BACKEND", "memory"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.Profile == ProfileStrict && cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("config: TOKEN_SECRET is required under the strict profile")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
