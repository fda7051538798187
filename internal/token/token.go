package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/7PXS/AvouraAuth/internal/config"
)

// MaxAge is the structural lifetime of a strict-profile token. A token older
// than this fails validation even if its backing session were somehow still
// present.
const MaxAge = 24 * time.Hour

const lenientPrefix = "test_token_"

type claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Service issues and validates bearer tokens. Validation is purely
// computational: a structurally valid token says nothing about whether its
// session is still live, so callers must still consult the session store.
type Service struct {
	profile config.Profile
	secret  []byte

	now func() time.Time
}

func NewService(profile config.Profile, secret string) *Service {
	return &Service{
		profile: profile,
		secret:  []byte(secret),
		now:     time.Now,
	}
}

// Issue produces a bearer token bound to identityID. Strict tokens are
// signed JWTs carrying the identity id, an issuance timestamp and a random
// jti; lenient tokens are the deterministic "test_token_<id>" literal.
func (s *Service) Issue(identityID string) (string, error) {
	if s.profile == config.ProfileLenient {
		return lenientPrefix + identityID, nil
	}

	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UID: identityID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing failed: %w", err)
	}
	return signed, nil
}

// Validate parses a bearer token and returns the identity id it is bound
// to. It returns ok=false for any malformed, forged or over-age token and
// never panics.
func (s *Service) Validate(tok string) (string, bool) {
	if s.profile == config.ProfileLenient {
		id, found := strings.CutPrefix(tok, lenientPrefix)
		if !found || id == "" {
			return "", false
		}
		return id, true
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(tok, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token: unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	if c.UID == "" || c.IssuedAt == nil {
		return "", false
	}
	if s.now().Sub(c.IssuedAt.Time) > MaxAge {
		return "", false
	}

	return c.UID, true
}
