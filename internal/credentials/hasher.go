package credentials

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/7PXS/AvouraAuth/internal/config"
)

const (
	saltBytes  = 16
	iterations = 1000
	keyBytes   = 64
)

// Hasher produces and verifies the stored one-way form of a password.
// Under the strict profile the stored form is "salt:hash" with a random
// salt and a PBKDF2-SHA512 derivation; under the lenient profile the
// password is stored as-is (test fixtures only).
type Hasher struct {
	profile config.Profile
}

func NewHasher(profile config.Profile) *Hasher {
	return &Hasher{profile: profile}
}

func (h *Hasher) Hash(password string) (string, error) {
	if h.profile == config.ProfileLenient {
		return password, nil
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("credentials: failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha512.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored form. A malformed
// stored form verifies false; it never errors.
func (h *Hasher) Verify(password, stored string) bool {
	if h.profile == config.ProfileLenient {
		return password == stored
	}

	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha512.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}
