package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/identity"
	"github.com/7PXS/AvouraAuth/internal/logger"
	"github.com/7PXS/AvouraAuth/internal/session"
	"github.com/7PXS/AvouraAuth/internal/token"
)

// Resolution failures, ordered by how far the request got.
var (
	ErrInvalidToken = errors.New("auth: invalid or expired token")
	ErrNoSession    = errors.New("auth: session not found")
	ErrNoIdentity   = errors.New("auth: identity not found")
)

const identityKey = "authIdentity"

// Authenticator walks a bearer token through the protected-request steps:
// structural token validation, live-session lookup, identity resolution.
// Each step failing short-circuits with its own sentinel so handlers can
// report the precise step that rejected the request.
type Authenticator struct {
	tokens     *token.Service
	sessions   session.Store
	identities *identity.Store
}

func NewAuthenticator(tokens *token.Service, sessions session.Store, identities *identity.Store) *Authenticator {
	return &Authenticator{
		tokens:     tokens,
		sessions:   sessions,
		identities: identities,
	}
}

// Resolve maps a bearer token to its owning identity.
//
// A structurally valid token is necessary but not sufficient: the backing
// session may have been revoked or expired, so the store lookup always runs.
func (a *Authenticator) Resolve(ctx context.Context, tok string) (*identity.Identity, error) {
	identityID, ok := a.tokens.Validate(tok)
	if !ok {
		return nil, ErrInvalidToken
	}

	sess, err := a.sessions.Get(ctx, tok)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}

	id, err := a.identities.GetByID(sess.IdentityID)
	if err != nil {
		return nil, ErrNoIdentity
	}

	// The token's embedded id and the session owner must agree.
	if id.ID != identityID {
		return nil, ErrNoSession
	}

	return id, nil
}

// RequireAuth authenticates the Authorization header and stores the
// resolved identity in the gin context. It writes the 401 itself on any
// failed step.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := BearerToken(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		id, err := a.Resolve(c.Request.Context(), tok)
		if err != nil {
			if !IsAuthFailure(err) {
				logger.Error("session resolution failed", map[string]any{"error": err.Error()})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": RejectionMessage(err)})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFromContext extracts the identity stored by RequireAuth.
func IdentityFromContext(c *gin.Context) (*identity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*identity.Identity)
	return id, ok
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	tok, found := strings.CutPrefix(h, "Bearer ")
	if !found || tok == "" {
		return "", false
	}
	return tok, true
}

// IsAuthFailure reports whether err is one of the expected Resolve
// rejections, as opposed to a store fault.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrNoIdentity)
}

// RejectionMessage maps a Resolve rejection to its client-facing message.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoSession):
		return "Session not found"
	case errors.Is(err, ErrNoIdentity):
		return "User not found"
	default:
		return "Invalid or expired token"
	}
}
