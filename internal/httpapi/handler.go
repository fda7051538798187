// Package httpapi exposes the auth and script-delivery endpoints.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/config"
	"github.com/7PXS/AvouraAuth/internal/credentials"
	"github.com/7PXS/AvouraAuth/internal/identity"
	"github.com/7PXS/AvouraAuth/internal/metrics"
	"github.com/7PXS/AvouraAuth/internal/middleware"
	"github.com/7PXS/AvouraAuth/internal/ratelimit"
	"github.com/7PXS/AvouraAuth/internal/scripts"
	"github.com/7PXS/AvouraAuth/internal/session"
	"github.com/7PXS/AvouraAuth/internal/token"
)

// Attempt budgets for the credential endpoints.
const (
	loginMaxAttempts    = 5
	registerMaxAttempts = 3
)

type Handler struct {
	profile config.Profile

	identities *identity.Store
	sessions   session.Store
	tokens     *token.Service
	hasher     *credentials.Hasher
	limiter    *ratelimit.Limiter
	scripts    *scripts.Repository
	auth       *middleware.Authenticator
	metrics    *metrics.Collector
}

func NewHandler(
	profile config.Profile,
	identities *identity.Store,
	sessions session.Store,
	tokens *token.Service,
	hasher *credentials.Hasher,
	limiter *ratelimit.Limiter,
	scriptRepo *scripts.Repository,
	auth *middleware.Authenticator,
	collector *metrics.Collector,
) *Handler {
	return &Handler{
		profile:    profile,
		identities: identities,
		sessions:   sessions,
		tokens:     tokens,
		hasher:     hasher,
		limiter:    limiter,
		scripts:    scriptRepo,
		auth:       auth,
		metrics:    collector,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/logout", h.Logout)
	authGroup.GET("/verify", h.auth.RequireAuth(), h.Verify)

	r.GET("/api/script", h.Script)
}

// testingMode mirrors the operating profile into response bodies so clients
// can tell a lenient instance apart from a deployed one.
func (h *Handler) testingMode() bool {
	return h.profile == config.ProfileLenient
}

// userSummary is the identity shape returned by every endpoint. The
// credential hash never leaves the store.
func userSummary(id *identity.Identity) gin.H {
	var gameID any
	if id.GameID != "" {
		gameID = id.GameID
	}
	return gin.H{
		"id":     id.ID,
		"email":  id.Email,
		"gameid": gameID,
	}
}
