package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/credentials"
	"github.com/7PXS/AvouraAuth/internal/logger"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	if !h.limiter.Allow("login:"+c.ClientIP(), loginMaxAttempts, 15*time.Minute) {
		h.metrics.RecordRateLimited("login")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many login attempts. Please try again in 15 minutes.",
		})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		h.metrics.RecordLogin("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	email := credentials.Sanitize(h.profile, req.Email)

	// Unknown email and wrong password answer identically so the response
	// cannot be used to enumerate accounts.
	id, err := h.identities.GetByEmail(email)
	if err != nil || !h.hasher.Verify(req.Password, id.CredentialHash) {
		h.metrics.RecordLogin("rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	tok, err := h.tokens.Issue(id.ID)
	if err != nil {
		h.metrics.RecordLogin("error")
		logger.Error("token issuance failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.sessions.Create(c.Request.Context(), id.ID, tok); err != nil {
		h.metrics.RecordLogin("error")
		logger.Error("session creation failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.metrics.RecordLogin("success")
	logger.Info("login succeeded", map[string]any{
		"identity_id": id.ID,
		"ip":          c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       tok,
		"user":        userSummary(id),
		"testingMode": h.testingMode(),
	})
}
