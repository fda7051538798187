package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/config"
	"github.com/7PXS/AvouraAuth/internal/credentials"
	"github.com/7PXS/AvouraAuth/internal/identity"
	"github.com/7PXS/AvouraAuth/internal/logger"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	GameID   string `json:"gameid"`
}

func (h *Handler) Register(c *gin.Context) {
	if !h.limiter.Allow("register:"+c.ClientIP(), registerMaxAttempts, time.Hour) {
		h.metrics.RecordRateLimited("register")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many registration attempts. Please try again later.",
		})
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		h.metrics.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	email := credentials.Sanitize(h.profile, req.Email)

	if !credentials.ValidEmail(email) {
		h.metrics.RecordRegistration("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if !credentials.ValidPassword(h.profile, req.Password) {
		h.metrics.RecordRegistration("invalid")
		message := "Password must be at least 8 characters with uppercase, lowercase, and number"
		if h.profile == config.ProfileLenient {
			message = "Password must be at least 1 character"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.metrics.RecordRegistration("error")
		logger.Error("password hashing failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := h.identities.Create(email, hash, credentials.Sanitize(h.profile, req.GameID))
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			h.metrics.RecordRegistration("conflict")
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		h.metrics.RecordRegistration("error")
		logger.Error("registration failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.metrics.RecordRegistration("success")
	logger.Info("identity registered", map[string]any{
		"identity_id": id.ID,
		"ip":          c.ClientIP(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"user":        userSummary(id),
		"testingMode": h.testingMode(),
	})
}
