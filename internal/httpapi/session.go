package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/logger"
	"github.com/7PXS/AvouraAuth/internal/middleware"
)

// Logout deletes the session behind the presented token. The response is
// 200 whether or not a session existed; only a missing token is an error.
func (h *Handler) Logout(c *gin.Context) {
	tok, ok := middleware.BearerToken(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	existed, err := h.sessions.Delete(c.Request.Context(), tok)
	if err != nil {
		logger.Error("session delete failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if existed {
		logger.Info("logout", map[string]any{"ip": c.ClientIP()})
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Verify runs behind RequireAuth; reaching it means the token parsed, the
// session is live and the identity resolved.
func (h *Handler) Verify(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userSummary(id),
	})
}
