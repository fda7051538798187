package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/authz"
	"github.com/7PXS/AvouraAuth/internal/logger"
	"github.com/7PXS/AvouraAuth/internal/middleware"
	"github.com/7PXS/AvouraAuth/internal/scripts"
)

// Script serves the gated download. The token may arrive as a ?token=
// query parameter for clients that cannot set headers; when both channels
// are present the query parameter wins.
func (h *Handler) Script(c *gin.Context) {
	gameID := c.Query("gameid")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing gameid"})
		return
	}

	tok := c.Query("token")
	if tok == "" {
		tok, _ = middleware.BearerToken(c.Request)
	}
	if tok == "" {
		h.metrics.RecordScriptFetch("unauthenticated")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required. Include token in URL or header.",
		})
		return
	}

	id, err := h.auth.Resolve(c.Request.Context(), tok)
	if err != nil {
		if !middleware.IsAuthFailure(err) {
			h.metrics.RecordScriptFetch("error")
			logger.Error("session resolution failed", map[string]any{"error": err.Error()})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		h.metrics.RecordScriptFetch("unauthenticated")
		c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.RejectionMessage(err)})
		return
	}

	if !authz.Allowed(id, gameID) {
		h.metrics.RecordScriptFetch("forbidden")
		logger.Warn("script fetch denied", map[string]any{
			"identity_id": id.ID,
			"gameid":      gameID,
			"scope":       id.GameID,
		})
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized for this game"})
		return
	}

	content, err := h.scripts.Fetch(gameID)
	if err != nil {
		if errors.Is(err, scripts.ErrNotFound) {
			h.metrics.RecordScriptFetch("not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Script not found"})
			return
		}
		h.metrics.RecordScriptFetch("error")
		logger.Error("script read failed", map[string]any{
			"gameid": gameID,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.metrics.RecordScriptFetch("success")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}
