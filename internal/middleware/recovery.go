package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/7PXS/AvouraAuth/internal/logger"
)

// Recovery is the last-resort boundary: any panic below it becomes a
// generic 500 JSON body, with the detail kept server-side.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", map[string]any{
			"panic": recovered,
			"path":  c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
