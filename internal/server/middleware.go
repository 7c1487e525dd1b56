package server

import (
	"net/http"
	"strings"
	"time"

	"gallery-auction/internal/apperrors"
	"gallery-auction/internal/auth"
	"gallery-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAuth verifies the bearer token and stores the caller's identity
// in the gin context for downstream handlers.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		raw = strings.TrimPrefix(raw, "Bearer ")
		if raw == "" {
			utils.JSONError(c, http.StatusUnauthorized, apperrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyToken(raw)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			utils.Warn("auth: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(auth.ContextUserID, claims.UserID)
		c.Set(auth.ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin gates a route to admin accounts. It must run after RequireAuth.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool(auth.ContextIsAdmin) {
		utils.JSONError(c, http.StatusForbidden, apperrors.ErrForbidden, "admin access required")
		utils.Warn("auth: admin route denied", map[string]any{
			"user_id": c.GetString(auth.ContextUserID),
			"path":    c.Request.URL.Path,
		})
		c.Abort()
		return
	}
	c.Next()
}
