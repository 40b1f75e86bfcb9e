package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the operator key for admin-only routes
const AdminKeyHeader = "X-Admin-Key"

// TokenAuthenticator resolves a bearer token into a live session
type TokenAuthenticator interface {
	Authenticate(token string) (model.Session, error)
}

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

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and stores the session on the context
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			utils.JSONAbort(c, http.StatusUnauthorized, auctionerrors.ErrNotLoggedIn, "missing bearer token")
			return
		}

		session, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			helpers.HandleServiceError(c, "AuthMiddleware", err, map[string]any{"path": c.Request.URL.Path})
			c.Abort()
			return
		}

		helpers.SetSession(c, session)
		c.Next()
	}
}

// AdminKeyMiddleware guards operator routes; an empty key disables them entirely
func AdminKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			utils.JSONAbort(c, http.StatusForbidden, auctionerrors.ErrNotEligible, "admin endpoints are disabled")
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(AdminKeyHeader)), []byte(key)) != 1 {
			utils.JSONAbort(c, http.StatusForbidden, auctionerrors.ErrNotEligible, "invalid admin key")
			utils.Warn("AdminKeyMiddleware: rejected admin request", map[string]any{"path": c.Request.URL.Path})
			return
		}
		c.Next()
	}
}
