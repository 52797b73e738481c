package middleware

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/model"
)

const (
	// HeaderUserID carries the caller-supplied identity. Identity is opaque
	// to this service; it only scopes data access.
	HeaderUserID = "X-User-ID"

	scopeKey = "scope"

	anonymousUserID = "anonymous"
)

// Auth resolves the caller's scope from the X-User-ID header and stores it
// on the request context. Absent header falls back to a shared anonymous scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			userID = anonymousUserID
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the caller scope set by Auth.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: anonymousUserID}
}
