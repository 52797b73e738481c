package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aria-assistant/pkg/response"
)

// ChatRateLimit bounds the chat endpoint, which fans out to LLM providers.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.chatLimiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.ChatRateLimit: request rejected")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
