package http

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	emails := rg.Group("/email")
	{
		emails.POST("/send", mw.Auth(), h.Send)
	}
}
