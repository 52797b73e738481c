package http

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.Auth(), h.Create)
		events.GET("", mw.Auth(), h.List)
		events.GET("/:id", mw.Auth(), h.Detail)
		events.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
