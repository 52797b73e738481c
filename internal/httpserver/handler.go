package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "aria-assistant/internal/chat/delivery/http"
	emailHTTP "aria-assistant/internal/email/delivery/http"
	eventHTTP "aria-assistant/internal/event/delivery/http"
	"aria-assistant/internal/middleware"
	taskHTTP "aria-assistant/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), mw)
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, srv.eventUC), mw)
	emailHTTP.RegisterRoutes(api, emailHTTP.New(srv.l, srv.emailUC), mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
