package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aria-assistant/config"
	"aria-assistant/internal/chat"
	"aria-assistant/internal/email"
	"aria-assistant/internal/event"
	"aria-assistant/internal/task"
	"aria-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domain usecases
	chatUC  chat.UseCase
	taskUC  task.UseCase
	eventUC event.UseCase
	emailUC email.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	ChatUC  chat.UseCase
	TaskUC  task.UseCase
	EventUC event.UseCase
	EmailUC email.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		chatUC:      cfg.ChatUC,
		taskUC:      cfg.TaskUC,
		eventUC:     cfg.EventUC,
		emailUC:     cfg.EmailUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	if srv.emailUC == nil {
		return errors.New("email usecase is required")
	}
	return nil
}
