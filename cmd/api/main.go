package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"aria-assistant/config"
	_ "aria-assistant/docs" // Swagger docs
	chatUC "aria-assistant/internal/chat/usecase"
	emailUC "aria-assistant/internal/email/usecase"
	eventRepo "aria-assistant/internal/event/repository/sqlite"
	eventUC "aria-assistant/internal/event/usecase"
	"aria-assistant/internal/extractor"
	"aria-assistant/internal/httpserver"
	"aria-assistant/internal/router"
	taskRepo "aria-assistant/internal/task/repository/sqlite"
	taskUC "aria-assistant/internal/task/usecase"
	"aria-assistant/pkg/gcalendar"
	"aria-assistant/pkg/gmail"
	"aria-assistant/pkg/llmprovider"
	"aria-assistant/pkg/log"
)

// @title       Aria Assistant API
// @description Natural-language command router: chat messages become tasks, calendar events and emails.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional, real deployments configure through the environment
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Aria Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sql.Open("sqlite", cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite database: ", err)
		return
	}
	defer db.Close()

	tasksRepo, err := taskRepo.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task repository: ", err)
		return
	}
	eventsRepo, err := eventRepo.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize event repository: ", err)
		return
	}

	// 4. LLM providers (optional, the router degrades to rule-only mode)
	var llm router.LLM
	if len(cfg.LLM.Providers) > 0 {
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Warnf(ctx, "LLM providers not available (optional): %v", provErr)
		} else {
			retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
			maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
			llm = llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      retryDelay,
				MaxTotalTimeout: maxTimeout,
			}, logger)
			logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, running rule-only classification")
	}

	// 5. Google integrations (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.Google.CalendarEnabled && cfg.Google.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var mailer gmail.IMailer
	if cfg.Google.GmailEnabled && cfg.Google.CredentialsPath != "" {
		client, gmErr := gmail.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if gmErr != nil {
			logger.Warnf(ctx, "Gmail not available (optional): %v", gmErr)
		} else {
			mailer = client
			logger.Info(ctx, "Gmail initialized")
		}
	}

	// 6. Routing pipeline
	classifier, err := router.New(router.Config{
		ConfidenceThreshold: cfg.Router.ConfidenceThreshold,
		LLMFallbackEnabled:  cfg.Router.LLMFallbackEnabled,
	}, llm, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize classifier: ", err)
		return
	}

	entityExtractor, err := extractor.New(extractor.Config{
		Timezone:               cfg.Router.Timezone,
		DefaultDurationMinutes: cfg.Router.DefaultEventDurationMinutes,
	}, llm, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize extractor: ", err)
		return
	}

	// 7. Domain usecases
	tasks := taskUC.New(tasksRepo, logger)
	events := eventUC.New(eventsRepo, calendarClient, cfg.Google.CalendarID, logger)
	emails := emailUC.New(mailer, logger)
	chats := chatUC.New(chatUC.Config{
		ConfidenceThreshold: cfg.Router.ConfidenceThreshold,
	}, classifier, entityExtractor, tasks, events, emails, logger)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		ChatUC:      chats,
		TaskUC:      tasks,
		EventUC:     events,
		EmailUC:     emails,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
