package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/crmrapid/portal/internal"
	"github.com/crmrapid/portal/internal/email"
	"github.com/crmrapid/portal/internal/handler/api"
	"github.com/crmrapid/portal/internal/jobs"
	"github.com/crmrapid/portal/internal/middleware"
	"github.com/crmrapid/portal/internal/repository"
	"github.com/crmrapid/portal/internal/router"
	"github.com/crmrapid/portal/internal/routes"
	"github.com/crmrapid/portal/internal/service"
	"github.com/crmrapid/portal/internal/storage"
	"github.com/crmrapid/portal/internal/telemetry"
	"github.com/crmrapid/portal/internal/worker"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Initialize file storage for logo uploads
	files, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize services
	settingsService, err := service.NewSettingsService(repo, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize settings service: %w", err)
	}

	customerService, err := service.NewCustomerService(repo, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize customer service: %w", err)
	}

	invoiceService, err := service.NewInvoiceService(repo, settingsService, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize invoice service: %w", err)
	}

	inventoryService, err := service.NewInventoryService(repo, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize inventory service: %w", err)
	}

	messageService, err := service.NewMessageService(repo, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize message service: %w", err)
	}

	dashboardService, err := service.NewDashboardService(repo, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize dashboard service: %w", err)
	}

	profileService, err := service.NewProfileService(repo, settingsService, files, cfg.AccountID)
	if err != nil {
		return fmt.Errorf("failed to initialize profile service: %w", err)
	}

	// Outbound email: MailerSend API when a token is configured, SMTP
	// (MailHog in development) otherwise.
	var sender email.Sender
	if cfg.Email.MailerSendToken != "" {
		sender = email.NewMailerSendSender(cfg.Email.MailerSendToken)
		logger.Info("Email sender: MailerSend API")
	} else {
		sender = email.NewSMTPSender(&email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		})
		logger.Info("Email sender: SMTP", "host", cfg.Email.Host, "port", cfg.Email.Port)
	}

	dispatcher, err := email.NewDispatcher(sender, repo, cfg.AccountID, cfg.BaseURL, cfg.Email.From, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize email dispatcher: %w", err)
	}

	// API handlers
	apiDeps := routes.APIDeps{
		CustomerHandler:  api.NewCustomerHandler(customerService),
		InvoiceHandler:   api.NewInvoiceHandler(invoiceService, customerService, profileService, dispatcher, cfg.AccountID),
		InventoryHandler: api.NewInventoryHandler(inventoryService),
		MessageHandler:   api.NewMessageHandler(messageService),
		ProfileHandler:   api.NewProfileHandler(profileService),
		SettingsHandler:  api.NewSettingsHandler(settingsService),
		DashboardHandler: api.NewDashboardHandler(dashboardService),
		SendEmailHandler: api.NewSendEmailHandler(dispatcher),
		TrackingHandler:  api.NewTrackingHandler(repo),
		PDFHandler:       api.NewPDFHandler(),
		DebugHandler:     api.NewDebugHandler(repo),
	}

	// Initialize middleware
	metrics := middleware.NewMetrics("portal")

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		securityConfig.ContentSecurityPolicy = ""
		securityConfig.HSTSMaxAge = 0
	}

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		rateLimiter.Middleware,
		middleware.WithClientIP(),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Locally stored logo uploads
	if cfg.Storage.Provider == "local" {
		r.Static(cfg.Storage.LocalURL+"/", cfg.Storage.LocalPath)
	}

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterAPIRoutes(r, apiDeps)

	// Background worker: due-soon invoice reminders
	if cfg.Worker.Enabled {
		scheduler, err := jobs.NewReminderScheduler(repo, cfg.AccountID, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize reminder scheduler: %w", err)
		}
		processor, err := jobs.NewReminderProcessor(repo, dispatcher, cfg.AccountID, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize reminder processor: %w", err)
		}

		w := worker.NewWorker(repo, scheduler, processor, worker.Config{
			PollInterval:   time.Duration(cfg.Worker.PollInterval) * time.Second,
			MaxConcurrency: int(cfg.Worker.Concurrency),
		}, logger)

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("worker stopped", "error", err)
			}
		}()
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
