package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/config"
	"github.com/dafibh/kasboek/kasboek-backend/internal/handler"
	"github.com/dafibh/kasboek/kasboek-backend/internal/logger"
	"github.com/dafibh/kasboek/kasboek-backend/internal/middleware"
	"github.com/dafibh/kasboek/kasboek-backend/internal/repository/jsonfile"
	"github.com/dafibh/kasboek/kasboek-backend/internal/repository/storage"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Setup(cfg.IsProduction())

	// Open the data directory
	store, err := jsonfile.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("Failed to open data directory")
	}
	log.Info().Str("data_dir", store.Dir()).Msg("Opened data directory")

	// Initialize repositories
	accountRepo := jsonfile.NewAccountRepository(store)
	transactionRepo := jsonfile.NewTransactionRepository(store)
	categoryRepo := jsonfile.NewCategoryRepository(store)
	expenseRepo := jsonfile.NewRecurringExpenseRepository(store)
	sourceRepo := jsonfile.NewIncomeSourceRepository(store)
	goalRepo := jsonfile.NewSavingsGoalRepository(store)
	settingsRepo := jsonfile.NewSettingsRepository(store)
	activityRepo := jsonfile.NewActivityRepository(store)
	netWorthRepo := jsonfile.NewNetWorthRepository(store)

	// Object storage for backups is optional
	storageLog := logger.Component("storage")
	var objectStore storage.ObjectStore
	if cfg.S3.Enabled() {
		s3Store, err := storage.NewS3ObjectStore(context.Background(), cfg.S3)
		if err != nil {
			storageLog.Fatal().Err(err).Msg("Failed to initialize S3 object store")
		}
		objectStore = s3Store
		storageLog.Info().Str("bucket", cfg.S3.Bucket).Str("prefix", cfg.S3.Prefix).Msg("S3 backups enabled")
	} else {
		storageLog.Info().Msg("S3 backups disabled, set S3_BUCKET to enable")
	}

	// WebSocket hub for the change feed
	hub := websocket.NewHub()

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	activityService.SetEventPublisher(hub)

	accountService := service.NewAccountService(accountRepo, transactionRepo)
	transactionService := service.NewTransactionService(transactionRepo, accountRepo)
	categoryService := service.NewCategoryService(categoryRepo, transactionRepo)
	expenseService := service.NewRecurringExpenseService(expenseRepo, accountRepo)
	sourceService := service.NewIncomeSourceService(sourceRepo, accountRepo)
	goalService := service.NewSavingsGoalService(goalRepo, transactionRepo, accountRepo, transactionService)
	settingsService := service.NewSettingsService(settingsRepo)

	accountService.SetActivityRecorder(activityService)
	transactionService.SetActivityRecorder(activityService)
	categoryService.SetActivityRecorder(activityService)
	expenseService.SetActivityRecorder(activityService)
	sourceService.SetActivityRecorder(activityService)
	goalService.SetActivityRecorder(activityService)
	settingsService.SetActivityRecorder(activityService)

	budgetService := service.NewBudgetService(transactionRepo, categoryRepo, expenseRepo, sourceRepo, goalRepo, settingsRepo)
	projectionService := service.NewProjectionService(accountRepo, transactionRepo, expenseRepo, sourceRepo, goalRepo, cfg.ProjectionMonths)

	netWorthService := service.NewNetWorthService(accountRepo, transactionRepo, netWorthRepo)
	netWorthService.SetEventPublisher(hub)

	backupService := service.NewBackupService(store, objectStore, cfg.S3.Prefix)
	backupService.SetEventPublisher(hub)

	// Monthly snapshot worker
	snapshotWorker, err := service.NewSnapshotWorker(
		netWorthService,
		goalService,
		backupService,
		log.Logger,
		service.SnapshotWorkerConfig{Schedule: cfg.SnapshotSchedule},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create snapshot worker")
	}
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	snapshotWorker.Start(workerCtx)

	// Initialize handlers
	handlers := handler.Handlers{
		Account:     handler.NewAccountHandler(accountService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Category:    handler.NewCategoryHandler(categoryService),
		Recurring:   handler.NewRecurringHandler(expenseService, sourceService),
		SavingsGoal: handler.NewSavingsGoalHandler(goalService),
		Budget:      handler.NewBudgetHandler(budgetService),
		Projection:  handler.NewProjectionHandler(projectionService),
		NetWorth:    handler.NewNetWorthHandler(netWorthService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Activity:    handler.NewActivityHandler(activityService),
		Backup:      handler.NewBackupHandler(backupService),
		WebSocket:   handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Rate limiter for the REST API
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(middleware.RequestLogger())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Register routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(rateLimiter))

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	snapshotWorker.Stop()
	hub.CloseAll()
	rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
