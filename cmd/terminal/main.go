package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/config"
	"github.com/puwasa/pos-terminal/internal/events"
	"github.com/puwasa/pos-terminal/internal/infrastructure/database"
	"github.com/puwasa/pos-terminal/internal/infrastructure/machineid"
	"github.com/puwasa/pos-terminal/internal/infrastructure/remote"
	"github.com/puwasa/pos-terminal/internal/infrastructure/repository"
	"github.com/puwasa/pos-terminal/internal/logger"
	"github.com/puwasa/pos-terminal/internal/presentation/http/handler"
	"github.com/puwasa/pos-terminal/internal/presentation/http/routes"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/printhelper"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Identify this terminal
	deviceID, err := machineid.Load(cfg.Session.DataDir)
	if err != nil {
		zapLogger.Fatal("failed to load device id", zap.Error(err))
	}
	sess := session.New(deviceID)

	// Open the local activity journal
	db, err := database.NewSQLiteDB(cfg.Journal.Path)
	if err != nil {
		zapLogger.Fatal("failed to open journal database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("failed to run journal migrations", zap.Error(err))
	}
	journalRepo := repository.NewJournalRepository(db)

	// Remote billing backend clients
	client := remote.NewClient(&cfg.Remote, sess.Tokens, zapLogger)
	authClient := remote.NewAuthClient(client, sess.Tokens)
	client.SetRefresher(authClient)
	billingClient := remote.NewBillingClient(client)
	inventoryClient := remote.NewInventoryClient(client)
	registerClient := remote.NewRegisterClient(client)

	// Print helper runner
	helperCommands := make([]printhelper.Command, 0, len(cfg.Printing.Candidates))
	for _, path := range cfg.Printing.Candidates {
		helperCommands = append(helperCommands, printhelper.Command{Path: path})
	}
	runner := printhelper.NewExecRunner(cfg.Printing.Dir, helperCommands)

	// Event hub for UI notifications
	hub := events.NewHub()

	// Initialize services
	printerService := service.NewPrinterService(&cfg.Printing, runner, hub, journalRepo, zapLogger)
	billingService := service.NewBillingService(
		billingClient,
		printerService,
		journalRepo,
		sess,
		cfg.Session.DefaultLocationID,
		zapLogger,
	)
	inventoryService := service.NewInventoryService(inventoryClient, sess, cfg.Session.DefaultLocationID, zapLogger)
	registerService := service.NewRegisterService(registerClient, sess, cfg.Session.DefaultLocationID, zapLogger)
	authService := service.NewAuthService(authClient, sess, zapLogger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Cart:      handler.NewCartHandler(billingService),
		Billing:   handler.NewBillingHandler(billingService),
		Print:     handler.NewPrintHandler(printerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Register:  handler.NewRegisterHandler(registerService),
		Events:    handler.NewEventsHandler(hub),
		Journal:   handler.NewJournalHandler(journalRepo),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:     cfg,
		Session: sess,
		Logger:  zapLogger,
	})

	zapLogger.Info("terminal bridge listening",
		zap.String("port", cfg.App.Port),
		zap.String("device_id", deviceID),
		zap.String("backend", cfg.Remote.BaseURL),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
