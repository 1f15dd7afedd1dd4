package main

import (
	"os"
	"os/signal"
	"syscall"

	"library-api/internal/adapters/http/middleware"
	"library-api/internal/adapters/http/routes"
	"library-api/internal/adapters/persistence/models"
	"library-api/internal/config"
	"library-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	_ "library-api/docs" // Swagger docs
)

// @title Library API
// @version 1.0
// @description Book catalog and loans
// @BasePath /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := config.NewLogger(cfg.Log)
	if !cfg.EnvFileLoaded {
		log.Warn(".env file not found, using environment variables")
	}
	log.WithField("mode", cfg.AppMode).Info("Configuration loaded")

	// Connect to database
	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Info("Database migration completed")

	if cfg.SeedData {
		if err := config.NewSeeder(db, log).Run(); err != nil {
			log.WithError(err).Warn("Failed to seed sample data")
		}
	}

	svc := routes.NewServices(db)

	// Late-loan reminders
	notifier := services.NewNotificationService(cfg.Jobs.LateLoanWebhook, log)
	cronService, err := services.NewCronService(svc.Loans, notifier, cfg.Jobs.LateLoanCron, log)
	if err != nil {
		log.Fatalf("Invalid LATE_LOAN_CRON %q: %v", cfg.Jobs.LateLoanCron, err)
	}
	cronService.Start()
	defer cronService.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "Library API v1.0",
		ErrorHandler: middleware.CustomErrorHandler(log),
	})

	middleware.Setup(app, cfg, log)
	routes.Setup(app, svc, cfg)

	go gracefulShutdown(app, log)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Errorf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("Error during shutdown")
	}
	log.Info("Server stopped gracefully")
}
