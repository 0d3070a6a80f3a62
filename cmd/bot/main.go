package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mroshb/fitness_tracker/internal/config"
	"github.com/mroshb/fitness_tracker/internal/database"
	"github.com/mroshb/fitness_tracker/pkg/logger"
	"github.com/mroshb/fitness_tracker/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting Fitness Tracker bot...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Validate production security settings
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize and start the Telegram bot
	bot, err := telegram.InitBot(cfg, db)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	logger.Info("Bot started successfully", "env", cfg.AppEnv)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	logger.Info("Bot stopped")
}
