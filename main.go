// main.go
package main

import (
	"context"
	"log"
	"time"

	"waste-pickup/cmd"
	"waste-pickup/internal/data/repository"
	"waste-pickup/internal/wire"
	"waste-pickup/pkg/database"
	"waste-pickup/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Schema + seed users, once, before the listener opens
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = repository.Bootstrap(initCtx, db, config.Seed, logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, time.Now, logger)

	srv := cmd.NewHTTPServer(app.Router, config.App.Host, config.App.Port)
	shutdownTimeout := time.Duration(config.App.ShutdownTimeout) * time.Second
	if err := cmd.APIServer(srv, shutdownTimeout, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
