// main.go
package main

import (
	"log"

	"moviehub/cmd"
	"moviehub/internal/data/repository"
	"moviehub/internal/wire"
	"moviehub/pkg/catalog"
	"moviehub/pkg/database"
	"moviehub/pkg/render"
	"moviehub/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
		zap.Bool("catalog_configured", config.Catalog.APIKey != ""),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Template engine
	engine, err := render.NewEngine(logger)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	// Catalog client; without an API key discovery degrades gracefully
	cat := catalog.NewClient(config.Catalog.APIKey, config.Catalog.BaseURL)
	if !cat.Configured() {
		logger.Warn("OMDB_API_KEY not set, discovery will return empty results")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, cat, engine, config, logger)

	// Start server
	cmd.APIServer(app.Router, config.App.Port, logger)
}
