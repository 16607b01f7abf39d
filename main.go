// Package main is the entry point for the asset registry API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"assetregistry/src/app/server"
	"assetregistry/src/infra/config"
	"assetregistry/src/infra/db"
	"assetregistry/src/infra/logger"
	"assetregistry/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Apply schema migrations before opening the pool
	if err := db.Migrate(context.Background(), cfg.Database, log); err != nil {
		return err
	}

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories
	vendorRepo := repo.NewVendorRepository(pg, log)
	categoryRepo := repo.NewAssetCategoryRepository(pg, log)
	systemRepo := repo.NewSystemRepository(pg, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, vendorRepo, categoryRepo, systemRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
