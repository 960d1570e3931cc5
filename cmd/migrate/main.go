package main

import (
	"context"
	"log"

	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/postgres"
	"github.com/siteledger/siteledger/internal/repository"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	client, err := postgres.NewClient(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.DB(ctx).AutoMigrate(repository.Models()...); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}

	logger.Info("Migration completed successfully")
}
