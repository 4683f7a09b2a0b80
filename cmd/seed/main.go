// Package main seeds the quote database with the default quote set.
// Seeding is idempotent: quotes are matched by text, so it can be run at any
// point in every environment.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/doston9471/telegram-quote-bot/internal/config"
	"github.com/doston9471/telegram-quote-bot/internal/database"
	"github.com/doston9471/telegram-quote-bot/internal/logger"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	inserted, err := store.SeedQuotes(ctx, database.DefaultQuotes)
	if err != nil {
		log.Error("Failed to seed quotes", "error", err)
		return 1
	}

	total, err := store.CountQuotes(ctx)
	if err != nil {
		log.Error("Failed to count quotes", "error", err)
		return 1
	}

	log.Info("Seed completed", "inserted", inserted, "total", total)
	return 0
}
