// Command cleanup removes lookup journal records older than the configured
// retention period. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordsapi/internal/adapter/postgres"
	"github.com/heartmarshall/wordsapi/internal/adapter/postgres/lookuplog"
	"github.com/heartmarshall/wordsapi/internal/app"
	"github.com/heartmarshall/wordsapi/internal/config"
)

func main() {
	cfg, err := config.LoadJournal()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Error("lookup journal is not configured", slog.String("hint", "set DATABASE_DSN"))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := lookuplog.New(pool)

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Database.RetentionDays)

	deleted, err := repo.DeleteBefore(ctx, threshold)
	if err != nil {
		logger.Error("journal cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("journal cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
