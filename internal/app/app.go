package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordsapi/internal/adapter/postgres"
	"github.com/heartmarshall/wordsapi/internal/adapter/postgres/lookuplog"
	"github.com/heartmarshall/wordsapi/internal/config"
	"github.com/heartmarshall/wordsapi/internal/service/lookup"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// App holds the wired components for one process.
type App struct {
	Client *wordsapi.Client
	Lookup *lookup.Service

	pool *pgxpool.Pool
	log  *slog.Logger
}

// New wires the WordsAPI client, the optional journal database and the
// lookup service from cfg. When cfg.Database has no DSN the service runs
// without a journal.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client := NewClient(cfg.WordsAPI, logger)

	a := &App{Client: client, log: logger}

	if !cfg.Database.Enabled() {
		logger.DebugContext(ctx, "journal disabled: no database dsn")
		a.Lookup = lookup.NewService(logger, client, nil)
		return a, nil
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.pool = pool
	a.Lookup = lookup.NewService(logger, client, lookuplog.New(pool))

	logger.DebugContext(ctx, "journal enabled",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
	)

	return a, nil
}

// NewClient builds a WordsAPI client from cfg. A zero Timeout leaves the
// HTTP client without a deadline.
func NewClient(cfg config.WordsAPIConfig, logger *slog.Logger) *wordsapi.Client {
	opts := []wordsapi.Option{
		wordsapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		wordsapi.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, wordsapi.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Host != "" {
		opts = append(opts, wordsapi.WithHost(cfg.Host))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, wordsapi.WithUserAgent(cfg.UserAgent))
	}
	return wordsapi.NewClient(cfg.APIKey, opts...)
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}
