package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/wordsapi/internal/app"
	"github.com/heartmarshall/wordsapi/internal/config"
	"github.com/heartmarshall/wordsapi/internal/domain"
	"github.com/heartmarshall/wordsapi/pkg/wordsapi"
)

// LookupService is the part of the lookup service the commands use.
type LookupService interface {
	Lookup(ctx context.Context, word string, rel wordsapi.Relation) (*wordsapi.Response, error)
	LookupMany(ctx context.Context, word string, rels []wordsapi.Relation) ([]*wordsapi.Response, error)
	History(ctx context.Context, word string, limit int) ([]domain.LookupRecord, error)
	Latest(ctx context.Context, word string, rel wordsapi.Relation) (domain.LookupRecord, error)
}

// Dependencies are the services a command runs against.
type Dependencies struct {
	Lookup LookupService
	Close  func()
}

func (d *Dependencies) close() {
	if d != nil && d.Close != nil {
		d.Close()
	}
}

// Options carry the persistent flags into a Builder. JournalOnly is set by
// commands that read the journal and never call the API.
type Options struct {
	ConfigPath  string
	LogLevel    string
	Stderr      io.Writer
	JournalOnly bool
}

// Builder creates Dependencies for one command invocation.
type Builder func(ctx context.Context, opts Options) (*Dependencies, error)

// DefaultBuilder loads configuration, sets up logging and wires the
// application.
func DefaultBuilder(ctx context.Context, opts Options) (*Dependencies, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger := app.NewLoggerTo(opts.Stderr, cfg.Log)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	return &Dependencies{Lookup: a.Lookup, Close: a.Close}, nil
}

func loadConfig(opts Options) (*config.Config, error) {
	load := config.LoadFrom
	if opts.JournalOnly {
		load = config.LoadJournalFrom
	}

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
		if err := cfg.Log.Validate(); err != nil {
			return nil, domain.NewValidationError("log-level", err.Error())
		}
	}

	return cfg, nil
}
