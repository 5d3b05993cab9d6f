package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.WordsAPI.validate(); err != nil {
		return fmt.Errorf("wordsapi: %w", err)
	}

	return c.ValidateJournal()
}

// ValidateJournal checks the database and log sections only.
func (c *Config) ValidateJournal() error {
	if c.Database.Enabled() {
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (w *WordsAPIConfig) validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}

	u, err := url.Parse(w.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", w.BaseURL)
	}
	if !strings.HasSuffix(w.BaseURL, "/") {
		return fmt.Errorf("base_url must end with '/' (got %q)", w.BaseURL)
	}

	if w.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", w.Timeout)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 {
		return fmt.Errorf("min_conns must be >= 0 (got %d)", d.MinConns)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	if d.RetentionDays < 1 {
		return fmt.Errorf("retention_days must be >= 1 (got %d)", d.RetentionDays)
	}
	return nil
}

// Validate checks the log level and format. Commands that override the
// level after loading call it again.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	return nil
}
