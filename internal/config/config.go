package config

import "time"

// Config is the root application configuration.
type Config struct {
	WordsAPI WordsAPIConfig `yaml:"wordsapi"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// WordsAPIConfig holds dictionary API client settings. APIKey is checked by
// Validate, not by the loader, so journal-only commands can run without it.
type WordsAPIConfig struct {
	APIKey    string        `yaml:"api_key"    env:"WORDSAPI_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"WORDSAPI_BASE_URL"   env-default:"https://wordsapiv1.p.mashape.com/words/"`
	Host      string        `yaml:"host"       env:"WORDSAPI_HOST"       env-default:"wordsapiv1.p.mashape.com"`
	Timeout   time.Duration `yaml:"timeout"    env:"WORDSAPI_TIMEOUT"    env-default:"0s"`
	UserAgent string        `yaml:"user_agent" env:"WORDSAPI_USER_AGENT"`
}

// DatabaseConfig holds PostgreSQL connection settings for the lookup journal.
// An empty DSN disables the journal.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	RetentionDays   int           `yaml:"retention_days"     env:"DATABASE_RETENTION_DAYS"     env-default:"90"`
}

// Enabled reports whether a journal database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
