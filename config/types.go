package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Table   TableConfig   `mapstructure:"table"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds connection details for the BFV widget API
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Retries   int           `mapstructure:"retries"`
	RetryWait time.Duration `mapstructure:"retry_wait"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Dir     string        `mapstructure:"dir"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// TableConfig contains settings for computed league tables
type TableConfig struct {
	Tiebreakers []string `mapstructure:"tiebreakers"`
	HeadToHead  []string `mapstructure:"head_to_head"`
	// FetchLimit bounds how many match days are fetched concurrently.
	FetchLimit int `mapstructure:"fetch_limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
