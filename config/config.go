package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/bfv-tools/bfv-api/standings"
)

// Load loads the configuration from file. The file is optional; without
// one the defaults describe the public production API.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".bfv"))
		}
		v.AddConfigPath("/etc/bfv/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// No config file anywhere, run on defaults.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.retries", 2)
	v.SetDefault("api.retry_wait", "1s")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.ttl", "15m")

	v.SetDefault("table.tiebreakers", tiebreakerNames(standings.DefaultChain))
	v.SetDefault("table.head_to_head", tiebreakerNames(standings.DefaultHeadToHead))
	v.SetDefault("table.fetch_limit", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if cfg.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative")
	}

	if cfg.Table.FetchLimit < 1 {
		return fmt.Errorf("table.fetch_limit must be at least 1")
	}
	if _, err := cfg.TiebreakerChain(); err != nil {
		return fmt.Errorf("table.tiebreakers: %w", err)
	}
	if _, err := cfg.HeadToHeadChain(); err != nil {
		return fmt.Errorf("table.head_to_head: %w", err)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// TiebreakerChain parses the configured table ordering.
func (c *Config) TiebreakerChain() ([]standings.Tiebreaker, error) {
	return standings.ParseChain(c.Table.Tiebreakers)
}

// HeadToHeadChain parses the configured head-to-head ordering.
func (c *Config) HeadToHeadChain() ([]standings.Tiebreaker, error) {
	return standings.ParseChain(c.Table.HeadToHead)
}

// CacheDir returns the configured cache directory, falling back to the
// user cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	return filepath.Join(base, "bfv"), nil
}

func tiebreakerNames(chain []standings.Tiebreaker) []string {
	names := make([]string, 0, len(chain))
	for _, t := range chain {
		names = append(names, t.String())
	}
	return names
}
