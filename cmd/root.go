package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bfv-tools/bfv-api/bfv"
	"github.com/bfv-tools/bfv-api/cache"
	"github.com/bfv-tools/bfv-api/config"
)

var (
	cfgFile string
	noCache bool
	noColor bool

	cfg    *config.Config
	logger zerolog.Logger
	client *bfv.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bfv",
	Short: "Query the BFV widget API for fixtures, squads and league tables",
	Long: `bfv is a CLI for the public widget API of the Bavarian Football
Association (Bayerischer Fußball-Verband). It lists fixtures and squads,
shows official league tables and computes its own tables from raw
results, including head-to-head tiebreakers.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information stamped in at link time.
func SetVersion(v, bt string) {
	if v != "" {
		version = v
	}
	if bt != "" {
		buildTime = bt
	}
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "bypass the response cache")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)
	useColor = colorsEnabled()

	opts := []bfv.Option{
		bfv.WithTimeout(cfg.API.Timeout),
		bfv.WithRetries(cfg.API.Retries, cfg.API.RetryWait),
	}

	if cfg.Cache.Enabled && !noCache {
		dir, err := cfg.CacheDir()
		if err != nil {
			return err
		}
		fileCache, err := cache.NewFileCache(dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("Failed to open response cache, continuing without")
		} else {
			opts = append(opts, bfv.WithCache(fileCache, cfg.Cache.TTL))
		}
	}

	client, err = bfv.NewClient(cfg.API.BaseURL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor || !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bfv %s (built %s)\n", version, buildTime)
	},
}
