package app

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/agentstation/storecat/internal/config"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Pipeline configuration
	ReleaseCutoff    time.Time
	SnapshotCutoff   time.Time
	MinPriceNewGen   float64
	MinPricePrevGen  float64
	MinPriceAddOn    float64
	PremiumPrice     float64
	BasePriceCeiling float64
	Workers          int
	HeuristicsFile   string

	// Logging configuration. LogLevel is the --log-level flag;
	// ConfiguredLogLevel comes from the config file or environment.
	LogLevel           string
	ConfiguredLogLevel string
	LogFormat          string
	LogOutput          string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (STORECAT_*)
// 3. .env files
// 4. Config file (~/.storecat.yaml or ./.storecat.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := config.New(configFile)
	if err := config.Read(v, configFile != ""); err != nil {
		return nil, errors.NewConfigError("config", "reading config file", err)
	}

	releaseCutoff, err := parseDate(config.KeyReleaseCutoff, v.GetString(config.KeyReleaseCutoff), constants.DateLayout)
	if err != nil {
		return nil, err
	}
	snapshotCutoff, err := parseDate(config.KeySnapshotCutoff, v.GetString(config.KeySnapshotCutoff), constants.SnapshotLayout, constants.DateLayout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Verbose:    v.GetBool(config.KeyVerbose),
		Quiet:      v.GetBool(config.KeyQuiet),
		NoColor:    v.GetBool(config.KeyNoColor),
		Format:     v.GetString(config.KeyFormat),
		ConfigFile: v.ConfigFileUsed(),

		ReleaseCutoff:  releaseCutoff,
		SnapshotCutoff: snapshotCutoff,
		Workers:        v.GetInt(config.KeyWorkers),
		HeuristicsFile: v.GetString(config.KeyHeuristicsFile),

		ConfiguredLogLevel: config.GetString(v, config.KeyLogLevel),
		LogFormat:          v.GetString(config.KeyLogFormat),
		LogOutput:          v.GetString(config.KeyLogOutput),
	}

	prices := []struct {
		key string
		dst *float64
	}{
		{config.KeyMinPriceNewGen, &cfg.MinPriceNewGen},
		{config.KeyMinPricePrevGen, &cfg.MinPricePrevGen},
		{config.KeyMinPriceAddOn, &cfg.MinPriceAddOn},
		{config.KeyPremiumPrice, &cfg.PremiumPrice},
		{config.KeyBasePriceCeiling, &cfg.BasePriceCeiling},
	}
	for _, p := range prices {
		f, err := cast.ToFloat64E(v.Get(p.key))
		if err != nil {
			return nil, errors.NewConfigError("config", "invalid "+p.key, err)
		}
		*p.dst = f
	}

	return cfg, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	if verbose {
		c.Verbose = true
	}
	if quiet {
		c.Quiet = true
	}
	if noColor {
		c.NoColor = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func parseDate(key, value string, layouts ...string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errors.NewConfigError("config", "invalid "+key, lastErr)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
