// Package config declares the storecat configuration keys and their
// defaults, and prepares the Viper instance they are read from.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// Configuration keys. Each is also read from the environment as
// STORECAT_<KEY> (upper-cased, dashes and dots as underscores).
const (
	KeyReleaseCutoff    = "release_cutoff"
	KeySnapshotCutoff   = "snapshot_cutoff"
	KeyMinPriceNewGen   = "min_price_new_gen"
	KeyMinPricePrevGen  = "min_price_prev_gen"
	KeyMinPriceAddOn    = "min_price_addon"
	KeyPremiumPrice     = "premium_price"
	KeyBasePriceCeiling = "base_price_ceiling"
	KeyWorkers          = "workers"
	KeyHeuristicsFile   = "heuristics_file"
	KeyFormat           = "format"
	KeyVerbose          = "verbose"
	KeyQuiet            = "quiet"
	KeyNoColor          = "no_color"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyLogOutput        = "log_output"
)

// ConfigName is the config file looked up in $HOME and the working directory.
const ConfigName = ".storecat"

// Defaults returns the default value of every key.
func Defaults() map[string]any {
	return map[string]any{
		KeyReleaseCutoff:    constants.ReleaseCutoff.Format(constants.DateLayout),
		KeySnapshotCutoff:   constants.SnapshotCutoff.Format(constants.SnapshotLayout),
		KeyMinPriceNewGen:   constants.MinPriceNewGen,
		KeyMinPricePrevGen:  constants.MinPricePrevGen,
		KeyMinPriceAddOn:    constants.MinPriceAddOn,
		KeyPremiumPrice:     constants.PremiumPrice,
		KeyBasePriceCeiling: constants.BasePriceCeiling,
		KeyWorkers:          0,
		KeyLogFormat:        "auto",
		KeyLogOutput:        "stderr",
	}
}

// New returns a Viper instance with defaults, the STORECAT_ environment
// binding and the config file search path set up. configFile, when not
// empty, replaces the search.
func New(configFile string) *viper.Viper {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// The logging keys also honour the unprefixed variables.
	_ = v.BindEnv(KeyLogLevel, constants.EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv(KeyLogFormat, constants.EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv(KeyLogOutput, constants.EnvPrefix+"_LOG_OUTPUT", "LOG_OUTPUT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(ConfigName)
	return v
}

// Read loads the config file into v. A missing file is not an error
// unless it was named explicitly.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && errors.As(err, &notFound) {
		return nil
	}
	return err
}

// GetString reads a string key, falling back to the raw environment
// variable when Viper has no value for it.
func GetString(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return os.Getenv(strings.ToUpper(key))
}
