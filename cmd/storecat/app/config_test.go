package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// isolate runs the test in an empty directory with an empty home so no
// stray config or .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.ReleaseCutoff.Equal(constants.ReleaseCutoff))
	assert.True(t, cfg.SnapshotCutoff.Equal(constants.SnapshotCutoff))
	assert.Equal(t, constants.MinPriceNewGen, cfg.MinPriceNewGen)
	assert.Equal(t, constants.MinPricePrevGen, cfg.MinPricePrevGen)
	assert.Equal(t, constants.MinPriceAddOn, cfg.MinPriceAddOn)
	assert.Equal(t, constants.PremiumPrice, cfg.PremiumPrice)
	assert.Equal(t, 0, cfg.Workers)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfigEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("STORECAT_MIN_PRICE_PREV_GEN", "-1")
	t.Setenv("STORECAT_RELEASE_CUTOFF", "2019-01-01")
	t.Setenv("STORECAT_WORKERS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, -1.0, cfg.MinPricePrevGen)
	assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), cfg.ReleaseCutoff)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.ConfiguredLogLevel)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORECAT_PREMIUM_PRICE=59.99\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("STORECAT_PREMIUM_PRICE") })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 59.99, cfg.PremiumPrice)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "snapshot_cutoff: \"2024-05-01\"\nmin_price_addon: 9.9\nheuristics_file: rules.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), cfg.SnapshotCutoff)
	assert.Equal(t, 9.9, cfg.MinPriceAddOn)
	assert.Equal(t, "rules.yaml", cfg.HeuristicsFile)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "invalid date", env: map[string]string{"STORECAT_RELEASE_CUTOFF": "10/10/2020"}},
		{name: "invalid price", env: map[string]string{"STORECAT_MIN_PRICE_NEW_GEN": "cheap"}},
		{name: "missing explicit file", file: "missing.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			file := ""
			if tt.file != "" {
				file = filepath.Join(dir, tt.file)
			}
			_, err := LoadConfig(file)
			require.Error(t, err)
			var ce *errors.ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	cfg := &Config{Format: "yaml", ConfiguredLogLevel: "error"}
	cfg.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Empty(t, cfg.LogLevel)

	cfg.UpdateFromFlags(false, false, false, "json", "trace")
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "trace", cfg.LogLevel)
}
