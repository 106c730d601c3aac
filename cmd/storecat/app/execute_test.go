package app

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/pkg/errors"
)

func testApp(t *testing.T) *App {
	t.Helper()
	isolate(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	logger := zerolog.Nop()
	a, err := New("v0.1.0", "abc123", "2026-01-01", "test", WithConfig(cfg), WithLogger(&logger))
	require.NoError(t, err)
	return a
}

func TestSetupCommandAppliesFlags(t *testing.T) {
	a := testApp(t)
	root := a.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "-o", "json", "--min-price-addon", "-1", "--workers", "4", "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	cfg := a.Config()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, -1.0, cfg.MinPriceAddOn)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "error", a.Logger().GetLevel().String())
	assert.Contains(t, out.String(), "storecat version v0.1.0")

	opts, err := a.ReconcilerOptions()
	require.NoError(t, err)
	assert.NotEmpty(t, opts)
}

func TestSetupCommandRejectsBadCutoff(t *testing.T) {
	a := testApp(t)
	root := a.createRootCommand()
	root.SetArgs([]string{"version", "--release-cutoff", "yesterday"})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("flags: %w", errors.NewValidationError("workers", -1, "must not be negative"))))
	assert.Equal(t, 1, ExitCode(errors.NewIOError("read", "snapshot.json", errors.ErrNotFound)))
}

func TestExecuteUnknownCommand(t *testing.T) {
	a := testApp(t)
	assert.Error(t, a.Execute(context.Background(), []string{"frobnicate"}))
}
