package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/storecat/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(level)
	})

	// Package init sets the global level from the environment (info).
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warning message"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRun(ctx, "run-123")
	ctx = logging.WithDocument(ctx, "astro-bot")
	ctx = logging.WithOperation(ctx, "extract")

	logging.FromContext(ctx).Info().Msg("document processed")

	tl.AssertContains(t, `"run_id":"run-123"`)
	tl.AssertContains(t, `"document":"astro-bot"`)
	tl.AssertContains(t, `"operation":"extract"`)
	tl.AssertContains(t, "document processed")

	if got := logging.RunID(ctx); got != "run-123" {
		t.Errorf("RunID() = %q, want run-123", got)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	if logging.FromContext(nil) != logging.Default() {
		t.Error("nil context should yield the default logger")
	}
	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("empty context should yield the default logger")
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "warn",
		Format: "json",
		Output: path,
		Fields: map[string]any{"component": "reconcile"},
	})
	logger.Info().Msg("hidden")
	logger.Warn().Msg("visible")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("info event should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, `"component":"reconcile"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Str("source", "GGDeals").Msg("captured")
	tl.AssertContains(t, "captured")
	tl.AssertContains(t, "GGDeals")
	tl.AssertNotContains(t, "PlatPrices")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STORECAT_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORECAT_LOG_FORMAT", "console")

	cfg := logging.ConfigFromEnv()
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, prefixed variable should win", cfg.Format)
	}

	t.Setenv("LOG_LEVEL", "warn")
	if got := logging.ConfigFromEnv().Level; got != "warn" {
		t.Errorf("Level = %q, want warn", got)
	}
}

func TestSetDefaultKeepsQuieterGlobalLevel(t *testing.T) {
	original := *logging.Default()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(level)
	})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logging.SetDefault(zerolog.Nop())
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, a disabled logger should not change it", got)
	}

	logging.SetDefault(zerolog.New(&bytes.Buffer{}).Level(zerolog.TraceLevel))
	if got := zerolog.GlobalLevel(); got != zerolog.TraceLevel {
		t.Errorf("GlobalLevel() = %v, want trace", got)
	}
}
