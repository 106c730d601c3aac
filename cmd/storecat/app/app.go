// Package app provides the application context and dependency management
// for the storecat CLI. It centralizes configuration, logging and the
// construction of the pipeline components commands run.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/storecat/internal/appcontext"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/reconciler"
	"github.com/agentstation/storecat/pkg/sources"
)

// App represents the storecat application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the default locations; options may
// replace it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		app.config = config
	}
	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ExtractOptions translates the configuration into extractor options.
func (a *App) ExtractOptions() ([]extract.Option, error) {
	c := a.config
	opts := []extract.Option{
		extract.WithReleaseCutoff(c.ReleaseCutoff),
		extract.WithSnapshotCutoff(c.SnapshotCutoff),
		extract.WithPriceFloor(sources.NewGen, c.MinPriceNewGen),
		extract.WithPriceFloor(sources.PrevGen, c.MinPricePrevGen),
		extract.WithPriceFloor(sources.AddOn, c.MinPriceAddOn),
		extract.WithPremiumPrice(c.PremiumPrice),
		extract.WithBasePriceCeiling(c.BasePriceCeiling),
	}
	if c.HeuristicsFile != "" {
		h, err := extract.LoadHeuristics(c.HeuristicsFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug().Str("path", c.HeuristicsFile).Msg("Loaded heuristics")
		opts = append(opts, extract.WithHeuristics(h))
	}
	return opts, nil
}

// ReconcilerOptions translates the configuration into reconciler options.
func (a *App) ReconcilerOptions() ([]reconciler.Option, error) {
	extractOpts, err := a.ExtractOptions()
	if err != nil {
		return nil, err
	}
	return []reconciler.Option{
		reconciler.WithWorkers(a.config.Workers),
		reconciler.WithExtractOptions(extractOpts...),
	}, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
