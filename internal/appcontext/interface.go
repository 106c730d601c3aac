// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with a stub.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// ExtractOptions returns the extractor options derived from the
	// configuration: cutoffs, price floors and heuristics.
	ExtractOptions() ([]extract.Option, error)

	// ReconcilerOptions returns the reconciler options derived from the
	// configuration, including ExtractOptions.
	ReconcilerOptions() ([]reconciler.Option, error)

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
