package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc            func() *zerolog.Logger
	Format                string
	ExtractOptionsFunc    func() ([]extract.Option, error)
	ReconcilerOptionsFunc func() ([]reconciler.Option, error)
	VersionFunc           func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the Format field.
func (m *Mock) OutputFormat() string {
	return m.Format
}

// ExtractOptions returns options using the mock function or none.
func (m *Mock) ExtractOptions() ([]extract.Option, error) {
	if m.ExtractOptionsFunc != nil {
		return m.ExtractOptionsFunc()
	}
	return nil, nil
}

// ReconcilerOptions returns options using the mock function or a single
// worker, which keeps test runs deterministic in their log order.
func (m *Mock) ReconcilerOptions() ([]reconciler.Option, error) {
	if m.ReconcilerOptionsFunc != nil {
		return m.ReconcilerOptionsFunc()
	}
	return []reconciler.Option{reconciler.WithWorkers(1)}, nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

var _ Interface = (*Mock)(nil)
