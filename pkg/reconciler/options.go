package reconciler

import (
	"runtime"

	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/extract"
)

// options configures a reconciler.
type options struct {
	workers     int
	extractor   *extract.Extractor
	extractOpts []extract.Option
	runID       string
}

func defaultOptions() *options {
	return &options{
		workers: runtime.GOMAXPROCS(0),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithWorkers bounds the number of documents extracted concurrently.
// Zero selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return &errors.ValidationError{Field: "workers", Value: n, Message: "must not be negative"}
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
		return nil
	}
}

// WithExtractor uses a prepared extractor. It takes precedence over
// WithExtractOptions.
func WithExtractor(e *extract.Extractor) Option {
	return func(o *options) error {
		if e == nil {
			return &errors.ValidationError{Field: "extractor", Message: "cannot be nil"}
		}
		o.extractor = e
		return nil
	}
}

// WithExtractOptions configures the extractor built by the reconciler.
func WithExtractOptions(opts ...extract.Option) Option {
	return func(o *options) error {
		o.extractOpts = append(o.extractOpts, opts...)
		return nil
	}
}

// WithRunID tags the result with a run identifier.
func WithRunID(id string) Option {
	return func(o *options) error {
		o.runID = id
		return nil
	}
}
