package extract

import (
	"time"

	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/sources"
)

// options configures an Extractor.
type options struct {
	snapshotCutoff time.Time
	releaseCutoff  time.Time
	floors         map[sources.Category]float64
	premiumPrice   float64
	ceiling        float64
	heuristics     *Heuristics
	authorities    authority.Authority
}

func defaultOptions() *options {
	return &options{
		snapshotCutoff: constants.SnapshotCutoff,
		releaseCutoff:  constants.ReleaseCutoff,
		floors: map[sources.Category]float64{
			sources.NewGen:  constants.MinPriceNewGen,
			sources.PrevGen: constants.MinPricePrevGen,
			sources.AddOn:   constants.MinPriceAddOn,
		},
		premiumPrice: constants.PremiumPrice,
		ceiling:      constants.BasePriceCeiling,
		heuristics:   DefaultHeuristics(),
		authorities:  authority.New(),
	}
}

// Option is a function that configures an Extractor.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns extractor options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSnapshotCutoff sets the capture time of the snapshot. Releases and
// history entries after it have not happened yet.
func WithSnapshotCutoff(t time.Time) Option {
	return func(o *options) error {
		if t.IsZero() {
			return &errors.ValidationError{Field: "snapshot_cutoff", Message: "cannot be zero"}
		}
		o.snapshotCutoff = t
		return nil
	}
}

// WithReleaseCutoff sets the oldest release date kept for categorised
// documents.
func WithReleaseCutoff(t time.Time) Option {
	return func(o *options) error {
		if t.IsZero() {
			return &errors.ValidationError{Field: "release_cutoff", Message: "cannot be zero"}
		}
		o.releaseCutoff = t
		return nil
	}
}

// WithPriceFloor sets the minimum base price of a category. A negative
// floor excludes the category entirely.
func WithPriceFloor(category sources.Category, floor float64) Option {
	return func(o *options) error {
		if !category.Categorized() {
			return &errors.ValidationError{
				Field:   "category",
				Value:   category.String(),
				Message: "uncategorised documents have no price floor",
			}
		}
		if floor < 0 {
			floor = constants.DisabledFloor
		}
		o.floors[category] = floor
		return nil
	}
}

// WithPremiumPrice sets the price from which a title gets the wider
// first-record allowance.
func WithPremiumPrice(price float64) Option {
	return func(o *options) error {
		if price < 0 {
			return &errors.ValidationError{Field: "premium_price", Value: price, Message: "must not be negative"}
		}
		o.premiumPrice = price
		return nil
	}
}

// WithBasePriceCeiling sets the base price above which the deals history
// peak replaces the tracker price.
func WithBasePriceCeiling(price float64) Option {
	return func(o *options) error {
		if price <= 0 {
			return &errors.ValidationError{Field: "base_price_ceiling", Value: price, Message: "must be positive"}
		}
		o.ceiling = price
		return nil
	}
}

// WithHeuristics replaces the keyword and playtime heuristics.
func WithHeuristics(h *Heuristics) Option {
	return func(o *options) error {
		if h == nil {
			return &errors.ValidationError{Field: "heuristics", Message: "cannot be nil"}
		}
		o.heuristics = h
		return nil
	}
}

// WithAuthorities sets the per-field source priorities.
func WithAuthorities(a authority.Authority) Option {
	return func(o *options) error {
		if a == nil {
			return &errors.ValidationError{Field: "authorities", Message: "cannot be nil"}
		}
		o.authorities = a
		return nil
	}
}
