// Package constants provides shared constants used throughout storecat:
// snapshot dates, default eligibility thresholds, file permissions and
// the string formats used on the wire.
package constants

import "time"

// Date handling
const (
	// DateLayout is the calendar-date layout used by every source
	DateLayout = "2006-01-02"

	// SnapshotLayout is the layout accepted for the snapshot cutoff setting
	SnapshotLayout = "2006-01-02T15:04:05"
)

// SnapshotCutoff is the capture time of the bundled snapshot. History
// entries and release dates after it are treated as not yet happened.
var SnapshotCutoff = time.Date(2025, time.November, 1, 17, 2, 28, 0, time.UTC)

// ReleaseCutoff is the oldest release date kept for categorised documents
// (the new-generation platform launch).
var ReleaseCutoff = time.Date(2020, time.October, 10, 0, 0, 0, 0, time.UTC)

// Eligibility defaults
const (
	// MinPriceNewGen is the base-price floor for new-generation full games
	MinPriceNewGen = 4.9

	// MinPricePrevGen is the base-price floor for previous-generation full games
	MinPricePrevGen = 18.9

	// MinPriceAddOn is the base-price floor for add-on content
	MinPriceAddOn = 14.9

	// DisabledFloor replaces a negative floor so the category is excluded
	DisabledFloor = 1e9

	// PremiumPrice separates premium titles for the first-record gap check
	PremiumPrice = 45.0

	// BasePriceCeiling triggers base-price corroboration from the deals history
	BasePriceCeiling = 150.0

	// MaxRecordGap is the first-record gap tolerated for non-premium titles
	MaxRecordGap = 100

	// MaxRecordGapPremium is the first-record gap tolerated for any title
	MaxRecordGapPremium = 200

	// MinDeepDiscountDays is the earliest plausible day for a 50% or 75% discount
	MinDeepDiscountDays = 2
)

// DiscountLevels are the discount percentages reported per record.
var DiscountLevels = []int{10, 25, 50, 75}

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output
const (
	// ListSeparator joins list-valued columns
	ListSeparator = ","

	// DefaultTableName is the SQLite table written by the sqlite sink
	DefaultTableName = "games"

	// EnvPrefix prefixes environment overrides of config keys
	EnvPrefix = "STORECAT"
)
