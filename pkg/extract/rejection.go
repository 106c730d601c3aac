package extract

import "fmt"

// Reason names why a document produced no record.
type Reason string

// Rejection reasons, in gate order.
const (
	ReasonMissingIdentity     Reason = "missing_identity"
	ReasonFutureRelease       Reason = "future_release"
	ReasonMissingReleaseDate  Reason = "missing_release_date"
	ReasonReleaseBeforeCutoff Reason = "release_before_cutoff"
	ReasonMissingBasePrice    Reason = "missing_base_price"
	ReasonBelowPriceFloor     Reason = "below_price_floor"
	ReasonNoGenre             Reason = "no_genre"
	ReasonNoAgeRating         Reason = "no_age_rating"
	ReasonDiscountTiming      Reason = "implausible_discount_timing"
	ReasonFirstRecordGap      Reason = "first_record_gap"
	ReasonNoLowestPrice       Reason = "no_lowest_price"
	ReasonExtractionFailure   Reason = "extraction_failure"
)

// Reasons returns every rejection reason in gate order.
func Reasons() []Reason {
	return []Reason{
		ReasonMissingIdentity,
		ReasonFutureRelease,
		ReasonMissingReleaseDate,
		ReasonReleaseBeforeCutoff,
		ReasonMissingBasePrice,
		ReasonBelowPriceFloor,
		ReasonNoGenre,
		ReasonNoAgeRating,
		ReasonDiscountTiming,
		ReasonFirstRecordGap,
		ReasonNoLowestPrice,
		ReasonExtractionFailure,
	}
}

// String returns the reason name.
func (r Reason) String() string {
	return string(r)
}

// Rejection records a document that produced no record.
type Rejection struct {
	Document string `json:"document" yaml:"document"`
	Reason   Reason `json:"reason" yaml:"reason"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	// Err is the underlying failure of an extraction_failure rejection.
	Err error `json:"-" yaml:"-"`
}

// Error implements the error interface so rejections can be logged and
// wrapped like other failures.
func (r *Rejection) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s rejected: %s", r.Document, r.Reason)
	}
	return fmt.Sprintf("%s rejected: %s (%s)", r.Document, r.Reason, r.Detail)
}

// Unwrap returns the underlying failure, if any.
func (r *Rejection) Unwrap() error {
	return r.Err
}
