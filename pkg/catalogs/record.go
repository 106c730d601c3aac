// Package catalogs holds the normalized product record, the column
// catalogue describing its tabular form, and the catalog table with its
// duplicate-collapsing passes.
package catalogs

import "time"

// Record is one normalized product. Pointer fields are nullable columns;
// a nil pointer is written as an explicit null. A Record is built once by
// the extractor and never modified afterwards.
type Record struct {
	ShortURLName string
	StoreID      string
	Name         string
	Publisher    *string
	Developer    *string
	ReleaseDate  *time.Time

	StarRating          *float64
	StarRatingCount     *int
	MetacriticScore     *int
	MetacriticUserScore *int

	Genres []string

	IsPS4             *int
	IsPS5             int
	IsIndie           *int
	IsDLC             int
	IsVR              int
	IsOptimizedPS5Pro int
	IsExclusive       int

	SeriesCount          int
	PacksDeluxeCount     int
	HasMicrotransactions int
	DLCsCount            int
	TrophiesCount        *int

	HasLocalMultiplayer         int
	LocalMultiplayerMaxPlayers  *int
	HasOnlineMultiplayer        int
	OnlineMultiplayerMaxPlayers *int
	IsOnlineOnly                int

	Difficulty         *int
	DownloadSizePS4    *int
	DownloadSizePS5    *int
	HoursMainStory     *int
	HoursCompletionist *int

	PEGIRating         *int
	ESRBRating         *string
	RatingDescriptions []string
	VoiceLanguages     []string
	SubtitleLanguages  []string
	FeatureTags        []string

	BasePrice              *float64
	LowestPrice            float64
	DaysToFirstPriceRecord *int
	DaysToDiscount10       *int
	DaysToDiscount25       *int
	DaysToDiscount50       *int
	DaysToDiscount75       *int
}

// MissingCount returns the number of null columns of the record.
func (r *Record) MissingCount() int {
	n := 0
	for _, c := range columns {
		if c.Value(r) == nil {
			n++
		}
	}
	return n
}

// DiscountDays returns the discount-timing columns in ascending depth.
func (r *Record) DiscountDays() []*int {
	return []*int{r.DaysToDiscount10, r.DaysToDiscount25, r.DaysToDiscount50, r.DaysToDiscount75}
}

// HasAgeRating reports whether a PEGI or an ESRB rating is present.
func (r *Record) HasAgeRating() bool {
	return r.PEGIRating != nil || r.ESRBRating != nil
}
