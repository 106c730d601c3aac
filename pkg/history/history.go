// Package history merges raw sales-price series from several sources into
// one clean series and derives discount-timing and price-extremum metrics
// from it.
package history

import (
	"sort"
	"time"

	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/resolver"
)

const (
	// NoiseThreshold is the price under which an entry is a sentinel
	// artefact rather than a genuine discount.
	NoiseThreshold = 0.5

	// lowestSeed starts the minimum scan.
	lowestSeed = 5000.0

	// LowestCeiling is the largest minimum price considered plausible.
	LowestCeiling = 4000.0
)

// Raw entry keys as stored by both sources.
const (
	dateKey  = "x"
	priceKey = "y"
)

// Entry is one observed price on one calendar date.
type Entry struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// History is a chronologically sorted series, unique by date, with
// strictly positive prices.
type History []Entry

// Merge combines raw series into one History. Entries with an unparsable
// date, a date after cutoff, or a non-positive price are discarded. When
// two entries share a date the one from the later series wins.
func Merge(cutoff time.Time, series ...[]any) History {
	byDate := make(map[time.Time]float64)
	for _, raw := range series {
		for _, item := range raw {
			date, price, ok := parseEntry(item, cutoff)
			if !ok {
				continue
			}
			byDate[date] = price
		}
	}

	merged := make(History, 0, len(byDate))
	for date, price := range byDate {
		merged = append(merged, Entry{Date: date, Price: price})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

func parseEntry(item any, cutoff time.Time) (time.Time, float64, bool) {
	m, ok := item.(map[string]any)
	if !ok {
		return time.Time{}, 0, false
	}
	date, err := resolver.ToDate(m[dateKey])
	if err != nil || date.After(cutoff) {
		return time.Time{}, 0, false
	}
	price, err := resolver.ToFloat(m[priceKey])
	if err != nil || price <= 0 {
		return time.Time{}, 0, false
	}
	return date, price, true
}

// PeakPrice returns the highest price in a raw, unfiltered series, or 0
// when no entry carries a usable price.
func PeakPrice(raw []any) float64 {
	peak := 0.0
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		price, err := resolver.ToFloat(m[priceKey])
		if err == nil && price > peak {
			peak = price
		}
	}
	return peak
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h)
}

// Span returns the first and last dates, or false when empty.
func (h History) Span() (time.Time, time.Time, bool) {
	if len(h) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return h[0].Date, h[len(h)-1].Date, true
}

// Format renders the dates with the snapshot date layout.
func (e Entry) Format() string {
	return e.Date.Format(constants.DateLayout)
}
