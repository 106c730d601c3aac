package history

import "time"

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// DaysToDiscount returns the day offset from release of the first entry,
// on or after release, priced at or below basePrice reduced by percent.
// Entries under NoiseThreshold are skipped. It reports false when no
// entry qualifies or when release or basePrice is unusable.
func (h History) DaysToDiscount(basePrice float64, release time.Time, percent int) (int, bool) {
	if release.IsZero() || len(h) == 0 || basePrice < 0 {
		return 0, false
	}
	target := basePrice * (1 - float64(percent)/100)
	for _, e := range h {
		if e.Price < NoiseThreshold {
			continue
		}
		if e.Price <= target && !e.Date.Before(release) {
			return daysBetween(release, e.Date), true
		}
	}
	return 0, false
}

// DaysToFirstRecord returns the offset from release to the first entry.
// Entries dated before release, from source date skew, yield zero.
func (h History) DaysToFirstRecord(release time.Time) (int, bool) {
	if release.IsZero() || len(h) == 0 {
		return 0, false
	}
	days := daysBetween(release, h[0].Date)
	if days < 0 {
		days = 0
	}
	return days, true
}

// LowestPrice returns the minimum price above NoiseThreshold. A minimum
// above LowestCeiling indicates corrupt data and reports false.
func (h History) LowestPrice() (float64, bool) {
	if len(h) == 0 {
		return 0, false
	}
	lowest := lowestSeed
	for _, e := range h {
		if e.Price > NoiseThreshold && e.Price < lowest {
			lowest = e.Price
		}
	}
	if lowest > LowestCeiling {
		return 0, false
	}
	return lowest, true
}

// HighestPrice returns the maximum price, or 0 for an empty history.
func (h History) HighestPrice() float64 {
	highest := 0.0
	for _, e := range h {
		if e.Price > highest {
			highest = e.Price
		}
	}
	return highest
}
