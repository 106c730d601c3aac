package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysToDiscountScenario(t *testing.T) {
	h := History{{Date: day("2024-01-10"), Price: 14.99}}
	release := day("2024-01-01")

	d25, ok := h.DaysToDiscount(19.99, release, 25)
	assert.True(t, ok)
	assert.Equal(t, 9, d25)

	_, ok = h.DaysToDiscount(19.99, release, 50)
	assert.False(t, ok, "50% discount is not reached")
}

func TestDaysToDiscount(t *testing.T) {
	release := day("2024-03-01")
	h := History{
		{Date: day("2024-02-20"), Price: 10.0}, // before release
		{Date: day("2024-03-05"), Price: 0.3},  // noise
		{Date: day("2024-03-08"), Price: 54.0},
		{Date: day("2024-03-20"), Price: 45.0},
		{Date: day("2024-04-01"), Price: 30.0},
		{Date: day("2024-06-01"), Price: 15.0},
	}

	tests := []struct {
		percent int
		want    int
		wantOK  bool
	}{
		{10, 7, true},
		{25, 19, true},
		{50, 31, true},
		{75, 92, true},
		{90, 0, false},
	}
	for _, tt := range tests {
		got, ok := h.DaysToDiscount(60, release, tt.percent)
		assert.Equal(t, tt.wantOK, ok, "percent %d", tt.percent)
		assert.Equal(t, tt.want, got, "percent %d", tt.percent)
	}

	_, ok := h.DaysToDiscount(60, day("0001-01-01"), 10)
	assert.False(t, ok, "zero release date")
	_, ok = History{}.DaysToDiscount(60, release, 10)
	assert.False(t, ok, "empty history")
}

func TestDaysToDiscountMonotonic(t *testing.T) {
	release := day("2023-01-01")
	h := History{
		{Date: day("2023-01-15"), Price: 62.0},
		{Date: day("2023-02-01"), Price: 44.0},
		{Date: day("2023-03-01"), Price: 52.0},
		{Date: day("2023-05-01"), Price: 30.0},
		{Date: day("2023-07-01"), Price: 16.0},
		{Date: day("2023-08-01"), Price: 60.0},
	}
	for _, base := range []float64{59.99, 69.99, 79.99} {
		var prev int
		for i, pct := range []int{10, 25, 50, 75} {
			got, ok := h.DaysToDiscount(base, release, pct)
			if !ok {
				break
			}
			if i > 0 {
				assert.LessOrEqual(t, prev, got, "base %.2f percent %d", base, pct)
			}
			prev = got
		}
	}
}

func TestDaysToFirstRecord(t *testing.T) {
	release := day("2024-01-01")

	got, ok := History{{Date: day("2024-02-01"), Price: 20}}.DaysToFirstRecord(release)
	assert.True(t, ok)
	assert.Equal(t, 31, got)

	got, ok = History{{Date: day("2023-12-25"), Price: 20}}.DaysToFirstRecord(release)
	assert.True(t, ok)
	assert.Equal(t, 0, got, "negative offsets clamp to zero")

	_, ok = History{}.DaysToFirstRecord(release)
	assert.False(t, ok)
}

func TestLowestPrice(t *testing.T) {
	tests := []struct {
		name   string
		h      History
		want   float64
		wantOK bool
	}{
		{"empty", History{}, 0, false},
		{"skips noise", History{{day("2024-01-01"), 0.4}, {day("2024-01-02"), 9.99}, {day("2024-01-03"), 4.99}}, 4.99, true},
		{"only noise", History{{day("2024-01-01"), 0.5}}, 0, false},
		{"implausible", History{{day("2024-01-01"), 4500}}, 0, false},
		{"at ceiling", History{{day("2024-01-01"), 4000}}, 4000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.h.LowestPrice()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighestPrice(t *testing.T) {
	assert.Equal(t, 0.0, History{}.HighestPrice())
	h := History{{day("2024-01-01"), 19.99}, {day("2024-01-02"), 69.99}, {day("2024-01-03"), 39.99}}
	assert.Equal(t, 69.99, h.HighestPrice())
}
