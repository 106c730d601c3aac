package history

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/pkg/constants"
)

func day(s string) time.Time {
	d, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func point(date string, price any) map[string]any {
	return map[string]any{"x": date, "y": price}
}

func TestMergeLaterSeriesWins(t *testing.T) {
	first := []any{point("2024-01-01", 19.99)}
	second := []any{point("2024-01-01", 14.99)}

	got := Merge(constants.SnapshotCutoff, first, second)
	want := History{{Date: day("2024-01-01"), Price: 14.99}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeDiscardsInvalidEntries(t *testing.T) {
	raw := []any{
		point("2024-02-01", 10.0),
		point("2024-13-01", 10.0),         // bad month
		point("not a date", 10.0),         // unparsable
		point("2025-11-01", 9.0),          // on cutoff day, before cutoff time
		point("2025-11-02", 8.0),          // after cutoff
		point("2024-01-15", -1.0),         // sentinel
		point("2024-01-16", 0.0),          // zero
		point("2024-01-17", "12.5"),       // string price
		point("2024-01-18", "free"),       // unparsable price
		map[string]any{"x": "2024-01-19"}, // no price
		"garbage",
		nil,
	}

	got := Merge(constants.SnapshotCutoff, raw)
	want := History{
		{Date: day("2024-01-17"), Price: 12.5},
		{Date: day("2024-02-01"), Price: 10.0},
		{Date: day("2025-11-01"), Price: 9.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergedHistoryProperties(t *testing.T) {
	a := []any{
		point("2023-05-03", 30.0), point("2023-05-01", 40.0), point("2023-05-03", 29.0),
		point("2023-06-01", -1.0), point("2023-04-01", 0.2),
	}
	b := []any{
		point("2023-05-02", 35.0), point("2023-05-01", 39.0), point("2023-07-01", "25"),
	}

	h := Merge(constants.SnapshotCutoff, a, b)
	require.NotEmpty(t, h)
	seen := map[time.Time]bool{}
	for i, e := range h {
		assert.Greater(t, e.Price, 0.0)
		assert.False(t, seen[e.Date], "duplicate date %s", e.Format())
		seen[e.Date] = true
		if i > 0 {
			assert.True(t, h[i-1].Date.Before(e.Date), "dates must strictly increase")
		}
	}
	assert.Equal(t, 39.0, h[1].Price, "second series overrides 2023-05-01")
}

func TestPeakPrice(t *testing.T) {
	raw := []any{point("2024-01-01", 69.99), point("bad", 199.0), point("2024-02-01", "x"), "junk"}
	assert.Equal(t, 199.0, PeakPrice(raw), "dates are not validated for the peak")
	assert.Equal(t, 0.0, PeakPrice(nil))
}

func TestSpan(t *testing.T) {
	_, _, ok := History{}.Span()
	assert.False(t, ok)

	h := History{{Date: day("2024-01-01"), Price: 1}, {Date: day("2024-03-01"), Price: 1}}
	first, last, ok := h.Span()
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", first.Format(constants.DateLayout))
	assert.Equal(t, "2024-03-01", last.Format(constants.DateLayout))
}
