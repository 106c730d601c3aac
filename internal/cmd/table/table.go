// Package table converts storecat values into rows for CLI table output.
package table

import (
	"strconv"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// nullCell is shown for null values.
const nullCell = "-"

// maxSample is the longest sample value shown before truncation.
const maxSample = 40

// SummariesToTableData converts column summaries to table format. Wide
// output adds a sample value per column.
func SummariesToTableData(summaries []catalogs.ColumnSummary, wide bool) Data {
	headers := []string{"Column", "Kind", "Nullable", "Non-null", "Null", "Unique"}
	align := []Align{AlignLeft, AlignLeft, AlignCenter, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Sample")
		align = append(align, AlignLeft)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			s.Column,
			s.Kind,
			yesNo(s.Nullable),
			FormatNumber(int64(s.NonNull)),
			FormatNumber(int64(s.Null)),
			FormatNumber(int64(s.Unique)),
		}
		if wide {
			row = append(row, Truncate(orNull(s.Sample), maxSample))
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// SegmentsToTableData converts a base-price distribution to table format.
func SegmentsToTableData(segments []catalogs.PriceSegment) Data {
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, []string{s.Label, FormatNumber(int64(s.Count))})
	}
	return Data{
		Headers:         []string{"Base price", "Records"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// RecordToTableData lists every column of one record as a key-value table.
func RecordToTableData(r *catalogs.Record) Data {
	cols := catalogs.Columns()
	rows := make([][]string, 0, len(cols))
	for _, c := range cols {
		v := c.Value(r)
		cell := nullCell
		if v != nil {
			cell = c.Format(r)
		}
		rows = append(rows, []string{c.Name, cell})
	}
	return Data{Headers: []string{"Column", "Value"}, Rows: rows}
}

// ResultToTableData converts run statistics to table format.
func ResultToTableData(res *reconciler.Result) Data {
	s := res.Stats
	rows := [][]string{
		{"Documents", FormatNumber(int64(s.Documents))},
		{"Candidates", FormatNumber(int64(s.Candidates))},
		{"Duplicates removed", FormatNumber(int64(s.Dedupe.Total()))},
		{"Records retained", FormatNumber(int64(s.Retained))},
		{"Columns", strconv.Itoa(s.Columns)},
		{"Rejected", FormatNumber(int64(s.Rejected))},
	}
	for _, rc := range res.RejectionsByReason() {
		rows = append(rows, []string{"  " + rc.Reason.String(), FormatNumber(int64(rc.Count))})
	}
	return Data{
		Headers:         []string{"Metric", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		str = str[1:]
	}
	if len(str) <= 3 {
		if neg {
			return "-" + str
		}
		return str
	}

	// Add commas every 3 digits
	result := ""
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(r)
	}
	if neg {
		return "-" + result
	}
	return result
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNull(s string) string {
	if s == "" {
		return nullCell
	}
	return s
}
