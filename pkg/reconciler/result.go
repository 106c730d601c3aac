package reconciler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/sources"
)

// Result represents the outcome of a reconciliation run
type Result struct {
	// RunID identifies the run in logs and reports
	RunID string

	// Table is the deduplicated catalog
	Table *catalogs.Table

	// Rejections lists every document that produced no record
	Rejections []*extract.Rejection

	// Stats about the run
	Stats Stats

	StartTime utc.Time
	EndTime   utc.Time
	Duration  time.Duration
}

// Stats contains statistics about a run
type Stats struct {
	// Documents considered, per request category
	Documents  int            `json:"documents" yaml:"documents"`
	Categories map[string]int `json:"categories" yaml:"categories"`

	// Candidates is the number of records that passed every gate
	Candidates int `json:"candidates" yaml:"candidates"`

	// Retained is the number of records after deduplication
	Retained int `json:"retained" yaml:"retained"`

	// Rejected documents, per reason
	Rejected   int                    `json:"rejected" yaml:"rejected"`
	Rejections map[extract.Reason]int `json:"rejections" yaml:"rejections"`

	Dedupe  catalogs.DedupeStats `json:"dedupe" yaml:"dedupe"`
	Columns int                  `json:"columns" yaml:"columns"`

	ExtractTime time.Duration `json:"extract_time" yaml:"extract_time"`
}

// NewResult creates a started result.
func NewResult(runID string) *Result {
	return &Result{
		RunID:     runID,
		StartTime: utc.Now(),
		Stats: Stats{
			Categories: make(map[string]int),
			Rejections: make(map[extract.Reason]int),
		},
	}
}

func (s *Stats) countDocument(c sources.Category) {
	s.Documents++
	s.Categories[c.String()]++
}

func (r *Result) addRejection(rej *extract.Rejection) {
	if rej == nil {
		return
	}
	r.Rejections = append(r.Rejections, rej)
	r.Stats.Rejected++
	r.Stats.Rejections[rej.Reason]++
}

// Finalize stamps the end time and derives the table statistics.
func (r *Result) Finalize() {
	r.EndTime = utc.Now()
	r.Duration = r.EndTime.Time.Sub(r.StartTime.Time)
	if r.Table != nil {
		r.Stats.Retained = r.Table.Len()
	}
	r.Stats.Columns = len(catalogs.Columns())
}

// RejectionsByReason returns the rejection counts ordered by gate.
func (r *Result) RejectionsByReason() []ReasonCount {
	var out []ReasonCount
	for _, reason := range extract.Reasons() {
		if n := r.Stats.Rejections[reason]; n > 0 {
			out = append(out, ReasonCount{Reason: reason, Count: n})
		}
	}
	return out
}

// ReasonCount pairs a rejection reason with its number of documents.
type ReasonCount struct {
	Reason extract.Reason `json:"reason" yaml:"reason"`
	Count  int            `json:"count" yaml:"count"`
}

// Failures returns the documents whose extraction failed unexpectedly.
func (r *Result) Failures() []*extract.Rejection {
	var out []*extract.Rejection
	for _, rej := range r.Rejections {
		if rej.Reason == extract.ReasonExtractionFailure {
			out = append(out, rej)
		}
	}
	return out
}

// Summary returns a human-readable one-line summary of the result
func (r *Result) Summary() string {
	return fmt.Sprintf("%d documents considered, %d records retained, %d columns produced (%d rejected, %d duplicates removed)",
		r.Stats.Documents, r.Stats.Retained, r.Stats.Columns, r.Stats.Rejected, r.Stats.Dedupe.Total())
}

// Report generates a plain-text report of the run
func (r *Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s\n", r.RunID)
	fmt.Fprintf(&b, "Duration: %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "%s\n", r.Summary())

	cats := make([]string, 0, len(r.Stats.Categories))
	for c := range r.Stats.Categories {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(&b, "  %-14s %d\n", c, r.Stats.Categories[c])
	}

	if rc := r.RejectionsByReason(); len(rc) > 0 {
		b.WriteString("Rejections:\n")
		for _, x := range rc {
			fmt.Fprintf(&b, "  %-28s %d\n", x.Reason, x.Count)
		}
	}
	return b.String()
}
