// Package metrics exposes the counts of a reconciliation run as
// Prometheus metrics, for scraping through a node-exporter textfile
// collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/reconciler"
)

const namespace = "storecat"

// Registry holds the run metrics on a private Prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	Documents   *prometheus.CounterVec
	Candidates  prometheus.Counter
	Retained    prometheus.Gauge
	Rejections  *prometheus.CounterVec
	Duplicates  *prometheus.CounterVec
	Columns     prometheus.Gauge
	ExtractSec  prometheus.Gauge
	DurationSec prometheus.Gauge
	LastRun     prometheus.Gauge
}

// NewRegistry creates a registry with every run metric registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	documents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Snapshot documents considered, by request category.",
	}, []string{"category"})
	candidates := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_total",
		Help:      "Records that passed every eligibility gate.",
	})
	retained := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "records_retained",
		Help:      "Records in the deduplicated table.",
	})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Documents that produced no record, by reason.",
	}, []string{"reason"})
	duplicates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicates_removed_total",
		Help:      "Candidate records removed by deduplication, by pass.",
	}, []string{"pass"})
	columns := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "columns",
		Help:      "Columns in the output table.",
	})
	extractSec := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "extract_duration_seconds",
		Help:      "Time spent extracting records.",
	})
	durationSec := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the reconciliation run.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished.",
	})

	r.MustRegister(documents, candidates, retained, rejections, duplicates, columns, extractSec, durationSec, lastRun)

	// Known label values start at zero so absent reasons still export.
	for _, reason := range extract.Reasons() {
		rejections.WithLabelValues(reason.String())
	}

	return &Registry{
		reg:         r,
		Documents:   documents,
		Candidates:  candidates,
		Retained:    retained,
		Rejections:  rejections,
		Duplicates:  duplicates,
		Columns:     columns,
		ExtractSec:  extractSec,
		DurationSec: durationSec,
		LastRun:     lastRun,
	}
}

// Observe adds the statistics of a finished run.
func (r *Registry) Observe(res *reconciler.Result) {
	s := res.Stats
	for category, n := range s.Categories {
		r.Documents.WithLabelValues(category).Add(float64(n))
	}
	r.Candidates.Add(float64(s.Candidates))
	r.Retained.Set(float64(s.Retained))
	for reason, n := range s.Rejections {
		r.Rejections.WithLabelValues(reason.String()).Add(float64(n))
	}
	r.Duplicates.WithLabelValues("store_id").Add(float64(s.Dedupe.ByStoreID))
	r.Duplicates.WithLabelValues("name").Add(float64(s.Dedupe.ByName))
	r.Duplicates.WithLabelValues("empty_key").Add(float64(s.Dedupe.EmptyKey))
	r.Columns.Set(float64(s.Columns))
	r.ExtractSec.Set(s.ExtractTime.Seconds())
	r.DurationSec.Set(res.Duration.Seconds())
	if !res.EndTime.Time.IsZero() {
		r.LastRun.Set(float64(res.EndTime.Time.Unix()))
	}
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the metrics in the text exposition format. The
// file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return errors.WrapResource("write", "metrics", path, err)
	}
	return nil
}
