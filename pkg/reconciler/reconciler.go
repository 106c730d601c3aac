// Package reconciler assembles the catalog: it runs the extractor over
// every document of a snapshot, collects the surviving records and
// collapses duplicates into the final table.
//
// Extraction is independent per document and runs on a bounded pool of
// goroutines. Deduplication is global and runs once, on a single
// goroutine, after every document has been extracted.
package reconciler

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/logging"
	"github.com/agentstation/storecat/pkg/sources"
)

// Reconciler turns snapshot documents into a catalog table.
type Reconciler interface {
	// Reconcile extracts every document and deduplicates the candidates
	Reconcile(ctx context.Context, docs []*sources.Document) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	workers   int
	extractor *extract.Extractor
	runID     string
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	ex := o.extractor
	if ex == nil {
		ex, err = extract.New(o.extractOpts...)
		if err != nil {
			return nil, err
		}
	}
	return &reconciler{workers: o.workers, extractor: ex, runID: o.runID}, nil
}

// Reconcile runs the pipeline. It only fails when ctx is cancelled;
// documents that cannot be extracted become rejections.
func (r *reconciler) Reconcile(ctx context.Context, docs []*sources.Document) (*Result, error) {
	ctx = logging.WithOperation(ctx, "reconcile")
	logger := logging.FromContext(ctx)
	runID := r.runID
	if runID == "" {
		runID = logging.RunID(ctx)
	}
	result := NewResult(runID)

	logger.Info().
		Int("documents", len(docs)).
		Int("workers", r.workers).
		Msg("Extracting documents")

	mapper := iter.Mapper[*sources.Document, extract.Outcome]{MaxGoroutines: r.workers}
	outcomes := mapper.Map(docs, func(doc **sources.Document) extract.Outcome {
		if ctx.Err() != nil {
			return extract.Outcome{Document: (*doc).Key}
		}
		return r.extractor.Extract(*doc)
	})
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapResource("reconcile", "snapshot", runID, err)
	}

	extractEnd := time.Now()
	candidates := make([]*catalogs.Record, 0, len(outcomes))
	for i, out := range outcomes {
		result.Stats.countDocument(docs[i].Category)
		if out.Accepted() {
			candidates = append(candidates, out.Record)
			continue
		}
		if out.Rejection == nil {
			continue
		}
		result.addRejection(out.Rejection)
		if errors.IsExtraction(out.Rejection) {
			logger.Warn().
				Err(out.Rejection.Err).
				Str("document", out.Document).
				Str("detail", out.Rejection.Detail).
				Msg("Document extraction failed")
		} else {
			logger.Debug().
				Str("document", out.Document).
				Str("reason", out.Rejection.Reason.String()).
				Str("detail", out.Rejection.Detail).
				Msg("Document rejected")
		}
	}
	result.Stats.Candidates = len(candidates)
	result.Stats.ExtractTime = extractEnd.Sub(result.StartTime.Time)

	kept, dedupe := catalogs.Dedupe(candidates)
	result.Stats.Dedupe = dedupe
	result.Table = catalogs.NewTable(kept)
	result.Finalize()

	logger.Info().
		Int("documents", result.Stats.Documents).
		Int("candidates", result.Stats.Candidates).
		Int("retained", result.Stats.Retained).
		Int("rejected", result.Stats.Rejected).
		Int("duplicates", dedupe.Total()).
		Dur("duration", result.Duration).
		Msg("Reconciliation complete")

	return result, nil
}
