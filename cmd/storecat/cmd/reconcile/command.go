// Package reconcile implements the reconcile command: snapshot in,
// normalized table out.
package reconcile

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/storecat/internal/appcontext"
	"github.com/agentstation/storecat/internal/cmd/constants"
	"github.com/agentstation/storecat/internal/cmd/output"
	"github.com/agentstation/storecat/internal/cmd/table"
	"github.com/agentstation/storecat/internal/metrics"
	"github.com/agentstation/storecat/internal/persistence"
	"github.com/agentstation/storecat/internal/publisher"
	"github.com/agentstation/storecat/internal/report"
	"github.com/agentstation/storecat/internal/snapshot"
	"github.com/agentstation/storecat/pkg/logging"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// DefaultOutput is the table written when --out is not given.
const DefaultOutput = "games.csv"

// Flags holds the reconcile command flags.
type Flags struct {
	Out                 string
	TableFormat         string
	NormalizePublishers bool
	MetricsFile         string
	ReportFile          string
}

// Summary is the structured output of a run.
type Summary struct {
	RunID      string           `json:"run_id" yaml:"run_id"`
	Snapshot   string           `json:"snapshot" yaml:"snapshot"`
	Output     string           `json:"output" yaml:"output"`
	Format     string           `json:"format" yaml:"format"`
	Stats      reconciler.Stats `json:"stats" yaml:"stats"`
	Publishers *publisher.Stats `json:"publishers,omitempty" yaml:"publishers,omitempty"`
}

// NewCommand creates the reconcile command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "reconcile <snapshot>",
		GroupID: constants.GroupCore,
		Short:   "Build the normalized table from a snapshot",
		Long: `Reconcile extracts one record per snapshot document, drops the documents
that fail the eligibility rules, collapses duplicates by store identifier
and then by product name, and writes the surviving records.

The table format follows --table-format, or the extension of --out
(.csv, .jsonl, .db/.sqlite). Nothing is written when the snapshot cannot
be read.`,
		Example: `  storecat reconcile snapshot.json
  storecat reconcile snapshot.json --out games.db
  storecat reconcile snapshot.json --min-price-prev-gen -1 --report run.md
  storecat reconcile snapshot.json --metrics-textfile /var/lib/node_exporter/storecat.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cmd.OutOrStdout(), app, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.Out, "out", DefaultOutput, "table file to write")
	cmd.Flags().StringVar(&flags.TableFormat, "table-format", "", "table format: csv, jsonl, sqlite (default from --out extension)")
	cmd.Flags().BoolVar(&flags.NormalizePublishers, "normalize-publishers", false, "merge publisher name variants")
	cmd.Flags().StringVar(&flags.MetricsFile, "metrics-textfile", "", "write Prometheus metrics to this file")
	cmd.Flags().StringVar(&flags.ReportFile, "report", "", "write a Markdown run report to this file")

	return cmd
}

// Run executes a reconciliation and prints its summary to w.
func Run(ctx context.Context, w io.Writer, app appcontext.Interface, path string, flags *Flags) error {
	logger := logging.FromContext(ctx)

	format, err := persistence.Resolve(flags.TableFormat, flags.Out)
	if err != nil {
		return err
	}

	snap, err := snapshot.Load(ctx, path)
	if err != nil {
		return err
	}

	opts, err := app.ReconcilerOptions()
	if err != nil {
		return err
	}
	r, err := reconciler.New(opts...)
	if err != nil {
		return err
	}
	res, err := r.Reconcile(ctx, snap.Documents)
	if err != nil {
		return err
	}

	summary := Summary{
		RunID:    res.RunID,
		Snapshot: path,
		Output:   flags.Out,
		Format:   string(format),
	}

	if flags.NormalizePublishers {
		n, err := publisher.New()
		if err != nil {
			return err
		}
		var stats publisher.Stats
		res.Table, stats = n.Apply(ctx, res.Table)
		summary.Publishers = &stats
	}

	if err := persistence.Save(ctx, res.Table, flags.Out, format); err != nil {
		return err
	}

	if flags.MetricsFile != "" {
		reg := metrics.NewRegistry()
		reg.Observe(res)
		if err := reg.WriteTextfile(flags.MetricsFile); err != nil {
			return err
		}
		logger.Debug().Str("path", flags.MetricsFile).Msg("Wrote metrics")
	}

	if flags.ReportFile != "" {
		if err := report.WriteFile(flags.ReportFile, res); err != nil {
			return err
		}
		logger.Debug().Str("path", flags.ReportFile).Msg("Wrote report")
	}

	logger.Info().
		Str("output", flags.Out).
		Int("records", res.Table.Len()).
		Msg(res.Summary())

	summary.Stats = res.Stats
	return output.Write(w, output.Format(app.OutputFormat()), summary, func(bool) output.Data {
		return table.ResultToTableData(res)
	})
}
