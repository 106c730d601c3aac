// Package columns implements the columns command.
package columns

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/storecat/internal/appcontext"
	"github.com/agentstation/storecat/internal/cmd/constants"
	"github.com/agentstation/storecat/internal/cmd/output"
	"github.com/agentstation/storecat/internal/cmd/table"
	"github.com/agentstation/storecat/internal/snapshot"
	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// Definition describes one output column.
type Definition struct {
	Name     string `json:"name" yaml:"name"`
	Kind     string `json:"kind" yaml:"kind"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// Overview is the structured output for a reconciled snapshot.
type Overview struct {
	Records      int                      `json:"records" yaml:"records"`
	Columns      []catalogs.ColumnSummary `json:"columns" yaml:"columns"`
	Distribution []catalogs.PriceSegment  `json:"base_price_distribution" yaml:"base_price_distribution"`
}

// NewCommand creates the columns command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "columns [snapshot]",
		GroupID: constants.GroupInfo,
		Short:   "List output columns, or profile them for a snapshot",
		Long: `Without arguments, columns lists the output columns in table order with
their kind and whether they may be null.

Given a snapshot, it reconciles it in memory and prints per-column
statistics followed by the base price distribution.`,
		Example: `  storecat columns
  storecat columns snapshot.json -o wide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(app.OutputFormat())
			if len(args) == 0 {
				return List(cmd.OutOrStdout(), format)
			}
			return Profile(cmd.Context(), cmd.OutOrStdout(), app, args[0])
		},
	}
}

// List prints the column catalogue.
func List(w io.Writer, format output.Format) error {
	cols := catalogs.Columns()
	defs := make([]Definition, 0, len(cols))
	rows := make([][]string, 0, len(cols))
	for i, c := range cols {
		defs = append(defs, Definition{Name: c.Name, Kind: c.Kind.String(), Nullable: c.Nullable})
		nullable := "no"
		if c.Nullable {
			nullable = "yes"
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), c.Name, c.Kind.String(), nullable})
	}
	return output.Write(w, format, defs, func(bool) output.Data {
		return output.Data{
			Headers:         []string{"#", "Column", "Kind", "Nullable"},
			Rows:            rows,
			ColumnAlignment: []table.Align{table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignCenter},
		}
	})
}

// Profile reconciles the snapshot at path and prints column statistics.
func Profile(ctx context.Context, w io.Writer, app appcontext.Interface, path string) error {
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

	p := Overview{
		Records:      res.Table.Len(),
		Columns:      res.Table.Summarize(),
		Distribution: res.Table.PriceDistribution(catalogs.DefaultPriceSegments()),
	}

	format := output.Format(app.OutputFormat())
	if !format.IsTabular() {
		return output.NewFormatter(format).Format(w, p)
	}

	f := output.NewFormatter(format)
	fmt.Fprintf(w, "Records: %s\n\n", table.FormatNumber(int64(p.Records)))
	if err := f.Format(w, table.SummariesToTableData(p.Columns, format == output.FormatWide)); err != nil {
		return err
	}
	if p.Records == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nBase price distribution:")
	return f.Format(w, table.SegmentsToTableData(p.Distribution))
}
