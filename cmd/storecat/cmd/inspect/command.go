// Package inspect implements the inspect command, which traces one
// snapshot document through the extractor.
package inspect

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
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/sources"
)

// Decision is the structured output of inspect.
type Decision struct {
	Document string         `json:"document" yaml:"document"`
	Request  string         `json:"request" yaml:"request"`
	Category string         `json:"category" yaml:"category"`
	Sources  []string       `json:"sources" yaml:"sources"`
	Accepted bool           `json:"accepted" yaml:"accepted"`
	Reason   string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	Detail   string         `json:"detail,omitempty" yaml:"detail,omitempty"`
	History  int            `json:"history_entries" yaml:"history_entries"`
	Record   map[string]any `json:"record,omitempty" yaml:"record,omitempty"`
}

// NewCommand creates the inspect command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <snapshot> <document>",
		GroupID: constants.GroupInfo,
		Short:   "Show how one document is extracted",
		Long: `Inspect runs the extractor on a single snapshot document and prints
the decision: the record it produces, or the rule that rejected it.`,
		Example: `  storecat inspect snapshot.json astro-bot
  storecat inspect snapshot.json astro-bot -o yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cmd.OutOrStdout(), app, args[0], args[1])
		},
	}
}

// Run traces document key of the snapshot at path and prints the decision.
func Run(ctx context.Context, w io.Writer, app appcontext.Interface, path, key string) error {
	snap, err := snapshot.Load(ctx, path)
	if err != nil {
		return err
	}
	doc, err := snap.Find(key)
	if err != nil {
		return err
	}

	opts, err := app.ExtractOptions()
	if err != nil {
		return err
	}
	ex, err := extract.New(opts...)
	if err != nil {
		return err
	}

	out := ex.Extract(doc)
	d := decide(doc, out)

	format := output.Format(app.OutputFormat())
	if !format.IsTabular() {
		return output.NewFormatter(format).Format(w, d)
	}

	fmt.Fprintf(w, "Document: %s\n", d.Document)
	fmt.Fprintf(w, "Category: %s (%s)\n", d.Category, orNone(d.Request))
	fmt.Fprintf(w, "Sources:  %v\n", d.Sources)
	fmt.Fprintf(w, "History:  %d entries\n", d.History)
	if !d.Accepted {
		fmt.Fprintf(w, "Decision: rejected, %s (%s)\n", d.Reason, d.Detail)
		return nil
	}
	fmt.Fprintf(w, "Decision: accepted\n\n")
	return output.NewFormatter(format).Format(w, table.RecordToTableData(out.Record))
}

func decide(doc *sources.Document, out extract.Outcome) Decision {
	d := Decision{
		Document: doc.Key,
		Request:  doc.Request,
		Category: doc.Category.String(),
		Sources:  []string{},
		Accepted: out.Accepted(),
		History:  out.History.Len(),
	}
	for _, id := range doc.Sources() {
		d.Sources = append(d.Sources, id.String())
	}
	if out.Rejection != nil {
		d.Reason = out.Rejection.Reason.String()
		d.Detail = out.Rejection.Detail
	}
	if out.Record != nil {
		d.Record = catalogs.Map(out.Record)
	}
	return d
}

func orNone(s string) string {
	if s == "" {
		return "no request"
	}
	return s
}
