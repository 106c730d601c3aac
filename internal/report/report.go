// Package report renders a Markdown summary of a reconciliation run.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/reconciler"
)

// maxFailures caps the extraction failures listed individually.
const maxFailures = 20

// Write renders the report for res to w.
func Write(w io.Writer, res *reconciler.Result) error {
	doc := md.NewMarkdown(w)

	doc.H1("storecat run " + res.RunID).LF()
	doc.PlainText(res.Summary()).LF()
	doc.BulletList(
		"Started: "+res.StartTime.Time.Format(time.RFC3339),
		"Duration: "+res.Duration.Round(time.Millisecond).String(),
		"Extraction: "+res.Stats.ExtractTime.Round(time.Millisecond).String(),
	).LF()

	writeDocuments(doc, res)
	writeRejections(doc, res)
	writeDedupe(doc, res)
	if res.Table != nil && res.Table.Len() > 0 {
		writeColumns(doc, res.Table)
		writePrices(doc, res.Table)
	}
	writeFailures(doc, res)

	return doc.Build()
}

// WriteFile renders the report to path.
func WriteFile(path string, res *reconciler.Result) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()
	if err := Write(f, res); err != nil {
		return errors.WrapResource("write", "report", path, err)
	}
	return nil
}

func writeDocuments(doc *md.Markdown, res *reconciler.Result) {
	cats := make([]string, 0, len(res.Stats.Categories))
	for c := range res.Stats.Categories {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c, strconv.Itoa(res.Stats.Categories[c])})
	}
	doc.H2("Documents").LF()
	doc.Table(md.TableSet{
		Header: []string{"Category", "Documents"},
		Rows:   rows,
	}).LF()
}

func writeRejections(doc *md.Markdown, res *reconciler.Result) {
	doc.H2("Rejections").LF()
	counts := res.RejectionsByReason()
	if len(counts) == 0 {
		doc.PlainText("No document was rejected.").LF()
		return
	}
	rows := make([][]string, 0, len(counts))
	for _, rc := range counts {
		rows = append(rows, []string{md.Code(rc.Reason.String()), strconv.Itoa(rc.Count)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Reason", "Documents"},
		Rows:   rows,
	}).LF()
}

func writeDedupe(doc *md.Markdown, res *reconciler.Result) {
	d := res.Stats.Dedupe
	doc.H2("Deduplication").LF()
	doc.BulletList(
		fmt.Sprintf("Candidates: %d", res.Stats.Candidates),
		fmt.Sprintf("Removed by store identifier: %d", d.ByStoreID),
		fmt.Sprintf("Removed by product name: %d", d.ByName),
		fmt.Sprintf("Dropped with an empty key: %d", d.EmptyKey),
		fmt.Sprintf("Retained: %d", res.Stats.Retained),
	).LF()
}

func writeColumns(doc *md.Markdown, t *catalogs.Table) {
	summaries := t.Summarize()
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		nullable := "no"
		if s.Nullable {
			nullable = "yes"
		}
		rows = append(rows, []string{
			md.Code(s.Column),
			s.Kind,
			nullable,
			strconv.Itoa(s.NonNull),
			strconv.Itoa(s.Null),
			strconv.Itoa(s.Unique),
		})
	}
	doc.H2("Columns").LF()
	doc.Table(md.TableSet{
		Header: []string{"Column", "Kind", "Nullable", "Non-null", "Null", "Unique"},
		Rows:   rows,
	}).LF()
}

func writePrices(doc *md.Markdown, t *catalogs.Table) {
	segments := t.PriceDistribution(catalogs.DefaultPriceSegments())
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		share := 0.0
		if t.Len() > 0 {
			share = 100 * float64(s.Count) / float64(t.Len())
		}
		rows = append(rows, []string{s.Label, strconv.Itoa(s.Count), fmt.Sprintf("%.1f%%", share)})
	}
	doc.H2("Base price distribution").LF()
	doc.Table(md.TableSet{
		Header: []string{"Segment", "Records", "Share"},
		Rows:   rows,
	}).LF()
}

func writeFailures(doc *md.Markdown, res *reconciler.Result) {
	failures := res.Failures()
	if len(failures) == 0 {
		return
	}
	items := make([]string, 0, maxFailures+1)
	for i, f := range failures {
		if i == maxFailures {
			items = append(items, fmt.Sprintf("... and %d more", len(failures)-maxFailures))
			break
		}
		items = append(items, md.Code(f.Document)+": "+f.Detail)
	}
	doc.H2("Extraction failures").LF()
	doc.BulletList(items...).LF()
}
