package reconcile

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/internal/appcontext"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/extract"
	"github.com/agentstation/storecat/pkg/logging"
	"github.com/agentstation/storecat/pkg/reconciler"
)

const fixture = "../testdata/snapshot.json"

func run(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return out.String(), err
}

func TestReconcileWritesCSV(t *testing.T) {
	logging.DisableLoggingForTest(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "games.csv")

	out, err := run(t, &appcontext.Mock{Format: "table"}, fixture, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Records retained")
	assert.Contains(t, out, "no_genre")

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "short_url_name", rows[0][0])
}

func TestReconcileJSONSummary(t *testing.T) {
	logging.DisableLoggingForTest(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "games.jsonl")

	out, err := run(t, &appcontext.Mock{Format: "json"}, fixture,
		"--out", dest,
		"--normalize-publishers",
		"--report", filepath.Join(dir, "run.md"),
		"--metrics-textfile", filepath.Join(dir, "storecat.prom"),
	)
	require.NoError(t, err)

	var summary struct {
		Format string `json:"format"`
		Stats  struct {
			Documents  int                    `json:"documents"`
			Retained   int                    `json:"retained"`
			Rejections map[extract.Reason]int `json:"rejections"`
		} `json:"stats"`
		Publishers *struct {
			Original int `json:"original"`
		} `json:"publishers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "jsonl", summary.Format)
	assert.Equal(t, 3, summary.Stats.Documents)
	assert.Equal(t, 2, summary.Stats.Retained)
	assert.Equal(t, 1, summary.Stats.Rejections[extract.ReasonNoGenre])
	require.NotNil(t, summary.Publishers)

	for _, name := range []string{"games.jsonl", "run.md", "storecat.prom"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	report, err := os.ReadFile(filepath.Join(dir, "run.md"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "# storecat run")
}

func TestReconcileFailures(t *testing.T) {
	logging.DisableLoggingForTest(t)
	dir := t.TempDir()

	t.Run("unknown table format", func(t *testing.T) {
		_, err := run(t, &appcontext.Mock{}, fixture, "--out", filepath.Join(dir, "games.xlsx"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
	})

	t.Run("missing snapshot writes nothing", func(t *testing.T) {
		dest := filepath.Join(dir, "never.csv")
		_, err := run(t, &appcontext.Mock{}, filepath.Join(dir, "missing.json"), "--out", dest)
		require.Error(t, err)
		assert.NoFileExists(t, dest)
	})

	t.Run("options error", func(t *testing.T) {
		app := &appcontext.Mock{ReconcilerOptionsFunc: func() ([]reconciler.Option, error) {
			return nil, errors.NewConfigError("reconciler", "bad workers", nil)
		}}
		_, err := run(t, app, fixture, "--out", filepath.Join(dir, "x.csv"))
		require.Error(t, err)
	})

	t.Run("requires snapshot argument", func(t *testing.T) {
		_, err := run(t, &appcontext.Mock{})
		require.Error(t, err)
	})
}
