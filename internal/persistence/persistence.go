// Package persistence writes a reconciled table to disk.
//
// Three formats are supported: delimited text (csv), JSON Lines (jsonl)
// and a SQLite database (sqlite). Every format keeps null distinct from
// zero: csv leaves the cell empty, jsonl writes null and sqlite stores
// NULL.
package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/logging"
)

// Format is an output table format.
type Format string

// Supported formats.
const (
	FormatCSV    Format = "csv"
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSONL, FormatSQLite}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSONL, FormatSQLite:
		return f, nil
	case "ndjson":
		return FormatJSONL, nil
	case "db", "sqlite3":
		return FormatSQLite, nil
	default:
		return "", errors.NewValidationError("format", s, "must be one of csv, jsonl, sqlite")
	}
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return FormatCSV, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return "", errors.NewIOError("detect format", path, errors.ErrUnsupportedFormat)
	}
}

// Resolve returns the explicit format when set, otherwise the format of
// the path's extension.
func Resolve(explicit, path string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	return FormatForPath(path)
}

// Writer writes a table to a destination.
type Writer interface {
	Write(ctx context.Context, t *catalogs.Table) error
}

// New returns the writer for format targeting path.
func New(format Format, path string) (Writer, error) {
	switch format {
	case FormatCSV:
		return &fileWriter{path: path, encode: encodeCSV}, nil
	case FormatJSONL:
		return &fileWriter{path: path, encode: encodeJSONL}, nil
	case FormatSQLite:
		return &sqliteWriter{path: path, table: constants.DefaultTableName}, nil
	default:
		return nil, errors.NewIOError("write", path, errors.ErrUnsupportedFormat)
	}
}

// Save writes t to path in the given format.
func Save(ctx context.Context, t *catalogs.Table, path string, format Format) error {
	w, err := New(format, path)
	if err != nil {
		return err
	}
	if err := w.Write(ctx, t); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().
		Str("path", path).
		Str("format", string(format)).
		Int("rows", t.Len()).
		Msg("Wrote table")
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}
