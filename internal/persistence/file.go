package persistence

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// fileWriter writes through a temporary file in the destination
// directory and renames it into place, so a failed write never leaves a
// partial table behind.
type fileWriter struct {
	path   string
	encode func(ctx context.Context, w io.Writer, t *catalogs.Table) error
}

func (fw *fileWriter) Write(ctx context.Context, t *catalogs.Table) error {
	if err := ensureDir(fw.path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fw.path), "."+filepath.Base(fw.path)+".*")
	if err != nil {
		return errors.WrapIO("create", fw.path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	buf := bufio.NewWriter(tmp)
	if err := fw.encode(ctx, buf, t); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", fw.path, err)
	}
	if err := buf.Flush(); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", fw.path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", fw.path, err)
	}
	if err := os.Chmod(tmp.Name(), constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", fw.path, err)
	}
	if err := os.Rename(tmp.Name(), fw.path); err != nil {
		return errors.WrapIO("rename", fw.path, err)
	}
	return nil
}

// encodeCSV writes a header row then one row per record. Null cells are
// empty and list cells comma-joined (and therefore quoted).
func encodeCSV(ctx context.Context, w io.Writer, t *catalogs.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(catalogs.Headers()); err != nil {
		return err
	}
	for i, r := range t.Records() {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := cw.Write(catalogs.Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// encodeJSONL writes one JSON object per record.
func encodeJSONL(ctx context.Context, w io.Writer, t *catalogs.Table) error {
	enc := json.NewEncoder(w)
	for i, r := range t.Records() {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := enc.Encode(catalogs.Map(r)); err != nil {
			return err
		}
	}
	return nil
}
