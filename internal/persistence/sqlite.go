package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
)

// sqliteWriter replaces the database at path with a single table holding
// the records.
type sqliteWriter struct {
	path  string
	table string
}

// SQLType maps a column kind to its SQLite storage class.
func SQLType(k catalogs.Kind) string {
	switch k {
	case catalogs.KindInt, catalogs.KindFlag:
		return "INTEGER"
	case catalogs.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// CreateTableSQL returns the CREATE TABLE statement for the record columns.
func CreateTableSQL(table string) string {
	cols := catalogs.Columns()
	defs := make([]string, len(cols))
	for i, c := range cols {
		def := fmt.Sprintf("%q %s", c.Name, SQLType(c.Kind))
		if !c.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %q (%s)", table, strings.Join(defs, ", "))
}

func insertSQL(table string) string {
	cols := catalogs.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = fmt.Sprintf("%q", c.Name)
	}
	ph := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")
	return fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", table, strings.Join(names, ","), ph)
}

// sqlValue converts a column value to a driver argument.
func sqlValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return strings.Join(x, constants.ListSeparator)
	case time.Time:
		return x.Format(constants.DateLayout)
	default:
		return x
	}
}

func (sw *sqliteWriter) Write(ctx context.Context, t *catalogs.Table) (err error) {
	if err := ensureDir(sw.path); err != nil {
		return err
	}
	if err := os.Remove(sw.path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", sw.path, err)
	}

	db, err := sql.Open("sqlite", sw.path)
	if err != nil {
		return errors.WrapResource("open", "sqlite", sw.path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.WrapResource("close", "sqlite", sw.path, cerr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapResource("begin", "sqlite", sw.path, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, CreateTableSQL(sw.table)); err != nil {
		return errors.WrapResource("create", "table", sw.table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(sw.table))
	if err != nil {
		return errors.WrapResource("prepare", "table", sw.table, err)
	}
	defer stmt.Close()

	cols := catalogs.Columns()
	args := make([]any, len(cols))
	for _, r := range t.Records() {
		for i, c := range cols {
			args[i] = sqlValue(c.Value(r))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return errors.NewResourceError("insert", "record", r.ShortURLName, err)
		}
	}

	for _, idx := range []string{"id_store", "game_name"} {
		q := fmt.Sprintf("CREATE INDEX %q ON %q (%q)", "idx_"+sw.table+"_"+idx, sw.table, idx)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return errors.WrapResource("index", "table", sw.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapResource("commit", "sqlite", sw.path, err)
	}
	return nil
}
