package persistence

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/logging"
)

func testTable() *catalogs.Table {
	release := time.Date(2024, time.September, 6, 0, 0, 0, 0, time.UTC)
	return catalogs.NewTable([]*catalogs.Record{
		{
			ShortURLName:     "astro-bot",
			StoreID:          "EP9000-PPSA01",
			Name:             "Astro Bot",
			Publisher:        ptr.To("Sony"),
			ReleaseDate:      &release,
			Genres:           []string{"Action", "Platformer"},
			IsPS5:            1,
			PEGIRating:       ptr.To(7),
			TrophiesCount:    ptr.To(47),
			BasePrice:        ptr.To(69.99),
			LowestPrice:      52.49,
			DaysToDiscount10: ptr.To(40),
		},
		{
			ShortURLName: "tiny-game",
			StoreID:      "EP0001-CUSA01",
			Name:         "Tiny, the Game",
			Genres:       []string{"Puzzle"},
			IsPS4:        ptr.To(1),
			ESRBRating:   ptr.To("E"),
			BasePrice:    ptr.To(19.99),
			LowestPrice:  19.99,
		},
	})
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		explicit string
		path     string
		want     Format
		wantErr  bool
	}{
		{"", "out/games.csv", FormatCSV, false},
		{"", "games.JSONL", FormatJSONL, false},
		{"", "games.ndjson", FormatJSONL, false},
		{"", "games.db", FormatSQLite, false},
		{"", "games.sqlite3", FormatSQLite, false},
		{"csv", "games.db", FormatCSV, false},
		{"SQLite", "games", FormatSQLite, false},
		{"", "games.parquet", "", true},
		{"xml", "games.csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.explicit+"|"+tt.path, func(t *testing.T) {
			got, err := Resolve(tt.explicit, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatForPath("games.txt")
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
	_, err = ParseFormat("xml")
	assert.True(t, errors.IsValidationError(err))
}

func TestSaveCSV(t *testing.T) {
	logging.DisableLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "nested", "games.csv")

	require.NoError(t, Save(context.Background(), testTable(), path, FormatCSV))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, catalogs.Headers(), rows[0])

	col := func(name string) int {
		for i, h := range rows[0] {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %s missing", name)
		return -1
	}
	assert.Equal(t, "Action,Platformer", rows[1][col("genres")])
	assert.Equal(t, "2024-09-06", rows[1][col("release_date")])
	assert.Equal(t, "69.99", rows[1][col("base_price")])
	assert.Equal(t, "", rows[1][col("is_ps4")])
	assert.Equal(t, "Tiny, the Game", rows[2][col("game_name")])
	assert.Equal(t, "", rows[2][col("pegi_rating")])
	assert.Equal(t, "0", rows[2][col("is_ps5")])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.FilePermissions), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not remain")
}

func TestSaveJSONL(t *testing.T) {
	logging.DisableLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "games.jsonl")

	require.NoError(t, Save(context.Background(), testTable(), path, FormatJSONL))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	require.NoError(t, sc.Err())
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Len(t, first, len(catalogs.Columns()))
	assert.Equal(t, "astro-bot", first["short_url_name"])
	assert.Equal(t, "2024-09-06", first["release_date"])
	assert.Equal(t, []any{"Action", "Platformer"}, first["genres"])
	assert.EqualValues(t, 47, first["trophies_count"])
	assert.Contains(t, first, "developer")
	assert.Nil(t, first["developer"])
	assert.Equal(t, []any{}, lines[1]["voice_languages"])
}

func TestSaveSQLite(t *testing.T) {
	logging.DisableLoggingForTest(t)
	path := filepath.Join(t.TempDir(), "games.db")
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, Save(ctx, testTable(), path, FormatSQLite))

	require.NoError(t, Save(ctx, testTable(), path, FormatSQLite), "rewriting replaces the database")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "games"`).Scan(&n))
	assert.Equal(t, 2, n)

	var (
		genres string
		pegi   sql.NullInt64
		esrb   sql.NullString
		price  float64
	)
	row := db.QueryRow(`SELECT genres, pegi_rating, esrb_rating, base_price FROM games WHERE short_url_name = ?`, "tiny-game")
	require.NoError(t, row.Scan(&genres, &pegi, &esrb, &price))
	assert.Equal(t, "Puzzle", genres)
	assert.False(t, pegi.Valid)
	assert.Equal(t, "E", esrb.String)
	assert.InDelta(t, 19.99, price, 1e-9)
}

func TestCreateTableSQL(t *testing.T) {
	stmt := CreateTableSQL("games")
	assert.Contains(t, stmt, `"base_price" REAL,`)
	assert.Contains(t, stmt, `"lowest_price" REAL NOT NULL`)
	assert.Contains(t, stmt, `"pegi_rating" INTEGER,`)
	assert.Contains(t, stmt, `"release_date" TEXT`)
	assert.Equal(t, "INTEGER", SQLType(catalogs.KindFlag))
}
