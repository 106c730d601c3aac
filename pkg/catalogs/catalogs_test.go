package catalogs

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/internal/utils/ptr"
)

// completeRecord has every nullable column set.
func completeRecord(key, id, name string) *Record {
	release := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Record{
		ShortURLName:                key,
		StoreID:                     id,
		Name:                        name,
		Publisher:                   ptr.To("Publisher"),
		Developer:                   ptr.To("Developer"),
		ReleaseDate:                 &release,
		StarRating:                  ptr.To(4.52),
		StarRatingCount:             ptr.To(1200),
		MetacriticScore:             ptr.To(82),
		MetacriticUserScore:         ptr.To(79),
		Genres:                      []string{"Action", "RPG"},
		IsPS4:                       ptr.To(0),
		IsPS5:                       1,
		IsIndie:                     ptr.To(0),
		TrophiesCount:               ptr.To(45),
		LocalMultiplayerMaxPlayers:  ptr.To(0),
		OnlineMultiplayerMaxPlayers: ptr.To(0),
		Difficulty:                  ptr.To(5),
		DownloadSizePS4:             ptr.To(0),
		DownloadSizePS5:             ptr.To(48000),
		HoursMainStory:              ptr.To(20),
		HoursCompletionist:          ptr.To(60),
		PEGIRating:                  ptr.To(16),
		ESRBRating:                  ptr.To("Mature 17+"),
		BasePrice:                   ptr.To(69.99),
		LowestPrice:                 29.99,
		DaysToFirstPriceRecord:      ptr.To(0),
		DaysToDiscount10:            ptr.To(30),
		DaysToDiscount25:            ptr.To(60),
		DaysToDiscount50:            ptr.To(200),
		DaysToDiscount75:            ptr.To(400),
	}
}

func withMissing(r *Record, n int) *Record {
	clears := []func(){
		func() { r.Publisher = nil },
		func() { r.Developer = nil },
		func() { r.StarRating = nil },
		func() { r.Difficulty = nil },
		func() { r.DaysToDiscount75 = nil },
	}
	for i := 0; i < n; i++ {
		clears[i]()
	}
	return r
}

func TestColumns(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 46)
	assert.Equal(t, "short_url_name", cols[0].Name)
	assert.Equal(t, "days_to_75_percent_discount", cols[45].Name)

	seen := map[string]bool{}
	for _, c := range cols {
		assert.False(t, seen[c.Name], "duplicate column %s", c.Name)
		seen[c.Name] = true
	}

	c, ok := ColumnByName("pegi_rating")
	require.True(t, ok)
	assert.True(t, c.Nullable)
	assert.Equal(t, KindInt, c.Kind)

	_, ok = ColumnByName("nope")
	assert.False(t, ok)
}

func TestMissingCount(t *testing.T) {
	r := completeRecord("k", "id", "name")
	assert.Equal(t, 0, r.MissingCount())
	assert.Equal(t, 3, withMissing(r, 3).MissingCount())

	empty := &Record{ShortURLName: "k", StoreID: "id", Name: "n", Genres: []string{"Action"}}
	for _, c := range Columns() {
		v := c.Value(empty)
		if !c.Nullable {
			assert.NotNil(t, v, "non-nullable column %s must never be null", c.Name)
		}
	}
}

func TestRowFormatting(t *testing.T) {
	r := completeRecord("astro", "EP1", "Astro")
	r.Publisher = nil
	r.FeatureTags = []string{"Co-op", "Open World"}

	row := Row(r)
	byName := map[string]string{}
	for i, h := range Headers() {
		byName[h] = row[i]
	}
	assert.Equal(t, "", byName["publisher"], "null renders empty")
	assert.Equal(t, "2023-03-01", byName["release_date"])
	assert.Equal(t, "Action,RPG", byName["genres"])
	assert.Equal(t, "Co-op,Open World", byName["additional_features_tags"])
	assert.Equal(t, "69.99", byName["base_price"])
	assert.Equal(t, "4.52", byName["pssstore_stars_rating"])
	assert.Equal(t, "0", byName["is_ps4"])
	assert.Equal(t, "", byName["rating_descriptions"])

	m := Map(r)
	assert.Nil(t, m["publisher"])
	assert.Equal(t, "2023-03-01", m["release_date"])
}

func TestDedupeKeepsFewestMissing(t *testing.T) {
	x := withMissing(completeRecord("game-x", "EP1", "Game"), 3)
	y := withMissing(completeRecord("game-y", "EP1", "Game (Deluxe)"), 1)

	out, stats := Dedupe([]*Record{x, y})
	require.Len(t, out, 1)
	assert.Same(t, y, out[0])
	assert.Equal(t, 1, stats.ByStoreID)
	assert.Equal(t, 0, stats.ByName)
}

func TestDedupeByName(t *testing.T) {
	a := completeRecord("a", "EP2", "Same Name")
	b := completeRecord("b", "EP1", "Same Name")
	c := completeRecord("c", "EP3", "Other")

	out, stats := Dedupe([]*Record{a, b, c})
	require.Len(t, out, 2)
	assert.Equal(t, "Other", out[0].Name, "ordered by name")
	assert.Same(t, b, out[1], "tie goes to the smaller store id")
	assert.Equal(t, 1, stats.ByName)
	assert.Equal(t, 1, stats.Total())
}

func TestDedupeTieBreakIsDeterministic(t *testing.T) {
	a := completeRecord("zeta", "EP1", "Name A")
	b := completeRecord("alpha", "EP1", "Name B")

	out1, _ := Dedupe([]*Record{a, b})
	out2, _ := Dedupe([]*Record{b, a})
	require.Len(t, out1, 1)
	assert.Same(t, b, out1[0])
	assert.Same(t, out1[0], out2[0], "input order does not matter")
}

func TestDedupeDropsEmptyKeys(t *testing.T) {
	a := completeRecord("a", "", "Name")
	b := completeRecord("b", "EP2", "")
	out, stats := Dedupe([]*Record{a, b})
	assert.Empty(t, out)
	assert.Equal(t, 2, stats.EmptyKey)
}

func TestDedupeIdempotent(t *testing.T) {
	records := []*Record{
		withMissing(completeRecord("a", "EP1", "One"), 2),
		completeRecord("b", "EP1", "One bis"),
		completeRecord("c", "EP2", "Two"),
		withMissing(completeRecord("d", "EP3", "Two"), 1),
		completeRecord("e", "EP4", "Four"),
		withMissing(completeRecord("f", "EP4", "Four"), 4),
		completeRecord("g", "EP5", "Five"),
	}

	once, _ := Dedupe(records)
	twice, stats := Dedupe(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second dedupe changed the table (-once +twice):\n%s", diff)
	}
	assert.Zero(t, stats.Total())

	ids := map[string]bool{}
	names := map[string]bool{}
	for _, r := range once {
		assert.False(t, ids[r.StoreID])
		assert.False(t, names[r.Name])
		ids[r.StoreID] = true
		names[r.Name] = true
	}
}

func TestSummarize(t *testing.T) {
	a := completeRecord("a", "EP1", "One")
	b := completeRecord("b", "EP2", "Two")
	b.Publisher = nil
	tbl := NewTable([]*Record{a, b})

	var pub ColumnSummary
	for _, s := range tbl.Summarize() {
		if s.Column == "publisher" {
			pub = s
		}
	}
	assert.Equal(t, ColumnSummary{
		Column: "publisher", Kind: "string", Nullable: true,
		NonNull: 1, Null: 1, Unique: 1, Sample: "Publisher",
	}, pub)
}

func TestPriceDistribution(t *testing.T) {
	prices := []float64{4.99, 7.99, 8.0, 19.99, 39.99, 69.99, 7.995}
	var records []*Record
	for i, p := range prices {
		r := completeRecord(string(rune('a'+i)), "EP", "n")
		r.BasePrice = ptr.To(p)
		records = append(records, r)
	}

	got := NewTable(records).PriceDistribution(DefaultPriceSegments())
	counts := make([]int, len(got))
	for i, s := range got {
		counts[i] = s.Count
	}
	assert.Equal(t, []int{2, 1, 1, 1, 1}, counts)
}

func TestTableFind(t *testing.T) {
	tbl := NewTable([]*Record{completeRecord("a", "EP1", "One")})
	r, ok := tbl.Find("a")
	require.True(t, ok)
	assert.Equal(t, "One", r.Name)
	_, ok = tbl.Find("b")
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
	assert.Len(t, tbl.Rows()[0], len(tbl.Headers()))
}
