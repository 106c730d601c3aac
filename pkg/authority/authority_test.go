package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/storecat/pkg/sources"
)

func TestFindOrdersByPriority(t *testing.T) {
	a := New()

	got := a.Find(StoreID)
	require.Len(t, got, 3)
	assert.Equal(t, "ID", got[0].Path)
	assert.Equal(t, "Sku", got[1].Path)
	assert.Equal(t, sources.Tracker, got[2].Source)

	dev := a.Find(Developer)
	require.NotEmpty(t, dev)
	assert.Equal(t, sources.Deals, dev[0].Source)

	assert.Empty(t, a.Find("unknown_field"))
}

func TestNewFromFieldsOverridesOneField(t *testing.T) {
	a := NewFromFields([]Field{
		{Name: Publisher, Source: sources.Deals, Path: "Publisher", Priority: 10},
	})

	pub := a.Find(Publisher)
	require.Len(t, pub, 1)
	assert.Equal(t, sources.Deals, pub[0].Source)

	assert.Len(t, a.Find(StoreID), 3, "untouched fields keep defaults")
}

func TestByField(t *testing.T) {
	fields := []Field{
		{Name: "price*", Source: sources.Tracker, Priority: 50},
		{Name: "price_base", Source: sources.Deals, Priority: 90},
	}
	best := ByField("price_base", fields)
	require.NotNil(t, best)
	assert.Equal(t, sources.Deals, best.Source)
	assert.Nil(t, ByField("genre", fields))
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		field, pattern string
		want           bool
	}{
		{"publisher", "publisher", true},
		{"days_to_10", "days_to_*", true},
		{"days_to_10", "days_?o_10", true},
		{"publisher", "developer", false},
		{"x", "[", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesPattern(tt.field, tt.pattern), "%s ~ %s", tt.field, tt.pattern)
	}
}

func TestBySource(t *testing.T) {
	deals := BySource(New().List(), sources.Deals)
	require.NotEmpty(t, deals)
	for _, f := range deals {
		assert.Equal(t, sources.Deals, f.Source)
	}
}
