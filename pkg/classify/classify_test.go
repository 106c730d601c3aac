package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllGenres(t *testing.T) {
	all := All()
	assert.Len(t, all, 17)
	assert.Equal(t, Action, all[0])
	assert.Equal(t, Horror, all[16])
	assert.Equal(t, "GenreRPG", RPG.FlagKey())

	all[0] = "mutated"
	assert.Equal(t, Action, All()[0], "All returns a copy")
}

func TestGenreTableTargetsCanonicalGenres(t *testing.T) {
	canonical := map[Genre]bool{}
	for _, g := range All() {
		canonical[g] = true
	}
	for tag, g := range tagGenres {
		assert.True(t, canonical[g], "tag %q maps to unknown genre %q", tag, g)
	}
}

func TestGenres(t *testing.T) {
	tests := []struct {
		name string
		in   Signals
		want []Genre
	}{
		{
			name: "no sources",
			in:   Signals{},
			want: nil,
		},
		{
			name: "tracker flags",
			in: Signals{TrackerFlags: map[string]any{
				"GenreHorror": float64(1), "GenreAction": float64(0), "GenreRPG": true,
			}},
			want: []Genre{RPG, Horror},
		},
		{
			name: "or across sources",
			in: Signals{
				TrackerFlags: map[string]any{"GenreAction": float64(0), "GenrePuzzle": float64(1)},
				DealsFlags:   map[string]any{"GenreAction": float64(1), "GenrePuzzle": float64(0)},
			},
			want: []Genre{Action, Puzzle},
		},
		{
			name: "string flags are not set",
			in:   Signals{DealsFlags: map[string]any{"GenreSports": "1", "GenreMusic": float64(2)}},
			want: nil,
		},
		{
			name: "tags are not trimmed",
			in:   Signals{DealsTags: "Souls-like, Horror,Racing"},
			want: []Genre{Racing, RPG},
		},
		{
			name: "non string tags ignored",
			in:   Signals{DealsTags: []any{"Horror"}},
			want: nil,
		},
		{
			name: "canonical order",
			in: Signals{
				DealsFlags: map[string]any{"GenreHorror": float64(1)},
				DealsTags:  "Metroidvania,JRPG,FPS",
			},
			want: []Genre{RPG, FPS, Platformer, Horror},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Genres(tt.in))
		})
	}
}

func TestFeatureTags(t *testing.T) {
	tests := []struct {
		name     string
		features any
		tags     any
		want     []string
	}{
		{"nothing", nil, nil, nil},
		{
			name:     "exclusions removed",
			features: "Single-player,Online multiplayer,Co-op,Local multiplayer,PvP",
			want:     []string{"Co-op", "PvP"},
		},
		{
			name: "tags trimmed and allow listed",
			tags: "Open World, Souls-like ,Not A Real Tag,,Difficult",
			want: []string{"Open World", "Souls-like", "Difficult"},
		},
		{
			name:     "deduplicated in order",
			features: "Co-op,Co-op,",
			tags:     "Co-op Campaign,Open World,Open World",
			want:     []string{"Co-op", "Co-op Campaign", "Open World"},
		},
		{
			name:     "wrong shapes ignored",
			features: []any{"Co-op"},
			tags:     float64(3),
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeatureTags(tt.features, tt.tags))
		})
	}
	assert.True(t, IsFeatureTag("PlayStation exclusive"))
	assert.False(t, IsFeatureTag("Single-player"))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Action", "MMO"}, Names([]Genre{Action, MMO}))
	assert.Empty(t, Names(nil))
}
