// Package classify maps the tag vocabularies of the sources onto a fixed
// set of canonical genres and a filtered list of descriptive feature tags.
//
// Genres are the logical OR of three signals, consulted in a fixed order:
// the tracker's structured GenreX flags, the aggregator's structured GenreX
// flags, and the aggregator's free-text tags run through the tag table.
// A genre present in any signal is present in the result.
package classify

import "strings"

// Genre is one canonical genre label.
type Genre string

// Canonical genres, in output order.
const (
	Action     Genre = "Action"
	Adventure  Genre = "Adventure"
	Casual     Genre = "Casual"
	MMO        Genre = "MMO"
	Racing     Genre = "Racing"
	RPG        Genre = "RPG"
	Simulation Genre = "Simulation"
	Sports     Genre = "Sports"
	Strategy   Genre = "Strategy"
	TPS        Genre = "TPS"
	FPS        Genre = "FPS"
	Platformer Genre = "Platformer"
	Fighting   Genre = "Fighting"
	Arcade     Genre = "Arcade"
	Puzzle     Genre = "Puzzle"
	Music      Genre = "Music"
	Horror     Genre = "Horror"
)

var allGenres = []Genre{
	Action, Adventure, Casual, MMO, Racing, RPG, Simulation, Sports, Strategy,
	TPS, FPS, Platformer, Fighting, Arcade, Puzzle, Music, Horror,
}

// flagPrefix prefixes structured genre flags in source documents.
const flagPrefix = "Genre"

// All returns the canonical genres in output order.
func All() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// FlagKey is the key of the structured flag for g, e.g. "GenreRPG".
func (g Genre) FlagKey() string {
	return flagPrefix + string(g)
}

// String returns the genre label.
func (g Genre) String() string {
	return string(g)
}

// GenreForTag returns the canonical genre of a free-text tag.
func GenreForTag(tag string) (Genre, bool) {
	g, ok := tagGenres[tag]
	return g, ok
}

// Signals carries the raw genre inputs of one document. Nil flag maps
// mean the source is absent; a nil Tags value means no tags.
type Signals struct {
	TrackerFlags map[string]any
	DealsFlags   map[string]any
	DealsTags    any
}

// Genres merges all signals and returns the present genres in canonical
// order. Free-text tags are split on commas without trimming.
func Genres(s Signals) []Genre {
	present := make(map[Genre]bool, len(allGenres))
	for _, flags := range []map[string]any{s.TrackerFlags, s.DealsFlags} {
		if flags == nil {
			continue
		}
		for _, g := range allGenres {
			if flagSet(flags[g.FlagKey()]) {
				present[g] = true
			}
		}
	}
	if raw, ok := s.DealsTags.(string); ok {
		for _, tag := range strings.Split(raw, ",") {
			if g, ok := tagGenres[tag]; ok {
				present[g] = true
			}
		}
	}

	var out []Genre
	for _, g := range allGenres {
		if present[g] {
			out = append(out, g)
		}
	}
	return out
}

// flagSet reports whether a structured flag holds the value 1.
func flagSet(v any) bool {
	switch x := v.(type) {
	case float64:
		return x == 1
	case int:
		return x == 1
	case int64:
		return x == 1
	case bool:
		return x
	default:
		return false
	}
}

// Names converts genres to their labels.
func Names(genres []Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}
