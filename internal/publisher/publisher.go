// Package publisher normalises publisher names across a table: corporate
// suffixes are stripped, known variants are mapped to a canonical name and
// near-identical spellings are merged into the most frequent one.
package publisher

import (
	"context"
	"sort"
	"strings"

	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/logging"
)

// DefaultThreshold is the similarity at which two names are merged.
const DefaultThreshold = 0.85

// suffixes are stripped in order, each at most once.
var suffixes = []string{
	" Inc.", " Inc", " LLC", " Ltd.", " Ltd", " Co., Ltd.",
	" Corporation", " Corp.", " Corp", " SA", " GmbH", " AB",
}

// DefaultCorrections maps canonical publisher names to known variants.
func DefaultCorrections() map[string][]string {
	return map[string][]string{
		"Bandai Namco Entertainment":     {"Bandai Namco", "BANDAI NAMCO Entertainment", "Bandai Namco Entertainment Inc."},
		"Square Enix":                    {"SQUARE ENIX", "Square Enix Co., Ltd."},
		"Capcom":                         {"CAPCOM", "Capcom Co., Ltd."},
		"Ubisoft":                        {"UBISOFT", "Ubisoft Entertainment"},
		"Electronic Arts":                {"EA", "EA Sports", "Electronic Arts Inc."},
		"Sony Interactive Entertainment": {"SIE", "Sony Interactive Entertainment LLC", "PlayStation Studios"},
		"Activision":                     {"Activision Publishing", "Activision Blizzard"},
		"Warner Bros":                    {"Warner Bros.", "Warner Bros. Games", "WB Games"},
		"SEGA":                           {"Sega", "SEGA Corporation"},
		"Bethesda":                       {"Bethesda Softworks", "Bethesda Game Studios"},
		"Take-Two Interactive":           {"Take-Two", "2K Games", "2K"},
		"Rockstar Games":                 {"Rockstar", "Rockstar North"},
		"Microids":                       {"Microïds", "Microids SA"},
		"Team17":                         {"Team17 Digital", "Team17 Digital Limited"},
		"Devolver Digital":               {"Devolver", "Devolver Digital Inc."},
	}
}

// StripSuffix trims the name and removes common corporate suffixes.
func StripSuffix(name string) string {
	name = strings.TrimSpace(name)
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			name = strings.TrimSpace(strings.TrimSuffix(name, s))
		}
	}
	return name
}

// Option configures a Normalizer.
type Option func(*Normalizer) error

// WithThreshold sets the similarity threshold, in (0, 1].
func WithThreshold(t float64) Option {
	return func(n *Normalizer) error {
		if t <= 0 || t > 1 {
			return errors.NewValidationError("threshold", t, "must be in (0, 1]")
		}
		n.threshold = t
		return nil
	}
}

// WithCorrections replaces the canonical-name table.
func WithCorrections(c map[string][]string) Option {
	return func(n *Normalizer) error {
		n.corrections = reverse(c)
		return nil
	}
}

// Normalizer rewrites publisher names.
type Normalizer struct {
	threshold   float64
	corrections map[string]string
}

// New creates a Normalizer with the default threshold and corrections.
func New(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{
		threshold:   DefaultThreshold,
		corrections: reverse(DefaultCorrections()),
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func reverse(c map[string][]string) map[string]string {
	out := make(map[string]string)
	for canonical, variants := range c {
		for _, v := range variants {
			out[v] = canonical
			out[StripSuffix(v)] = canonical
		}
	}
	return out
}

// Clean strips suffixes and applies the corrections table.
func (n *Normalizer) Clean(name string) string {
	name = StripSuffix(name)
	if canonical, ok := n.corrections[name]; ok {
		return canonical
	}
	return name
}

// Stats describes a normalisation pass.
type Stats struct {
	Original   int `json:"original" yaml:"original"`
	Normalized int `json:"normalized" yaml:"normalized"`
	Merged     int `json:"merged" yaml:"merged"`
}

// Mapping returns, for every distinct input name, its normalised form.
// Cleaned names are ranked by frequency (ties by name); each name absorbs
// every lower-ranked, not yet absorbed name whose case-insensitive
// similarity reaches the threshold.
func (n *Normalizer) Mapping(names []string) (map[string]string, int) {
	cleaned := make(map[string]string)
	counts := make(map[string]int)
	for _, name := range names {
		c, ok := cleaned[name]
		if !ok {
			c = n.Clean(name)
			cleaned[name] = c
		}
		counts[c]++
	}

	ranked := make([]string, 0, len(counts))
	for c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	merged := make(map[string]string)
	for i, a := range ranked {
		if _, done := merged[a]; done {
			continue
		}
		la := strings.ToLower(a)
		for _, b := range ranked[i+1:] {
			if _, done := merged[b]; done {
				continue
			}
			if Ratio(la, strings.ToLower(b)) >= n.threshold {
				merged[b] = a
			}
		}
	}

	out := make(map[string]string, len(cleaned))
	for raw, c := range cleaned {
		if target, ok := merged[c]; ok {
			c = target
		}
		out[raw] = c
	}
	return out, len(merged)
}

// Apply returns a copy of t with publisher names normalised. Records
// without a publisher are kept as they are.
func (n *Normalizer) Apply(ctx context.Context, t *catalogs.Table) (*catalogs.Table, Stats) {
	records := t.Records()

	var names []string
	for _, r := range records {
		if r.Publisher != nil {
			names = append(names, *r.Publisher)
		}
	}
	mapping, merged := n.Mapping(names)

	before := make(map[string]struct{})
	after := make(map[string]struct{})
	out := make([]*catalogs.Record, len(records))
	for i, r := range records {
		if r.Publisher == nil {
			out[i] = r
			continue
		}
		before[*r.Publisher] = struct{}{}
		name := mapping[*r.Publisher]
		after[name] = struct{}{}
		if name == *r.Publisher {
			out[i] = r
			continue
		}
		cp := *r
		cp.Publisher = ptr.To(name)
		out[i] = &cp
	}

	stats := Stats{Original: len(before), Normalized: len(after), Merged: merged}
	logging.FromContext(ctx).Info().
		Int("original", stats.Original).
		Int("normalized", stats.Normalized).
		Int("merged", stats.Merged).
		Msg("Normalized publishers")
	return catalogs.NewTable(out), stats
}
