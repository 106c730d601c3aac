package extract

import (
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/storecat/pkg/errors"
)

// Playtime measures a rule can refer to.
const (
	MeasureMainStory     = "main_story"
	MeasureMainPlusExtra = "main_plus_extra"
	MeasureCompletionist = "completionist"
	MeasureAllStyles     = "all_styles"
	MeasureTrackerLow    = "tracker_low"
	MeasureTrackerHigh   = "tracker_high"
)

var measures = map[string]bool{
	MeasureMainStory:     true,
	MeasureMainPlusExtra: true,
	MeasureCompletionist: true,
	MeasureAllStyles:     true,
	MeasureTrackerLow:    true,
	MeasureTrackerHigh:   true,
}

// KeywordRule sets a flag when any of its keywords is found.
//
// Fragments are matched as substrings of each storefront notice. Notices,
// DealsInfo, DealsTags, DealsFeatures and DealsDescriptors use "contains"
// semantics on the raw value: substring for text, element equality for
// lists.
type KeywordRule struct {
	Fragments        []string `yaml:"notice_fragments,omitempty"`
	Notices          []string `yaml:"notices,omitempty"`
	DealsInfo        []string `yaml:"deals_info,omitempty"`
	DealsTags        []string `yaml:"deals_tags,omitempty"`
	DealsFeatures    []string `yaml:"deals_features,omitempty"`
	DealsDescriptors []string `yaml:"deals_descriptors,omitempty"`
}

// PlaytimeRule yields Use when the When measure is present. An empty
// When means the rule fires when Use itself is present.
type PlaytimeRule struct {
	When string `yaml:"when,omitempty"`
	Use  string `yaml:"use"`
}

// PlaytimeRules are tried in order; the first rule that fires decides.
type PlaytimeRules struct {
	Low  []PlaytimeRule `yaml:"low"`
	High []PlaytimeRule `yaml:"high"`
}

// Heuristics holds the keyword lists, notice patterns and playtime rules
// used for the flags that no source states directly.
type Heuristics struct {
	VR                KeywordRule `yaml:"vr"`
	PS5Pro            KeywordRule `yaml:"ps5_pro"`
	Exclusive         KeywordRule `yaml:"exclusive"`
	Microtransactions KeywordRule `yaml:"microtransactions"`
	OnlineOnly        KeywordRule `yaml:"online_only"`
	LocalMultiplayer  KeywordRule `yaml:"local_multiplayer"`
	Difficult         KeywordRule `yaml:"difficult"`

	// DifficultValue is the difficulty assigned from a Difficult match.
	DifficultValue int `yaml:"difficult_value"`

	// LocalPlayers and OnlinePlayers capture the player count as their
	// first group.
	LocalPlayers  []string `yaml:"local_player_patterns"`
	OnlinePlayers []string `yaml:"online_player_patterns"`

	Playtime PlaytimeRules `yaml:"playtime"`
}

// DefaultHeuristics returns the built-in heuristics.
func DefaultHeuristics() *Heuristics {
	return &Heuristics{
		VR: KeywordRule{
			Fragments: []string{
				"Casque PS VR requis",
				"PlayStation VR2 facultatif",
				"Style de jeu VR",
				"Vibration du casque PlayStation VR2",
				"Casque PS VR activé",
			},
			DealsInfo: []string{
				"VR play style",
				"PlayStation VR2 required",
				"PS VR2 Sense controller trigger effect",
				"PlayStation VR2 optional",
				"PS VR2 Sense controllers optional",
			},
		},
		PS5Pro: KeywordRule{
			Notices:   []string{"Optimisé pour la PS5 Pro"},
			DealsInfo: []string{"PS5 Pro Enhanced"},
		},
		Exclusive: KeywordRule{
			DealsTags: []string{"PlayStation exclusive"},
		},
		Microtransactions: KeywordRule{
			Notices:          []string{"Achats intra-jeu"},
			DealsDescriptors: []string{"In-Game Purchases"},
		},
		OnlineOnly: KeywordRule{
			Notices: []string{"Jeu en ligne requis"},
		},
		LocalMultiplayer: KeywordRule{
			DealsFeatures: []string{"Local multiplayer"},
		},
		Difficult: KeywordRule{
			DealsTags: []string{"Difficult"},
		},
		DifficultValue: 8,
		LocalPlayers: []string{
			`De 1 à (\d+) joueurs?`,
		},
		OnlinePlayers: []string{
			`^(\d+) joueurs? en ligne`,
			`jusqu'à (\d+) joueurs? en ligne avec PS Plus`,
			`Prend en charge (\d+) joueurs? en ligne avec PS Plus`,
		},
		Playtime: PlaytimeRules{
			Low: []PlaytimeRule{
				{Use: MeasureMainStory},
				{Use: MeasureAllStyles},
				{Use: MeasureTrackerLow},
			},
			High: []PlaytimeRule{
				{When: MeasureMainPlusExtra, Use: MeasureMainStory},
				{Use: MeasureTrackerHigh},
				{Use: MeasureCompletionist},
			},
		},
	}
}

// LoadHeuristics reads a YAML file and overlays it on the defaults. Keys
// absent from the file keep their default value; lists are replaced as a
// whole.
func LoadHeuristics(path string) (*Heuristics, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	h, err := ParseHeuristics(data)
	if err != nil {
		return nil, errors.NewConfigError("heuristics", path, err)
	}
	return h, nil
}

// ParseHeuristics decodes YAML over the defaults and validates the result.
func ParseHeuristics(data []byte) (*Heuristics, error) {
	h := DefaultHeuristics()
	if err := yaml.UnmarshalWithOptions(data, h, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	if _, err := h.compile(); err != nil {
		return nil, err
	}
	return h, nil
}

// rules is the compiled form of Heuristics.
type rules struct {
	vrRule         KeywordRule
	ps5ProRule     KeywordRule
	exclusiveRule  KeywordRule
	microRule      KeywordRule
	onlineOnlyRule KeywordRule
	localRule      KeywordRule
	difficultRule  KeywordRule
	difficultValue int
	localPlayers   []*regexp.Regexp
	onlinePlayers  []*regexp.Regexp
	playtimeRules  PlaytimeRules
}

func (h *Heuristics) compile() (*rules, error) {
	r := &rules{
		vrRule:         h.VR.normalized(),
		ps5ProRule:     h.PS5Pro.normalized(),
		exclusiveRule:  h.Exclusive.normalized(),
		microRule:      h.Microtransactions.normalized(),
		onlineOnlyRule: h.OnlineOnly.normalized(),
		localRule:      h.LocalMultiplayer.normalized(),
		difficultRule:  h.Difficult.normalized(),
		difficultValue: h.DifficultValue,
		playtimeRules:  h.Playtime,
	}

	var err error
	if r.localPlayers, err = compilePatterns("local_player_patterns", h.LocalPlayers); err != nil {
		return nil, err
	}
	if r.onlinePlayers, err = compilePatterns("online_player_patterns", h.OnlinePlayers); err != nil {
		return nil, err
	}

	for _, set := range [][]PlaytimeRule{h.Playtime.Low, h.Playtime.High} {
		for _, rule := range set {
			if !measures[rule.Use] {
				return nil, errors.NewConfigError("heuristics", "unknown playtime measure "+rule.Use, nil)
			}
			if rule.When != "" && !measures[rule.When] {
				return nil, errors.NewConfigError("heuristics", "unknown playtime measure "+rule.When, nil)
			}
		}
	}
	return r, nil
}

func compilePatterns(key string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(norm.NFC.String(p))
		if err != nil {
			return nil, errors.NewConfigError("heuristics", key, err)
		}
		if re.NumSubexp() < 1 {
			return nil, errors.NewConfigError("heuristics", key+": pattern needs a capture group: "+p, nil)
		}
		out = append(out, re)
	}
	return out, nil
}

func (k KeywordRule) normalized() KeywordRule {
	return KeywordRule{
		Fragments:        nfcAll(k.Fragments),
		Notices:          nfcAll(k.Notices),
		DealsInfo:        nfcAll(k.DealsInfo),
		DealsTags:        nfcAll(k.DealsTags),
		DealsFeatures:    nfcAll(k.DealsFeatures),
		DealsDescriptors: nfcAll(k.DealsDescriptors),
	}
}

func nfcAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = norm.NFC.String(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
