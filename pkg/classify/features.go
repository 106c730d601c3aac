package classify

import "strings"

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}

// excludedFeatures duplicate dedicated multiplayer columns of the record.
var excludedFeatures = newSet(
	"Single-player",
	"Online multiplayer",
	"Local multiplayer",
)

// IsFeatureTag reports whether tag is on the descriptive allow-list.
func IsFeatureTag(tag string) bool {
	return featureTags.has(tag)
}

// FeatureTags returns the aggregator's structured features, minus the
// multiplayer labels, followed by allow-listed free-text tags. Both
// inputs are comma-separated strings; anything else is ignored. The
// result holds no duplicates and no empty entries.
func FeatureTags(features, tags any) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}

	if raw, ok := features.(string); ok {
		for _, f := range strings.Split(raw, ",") {
			if !excludedFeatures.has(f) {
				add(f)
			}
		}
	}
	if raw, ok := tags.(string); ok {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if featureTags.has(tag) {
				add(tag)
			}
		}
	}
	return out
}
