// Package authority records which source answers which record field, and
// in what order sources are consulted when several can.
package authority

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentstation/storecat/pkg/sources"
)

// Authority determines the source order for each record field.
type Authority interface {
	// Find returns the candidates for a field, highest priority first
	Find(field string) []Field

	// List returns every configured field authority
	List() []Field
}

// Field ties a record field to one source key with a priority.
type Field struct {
	Name     string     `json:"name" yaml:"name"`         // record column, e.g. "publisher"
	Source   sources.ID `json:"source" yaml:"source"`     // source consulted
	Path     string     `json:"path" yaml:"path"`         // dotted path inside the source
	Priority int        `json:"priority" yaml:"priority"` // higher is consulted first
}

type authorities struct {
	fields []Field
}

// New creates an Authority with the default source order.
func New() Authority {
	return &authorities{fields: defaultFields()}
}

// NewFromFields creates an Authority from explicit entries. Entries for
// a field not present fall back to the defaults.
func NewFromFields(fields []Field) Authority {
	merged := slices.Clone(fields)
	overridden := make(map[string]bool, len(fields))
	for _, f := range fields {
		overridden[f.Name] = true
	}
	for _, f := range defaultFields() {
		if !overridden[f.Name] {
			merged = append(merged, f)
		}
	}
	return &authorities{fields: merged}
}

// Find returns the candidates for field ordered by descending priority.
// Entries with equal priority keep declaration order.
func (a *authorities) Find(field string) []Field {
	var matched []Field
	for _, f := range a.fields {
		if MatchesPattern(field, f.Name) {
			matched = append(matched, f)
		}
	}
	slices.SortStableFunc(matched, func(x, y Field) int {
		return y.Priority - x.Priority
	})
	return matched
}

// List returns every configured field authority.
func (a *authorities) List() []Field {
	return slices.Clone(a.fields)
}

// ByField returns the single highest priority authority for a field.
func ByField(field string, fields []Field) *Field {
	var best *Field
	for i, f := range fields {
		if !MatchesPattern(field, f.Name) {
			continue
		}
		if best == nil || f.Priority > best.Priority {
			best = &fields[i]
		}
	}
	return best
}

// MatchesPattern checks if a field name matches a pattern (supports * wildcards).
func MatchesPattern(field, pattern string) bool {
	if field == pattern {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(field, prefix)
	}
	matched, err := filepath.Match(pattern, field)
	return err == nil && matched
}

// BySource returns only the authorities answered by one source.
func BySource(fields []Field, id sources.ID) []Field {
	var filtered []Field
	for _, f := range fields {
		if f.Source == id {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
