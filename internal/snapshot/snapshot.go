// Package snapshot loads the product snapshot a run reconciles.
//
// A snapshot is a JSON array of objects, each mapping a product key to its
// document:
//
//	[
//	  {"some-game": {"Request": "games_ps5", "PSStore": {...}, "GGDeals": {...}, "PlatPrices": {...}}},
//	  {"other-game": {...}, "third-game": {...}}
//	]
//
// Loading is fail-fast: a snapshot that cannot be read or decoded produces
// an error and no documents. A single document that is not an object is
// kept as an empty document, which the extractor later rejects.
package snapshot

import (
	"bytes"
	"context"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/logging"
	"github.com/agentstation/storecat/pkg/sources"
)

// Snapshot is a decoded snapshot in file order.
type Snapshot struct {
	Path      string
	Documents []*sources.Document

	// Malformed lists the keys whose document was not a JSON object.
	Malformed []string
}

// Len returns the number of documents.
func (s *Snapshot) Len() int {
	return len(s.Documents)
}

// Find returns the first document stored under key.
func (s *Snapshot) Find(key string) (*sources.Document, error) {
	for _, doc := range s.Documents {
		if doc.Key == key {
			return doc, nil
		}
	}
	return nil, errors.NewNotFoundError("document", key)
}

// Categories counts documents per request category.
func (s *Snapshot) Categories() map[sources.Category]int {
	out := make(map[sources.Category]int)
	for _, doc := range s.Documents {
		out[doc.Category]++
	}
	return out
}

// Load reads and decodes the snapshot at path. A path of "-" reads stdin.
func Load(ctx context.Context, path string) (*Snapshot, error) {
	logger := logging.FromContext(ctx)

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	snap, err := Decode(data)
	if err != nil {
		if pe := (*errors.ParseError)(nil); errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	snap.Path = path

	if len(snap.Malformed) > 0 {
		logger.Warn().
			Strs("documents", snap.Malformed).
			Msg("Snapshot documents are not objects")
	}
	logger.Debug().
		Str("path", path).
		Int("documents", snap.Len()).
		Int("bytes", len(data)).
		Msg("Loaded snapshot")
	return snap, nil
}

// Decode decodes snapshot content.
func Decode(data []byte) (*Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParseError("json", "", errors.ErrEmptySnapshot.Error(), errors.ErrEmptySnapshot)
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, parseError(err)
	}

	snap := &Snapshot{}
	for _, entry := range entries {
		keys := make([]string, 0, len(entry))
		for k := range entry {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			var raw map[string]any
			if err := json.Unmarshal(entry[key], &raw); err != nil {
				snap.Malformed = append(snap.Malformed, key)
				raw = nil
			}
			if raw == nil {
				raw = map[string]any{}
			}
			snap.Documents = append(snap.Documents, sources.NewDocument(key, raw))
		}
	}
	return snap, nil
}

func parseError(err error) error {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		pe := errors.NewParseError("json", "", err.Error(), err)
		pe.Offset = syntax.Offset
		return pe
	}
	return errors.WrapParse("json", "", err)
}
