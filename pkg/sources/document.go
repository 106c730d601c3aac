package sources

import (
	"sort"
	"strconv"
	"strings"
)

// requestKey is the document entry holding the retrieval query tag.
const requestKey = "Request"

// Document is one product as captured in a snapshot: up to three source
// sub-documents plus the request tag. A Document is never mutated after
// construction and is safe for concurrent reads.
type Document struct {
	Key      string
	Request  string
	Category Category

	parts map[ID]any
}

// NewDocument builds a Document from its decoded snapshot value.
func NewDocument(key string, raw map[string]any) *Document {
	doc := &Document{
		Key:   key,
		parts: make(map[ID]any, 3),
	}
	if req, ok := raw[requestKey].(string); ok {
		doc.Request = req
	}
	doc.Category = CategoryOf(doc.Request)
	for _, id := range IDs() {
		if part, ok := raw[id.String()]; ok && part != nil {
			doc.parts[id] = part
		}
	}
	return doc
}

// Has reports whether the source sub-document is present.
func (d *Document) Has(id ID) bool {
	_, ok := d.parts[id]
	return ok
}

// Part returns the source sub-document when it is an object.
func (d *Document) Part(id ID) (map[string]any, bool) {
	m, ok := d.parts[id].(map[string]any)
	return m, ok
}

// Sources lists the present sources in snapshot order.
func (d *Document) Sources() []ID {
	var ids []ID
	for _, id := range IDs() {
		if d.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Lookup walks a dotted path inside one source. Object keys are matched
// exactly and numeric segments index into arrays, so "Notices.0" is the
// first notice group. A JSON null anywhere along the path counts as
// absent. Lookup never panics on wrongly shaped data.
func (d *Document) Lookup(id ID, path string) (any, bool) {
	cur, ok := d.parts[id]
	if !ok {
		return nil, false
	}
	if path == "" {
		return cur, cur != nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			cur, ok = node[seg]
			if !ok {
				return nil, false
			}
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Keys returns the top-level keys of a source, sorted.
func (d *Document) Keys(id ID) []string {
	part, ok := d.Part(id)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(part))
	for k := range part {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
