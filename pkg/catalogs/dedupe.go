package catalogs

import (
	"cmp"
	"slices"
)

// KeyFunc extracts a grouping or ordering key from a record.
type KeyFunc func(*Record) string

// ByStoreID groups by store identifier.
func ByStoreID(r *Record) string { return r.StoreID }

// ByName groups by product name.
func ByName(r *Record) string { return r.Name }

// ByShortURLName orders by snapshot document key.
func ByShortURLName(r *Record) string { return r.ShortURLName }

// DedupeStats counts the rows removed by each pass.
type DedupeStats struct {
	ByStoreID int `json:"by_store_id" yaml:"by_store_id"`
	ByName    int `json:"by_name" yaml:"by_name"`
	EmptyKey  int `json:"empty_key" yaml:"empty_key"`
}

// Total returns the number of removed rows.
func (s DedupeStats) Total() int {
	return s.ByStoreID + s.ByName + s.EmptyKey
}

// DedupeBy keeps one record per key: the one with the fewest null
// columns, then the smallest tie-break key, then the earliest input
// position. Records with an empty key are dropped. The result is ordered
// by key. It returns the kept records, the number of duplicates removed
// and the number of empty-key records dropped.
func DedupeBy(records []*Record, key, tieBreak KeyFunc) ([]*Record, int, int) {
	type row struct {
		rec     *Record
		key     string
		missing int
		tie     string
		pos     int
	}

	rows := make([]row, 0, len(records))
	empty := 0
	for i, r := range records {
		k := key(r)
		if k == "" {
			empty++
			continue
		}
		tie := ""
		if tieBreak != nil {
			tie = tieBreak(r)
		}
		rows = append(rows, row{rec: r, key: k, missing: r.MissingCount(), tie: tie, pos: i})
	}

	slices.SortFunc(rows, func(a, b row) int {
		return cmp.Or(
			cmp.Compare(a.key, b.key),
			cmp.Compare(a.missing, b.missing),
			cmp.Compare(a.tie, b.tie),
			cmp.Compare(a.pos, b.pos),
		)
	})

	kept := make([]*Record, 0, len(rows))
	for i, r := range rows {
		if i > 0 && rows[i-1].key == r.key {
			continue
		}
		kept = append(kept, r.rec)
	}
	return kept, len(rows) - len(kept), empty
}

// Dedupe runs the store-identifier pass followed by the product-name
// pass. Ties in the first pass go to the smaller document key, ties in
// the second to the smaller store identifier. Running Dedupe on its own
// output returns the same records in the same order.
func Dedupe(records []*Record) ([]*Record, DedupeStats) {
	var stats DedupeStats

	out, dup, empty := DedupeBy(records, ByStoreID, ByShortURLName)
	stats.ByStoreID = dup
	stats.EmptyKey += empty

	out, dup, empty = DedupeBy(out, ByName, ByStoreID)
	stats.ByName = dup
	stats.EmptyKey += empty

	return out, stats
}
