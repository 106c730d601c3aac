package catalogs

import "slices"

// Table is the ordered collection of surviving records.
type Table struct {
	records []*Record
}

// NewTable wraps records in a Table. The slice is copied.
func NewTable(records []*Record) *Table {
	return &Table{records: slices.Clone(records)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the rows in table order.
func (t *Table) Records() []*Record {
	return slices.Clone(t.records)
}

// Headers returns the column names.
func (t *Table) Headers() []string {
	return Headers()
}

// Rows renders every record as text cells.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, r := range t.records {
		rows[i] = Row(r)
	}
	return rows
}

// Find returns the record with the given short URL name.
func (t *Table) Find(shortURLName string) (*Record, bool) {
	for _, r := range t.records {
		if r.ShortURLName == shortURLName {
			return r, true
		}
	}
	return nil, false
}

// Each calls fn for every record until fn returns false.
func (t *Table) Each(fn func(*Record) bool) {
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}
