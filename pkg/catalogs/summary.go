package catalogs

// ColumnSummary profiles one column of a table.
type ColumnSummary struct {
	Column   string `json:"column" yaml:"column"`
	Kind     string `json:"kind" yaml:"kind"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
	NonNull  int    `json:"non_null" yaml:"non_null"`
	Null     int    `json:"null" yaml:"null"`
	Unique   int    `json:"unique" yaml:"unique"`
	Sample   string `json:"sample" yaml:"sample"`
}

// Summarize profiles every column of the table. Unique counts compare
// the rendered text of non-null values; the sample is the first non-null
// value in table order.
func (t *Table) Summarize() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(columns))
	for _, c := range columns {
		s := ColumnSummary{Column: c.Name, Kind: c.Kind.String(), Nullable: c.Nullable}
		seen := make(map[string]struct{})
		for _, r := range t.records {
			v := c.Value(r)
			if v == nil {
				s.Null++
				continue
			}
			s.NonNull++
			text := FormatValue(v)
			if s.NonNull == 1 {
				s.Sample = text
			}
			seen[text] = struct{}{}
		}
		s.Unique = len(seen)
		out = append(out, s)
	}
	return out
}

// PriceSegment is a closed base-price band.
type PriceSegment struct {
	Label string  `json:"label" yaml:"label"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Count int     `json:"count" yaml:"count"`
}

// DefaultPriceSegments are the base-price bands used in reports.
func DefaultPriceSegments() []PriceSegment {
	return []PriceSegment{
		{Label: "0 - 7.99", Min: 0, Max: 7.99},
		{Label: "8 - 14.99", Min: 8, Max: 14.99},
		{Label: "15 - 24.99", Min: 15, Max: 24.99},
		{Label: "25 - 39.99", Min: 25, Max: 39.99},
		{Label: "40+", Min: 40, Max: 150},
	}
}

// PriceDistribution counts records per base-price segment. Prices that
// fall between or outside the bands, and null prices, are not counted.
func (t *Table) PriceDistribution(segments []PriceSegment) []PriceSegment {
	out := make([]PriceSegment, len(segments))
	copy(out, segments)
	for _, r := range t.records {
		if r.BasePrice == nil {
			continue
		}
		for i := range out {
			if p := *r.BasePrice; p >= out[i].Min && p <= out[i].Max {
				out[i].Count++
				break
			}
		}
	}
	return out
}
