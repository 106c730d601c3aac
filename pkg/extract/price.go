package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/history"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

// Tracker price markers.
const (
	priceFree      = "FREE"
	priceNA        = "N/A"
	priceNotFound  = "NOT_FOUND"
	currencySymbol = "€"

	// trackerNotListed is the tracker error code for products it does
	// not price.
	trackerNotListed = 3
)

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// ParsePrice parses a tracker price label. "FREE" and "N/A" are zero;
// an empty label, "NOT_FOUND", a negative or unparsable amount have no
// value.
func ParsePrice(label string) resolver.Value[float64] {
	s := strings.TrimSpace(strings.ReplaceAll(label, currencySymbol, ""))
	switch s {
	case "", priceNotFound:
		return resolver.None[float64]()
	case priceFree, priceNA:
		return resolver.Some(0.0)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return resolver.None[float64]()
	}
	f, _ := d.Round(2).Float64()
	if f < 0 {
		return resolver.None[float64]()
	}
	return resolver.Some(f)
}

// dealsPeak is the highest price in the aggregator's raw history.
func dealsPeak(doc *sources.Document) float64 {
	raw, ok := doc.Lookup(sources.Deals, "SalesHistory")
	if !ok {
		return 0
	}
	series, ok := raw.([]any)
	if !ok {
		return 0
	}
	return history.PeakPrice(series)
}

// basePrice resolves the list price. Products the tracker does not list
// take the aggregator's history peak. A price above ceiling is replaced
// by that peak when one exists.
func basePrice(doc *sources.Document, a authority.Authority, ceiling float64) resolver.Value[float64] {
	if code, ok := doc.Lookup(sources.Tracker, "error"); ok {
		if n, isNum := code.(float64); isNum && n == trackerNotListed {
			if peak := dealsPeak(doc); peak > 0 {
				return resolver.Some(round2(peak))
			}
			return resolver.None[float64]()
		}
	}

	price := resolver.First(doc, resolver.Candidates(a.Find(authority.BasePrice), toPrice, nil)...)
	if p, ok := price.Get(); ok && p > ceiling {
		if peak := dealsPeak(doc); peak > 0 {
			return resolver.Some(round2(peak))
		}
	}
	return price
}

// toPrice converts a tracker price label.
func toPrice(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, errNotText
	}
	p, ok := ParsePrice(s).Get()
	if !ok {
		return 0, errNoPrice
	}
	return p, nil
}
