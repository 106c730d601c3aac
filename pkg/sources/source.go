// Package sources defines the three upstream catalogs a product document
// is assembled from and the Document type that bundles them.
//
// Each source describes the same product independently and partially:
//
//   - Storefront: the official store listing (identifiers, notices, star ratings)
//   - Deals: the deals aggregator (tags, features, ratings, sales history)
//   - Tracker: the price tracker (base price, trophies, sizes, sales history)
//
// Any of the three may be absent or malformed for a given product.
package sources

// ID represents the identifier of a data source. The value is the key the
// source sub-document is stored under in a snapshot.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Known sources.
const (
	Storefront ID = "PSStore"
	Deals      ID = "GGDeals"
	Tracker    ID = "PlatPrices"
)

// IDs returns all sources in snapshot order.
func IDs() []ID {
	return []ID{Storefront, Deals, Tracker}
}

// IsValid reports whether id names a known source.
func (id ID) IsValid() bool {
	switch id {
	case Storefront, Deals, Tracker:
		return true
	}
	return false
}

// Role returns a short description of what the source is.
func (id ID) Role() string {
	switch id {
	case Storefront:
		return "storefront listing"
	case Deals:
		return "deals aggregator"
	case Tracker:
		return "price tracker"
	default:
		return "unknown"
	}
}

// Category classifies a document by the retrieval query that produced it.
type Category int

// Request categories.
const (
	Uncategorized Category = iota
	NewGen
	PrevGen
	AddOn
)

// Request values as stored in snapshots.
const (
	RequestNewGen  = "games_ps5"
	RequestPrevGen = "games_ps4"
	RequestAddOn   = "dlcs_ps5"
)

// CategoryOf maps a snapshot request tag to its category.
func CategoryOf(request string) Category {
	switch request {
	case RequestNewGen:
		return NewGen
	case RequestPrevGen:
		return PrevGen
	case RequestAddOn:
		return AddOn
	default:
		return Uncategorized
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case NewGen:
		return "new-gen"
	case PrevGen:
		return "prev-gen"
	case AddOn:
		return "add-on"
	default:
		return "uncategorized"
	}
}

// Categorized reports whether recency and price-floor rules apply.
func (c Category) Categorized() bool {
	return c != Uncategorized
}
