package authority

import "github.com/agentstation/storecat/pkg/sources"

// Record fields resolved through the authority table.
const (
	StoreID         = "id_store"
	Name            = "game_name"
	Publisher       = "publisher"
	Developer       = "developer"
	ReleaseDate     = "release_date"
	IsPS4           = "is_ps4"
	IsIndie         = "is_indie"
	StarRating      = "pssstore_stars_rating"
	StarRatingCount = "pssstore_stars_rating_count"
	SeriesCount     = "series_count"
	PacksCount      = "packs_deluxe_count"
	DLCsCount       = "dlcs_count"
	CriticScore     = "metacritic_critic_score"
	UserScore       = "metacritic_critic_userscore"
	PEGIRating      = "pegi_rating"
	ESRBRating      = "esrb_rating"
	TrackerRating   = "tracker_rating"
	BasePrice       = "base_price"
	SalesHistory    = "sales_history"
)

func defaultFields() []Field {
	return []Field{
		// Identity: the storefront is authoritative, the tracker mirrors it
		{Name: StoreID, Source: sources.Storefront, Path: "ID", Priority: 100},
		{Name: StoreID, Source: sources.Storefront, Path: "Sku", Priority: 90},
		{Name: StoreID, Source: sources.Tracker, Path: "PSNID", Priority: 80},

		{Name: Name, Source: sources.Storefront, Path: "Name", Priority: 100},
		{Name: Name, Source: sources.Deals, Path: "GameName", Priority: 90},
		{Name: Name, Source: sources.Tracker, Path: "GameName", Priority: 80},

		{Name: Publisher, Source: sources.Storefront, Path: "Publisher", Priority: 100},
		{Name: Publisher, Source: sources.Tracker, Path: "Publisher", Priority: 90},
		{Name: Publisher, Source: sources.Deals, Path: "Publisher", Priority: 80},

		// Developer credits are more complete on the aggregator
		{Name: Developer, Source: sources.Deals, Path: "Developer", Priority: 100},
		{Name: Developer, Source: sources.Tracker, Path: "Developer", Priority: 90},
		{Name: Developer, Source: sources.Storefront, Path: "Developer", Priority: 80},

		{Name: ReleaseDate, Source: sources.Storefront, Path: "ReleaseDate", Priority: 100},
		{Name: ReleaseDate, Source: sources.Tracker, Path: "ReleaseDate", Priority: 90},

		{Name: IsPS4, Source: sources.Storefront, Path: "IsPS4", Priority: 100},
		{Name: IsPS4, Source: sources.Tracker, Path: "IsPS4", Priority: 90},
		{Name: IsPS4, Source: sources.Deals, Path: "IsPS4", Priority: 80},

		{Name: IsIndie, Source: sources.Deals, Path: "IsIndie", Priority: 100},

		{Name: StarRating, Source: sources.Storefront, Path: "StarRatingAverage", Priority: 100},
		{Name: StarRatingCount, Source: sources.Storefront, Path: "StarRatingTotalCount", Priority: 100},

		{Name: SeriesCount, Source: sources.Deals, Path: "SeriesCount", Priority: 100},
		{Name: PacksCount, Source: sources.Deals, Path: "EditionPackCount", Priority: 100},
		{Name: DLCsCount, Source: sources.Deals, Path: "DLCsCount", Priority: 100},

		{Name: CriticScore, Source: sources.Deals, Path: "MetacriticScore.score", Priority: 100},
		{Name: UserScore, Source: sources.Deals, Path: "MetacriticScore.user_score", Priority: 100},

		// Ratings: aggregator values first, tracker free text is mapped afterwards
		{Name: PEGIRating, Source: sources.Deals, Path: "RatingPEGI", Priority: 100},
		{Name: ESRBRating, Source: sources.Deals, Path: "RatingESRB", Priority: 100},
		{Name: TrackerRating, Source: sources.Tracker, Path: "Rating", Priority: 100},

		{Name: BasePrice, Source: sources.Tracker, Path: "formattedBasePrice", Priority: 100},

		// Merge order: later entries overwrite earlier ones on the same date
		{Name: SalesHistory, Source: sources.Deals, Path: "SalesHistory", Priority: 100},
		{Name: SalesHistory, Source: sources.Tracker, Path: "SalesHistory", Priority: 90},
	}
}
