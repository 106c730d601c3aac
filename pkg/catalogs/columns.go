package catalogs

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/constants"
)

// Kind is the logical type of a column.
type Kind int

// Column kinds.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindDate
	KindFlag
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	case KindFlag:
		return "flag"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Column describes one output column.
type Column struct {
	Name     string
	Kind     Kind
	Nullable bool
	value    func(*Record) any
}

// Value returns the column value of r. Null is an untyped nil; lists are
// []string, dates time.Time, flags and counts int.
func (c Column) Value(r *Record) any {
	return c.value(r)
}

// Format renders the column value as delimited text. Null renders empty,
// lists are comma-joined and floats use the shortest exact form.
func (c Column) Format(r *Record) string {
	return FormatValue(c.Value(r))
}

// FormatValue renders a column value as delimited text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(constants.DateLayout)
	case []string:
		return strings.Join(x, constants.ListSeparator)
	default:
		return ""
	}
}

func str(get func(*Record) string) func(*Record) any {
	return func(r *Record) any { return get(r) }
}

func nullable[T any](get func(*Record) *T) func(*Record) any {
	return func(r *Record) any { return ptr.Any(get(r)) }
}

func integer(get func(*Record) int) func(*Record) any {
	return func(r *Record) any { return get(r) }
}

func list(get func(*Record) []string) func(*Record) any {
	return func(r *Record) any {
		if l := get(r); l != nil {
			return l
		}
		return []string{}
	}
}

// columns is the output column order.
var columns = []Column{
	{"short_url_name", KindString, false, str(func(r *Record) string { return r.ShortURLName })},
	{"id_store", KindString, false, str(func(r *Record) string { return r.StoreID })},
	{"game_name", KindString, false, str(func(r *Record) string { return r.Name })},
	{"publisher", KindString, true, nullable(func(r *Record) *string { return r.Publisher })},
	{"developer", KindString, true, nullable(func(r *Record) *string { return r.Developer })},
	{"release_date", KindDate, true, nullable(func(r *Record) *time.Time { return r.ReleaseDate })},
	{"pssstore_stars_rating", KindFloat, true, nullable(func(r *Record) *float64 { return r.StarRating })},
	{"pssstore_stars_rating_count", KindInt, true, nullable(func(r *Record) *int { return r.StarRatingCount })},
	{"metacritic_critic_score", KindInt, true, nullable(func(r *Record) *int { return r.MetacriticScore })},
	{"metacritic_critic_userscore", KindInt, true, nullable(func(r *Record) *int { return r.MetacriticUserScore })},
	{"genres", KindList, false, list(func(r *Record) []string { return r.Genres })},
	{"is_ps4", KindFlag, true, nullable(func(r *Record) *int { return r.IsPS4 })},
	{"is_ps5", KindFlag, false, integer(func(r *Record) int { return r.IsPS5 })},
	{"is_indie", KindFlag, true, nullable(func(r *Record) *int { return r.IsIndie })},
	{"is_dlc", KindFlag, false, integer(func(r *Record) int { return r.IsDLC })},
	{"is_vr", KindFlag, false, integer(func(r *Record) int { return r.IsVR })},
	{"is_opti_ps5_pro", KindFlag, false, integer(func(r *Record) int { return r.IsOptimizedPS5Pro })},
	{"is_ps_exclusive", KindFlag, false, integer(func(r *Record) int { return r.IsExclusive })},
	{"series_count", KindInt, false, integer(func(r *Record) int { return r.SeriesCount })},
	{"packs_deluxe_count", KindInt, false, integer(func(r *Record) int { return r.PacksDeluxeCount })},
	{"has_microtransactions", KindFlag, false, integer(func(r *Record) int { return r.HasMicrotransactions })},
	{"dlcs_count", KindInt, false, integer(func(r *Record) int { return r.DLCsCount })},
	{"trophies_count", KindInt, true, nullable(func(r *Record) *int { return r.TrophiesCount })},
	{"has_local_multiplayer", KindFlag, false, integer(func(r *Record) int { return r.HasLocalMultiplayer })},
	{"local_multiplayer_max_players", KindInt, true, nullable(func(r *Record) *int { return r.LocalMultiplayerMaxPlayers })},
	{"has_online_multiplayer", KindFlag, false, integer(func(r *Record) int { return r.HasOnlineMultiplayer })},
	{"online_multiplayer_max_players", KindInt, true, nullable(func(r *Record) *int { return r.OnlineMultiplayerMaxPlayers })},
	{"is_online_only", KindFlag, false, integer(func(r *Record) int { return r.IsOnlineOnly })},
	{"difficulty", KindInt, true, nullable(func(r *Record) *int { return r.Difficulty })},
	{"download_size_ps4", KindInt, true, nullable(func(r *Record) *int { return r.DownloadSizePS4 })},
	{"download_size_ps5", KindInt, true, nullable(func(r *Record) *int { return r.DownloadSizePS5 })},
	{"hours_main_story", KindInt, true, nullable(func(r *Record) *int { return r.HoursMainStory })},
	{"hours_completionist", KindInt, true, nullable(func(r *Record) *int { return r.HoursCompletionist })},
	{"pegi_rating", KindInt, true, nullable(func(r *Record) *int { return r.PEGIRating })},
	{"esrb_rating", KindString, true, nullable(func(r *Record) *string { return r.ESRBRating })},
	{"rating_descriptions", KindList, false, list(func(r *Record) []string { return r.RatingDescriptions })},
	{"voice_languages", KindList, false, list(func(r *Record) []string { return r.VoiceLanguages })},
	{"subtitle_languages", KindList, false, list(func(r *Record) []string { return r.SubtitleLanguages })},
	{"additional_features_tags", KindList, false, list(func(r *Record) []string { return r.FeatureTags })},
	{"base_price", KindFloat, true, nullable(func(r *Record) *float64 { return r.BasePrice })},
	{"lowest_price", KindFloat, false, func(r *Record) any { return r.LowestPrice }},
	{"days_to_first_price_record", KindInt, true, nullable(func(r *Record) *int { return r.DaysToFirstPriceRecord })},
	{"days_to_10_percent_discount", KindInt, true, nullable(func(r *Record) *int { return r.DaysToDiscount10 })},
	{"days_to_25_percent_discount", KindInt, true, nullable(func(r *Record) *int { return r.DaysToDiscount25 })},
	{"days_to_50_percent_discount", KindInt, true, nullable(func(r *Record) *int { return r.DaysToDiscount50 })},
	{"days_to_75_percent_discount", KindInt, true, nullable(func(r *Record) *int { return r.DaysToDiscount75 })},
}

// Columns returns the output columns in order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ColumnByName finds a column.
func ColumnByName(name string) (Column, bool) {
	for _, c := range columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Headers returns the column names in order.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}

// Row renders every column of r as text.
func Row(r *Record) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Format(r)
	}
	return out
}

// Map returns the record as column name to value, nulls included. Dates
// are rendered as calendar-date strings.
func Map(r *Record) map[string]any {
	out := make(map[string]any, len(columns))
	for _, c := range columns {
		v := c.Value(r)
		if d, ok := v.(time.Time); ok {
			v = d.Format(constants.DateLayout)
		}
		out[c.Name] = v
	}
	return out
}
