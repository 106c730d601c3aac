// Package extract turns one raw product document into a normalized
// record, or a rejection explaining why the document was dropped.
//
// Extraction runs the eligibility gates first, in a fixed order, and
// stops at the first one that fails:
//
//  1. store identifier and product name present
//  2. release date not after the snapshot cutoff
//  3. categorised documents have a release date
//  4. categorised documents are released on or after the release cutoff
//  5. categorised documents have a base price that meets the category
//     floor; uncategorised ones may have none
//  6. at least one genre
//  7. a PEGI or an ESRB rating
//  8. no 50% or 75% discount within two days of release
//  9. no implausible gap before the first price record
//  10. a lowest price exists
//
// Surviving documents get every remaining column resolved and the record
// is assembled in a single step. An Extractor is safe for concurrent use.
package extract

import (
	"fmt"
	"time"

	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/catalogs"
	"github.com/agentstation/storecat/pkg/constants"
	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/history"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

var (
	errAbsent  = errors.New("absent")
	errNotText = errors.New("not text")
	errNoPrice = errors.New("no price")
)

// Extractor builds records from documents.
type Extractor struct {
	opts  *options
	rules *rules
}

// New creates an Extractor.
func New(opts ...Option) (*Extractor, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	r, err := o.heuristics.compile()
	if err != nil {
		return nil, err
	}
	return &Extractor{opts: o, rules: r}, nil
}

// Outcome is the result of extracting one document: exactly one of
// Record and Rejection is set. History is the merged price series when
// extraction got far enough to build it.
type Outcome struct {
	Document  string
	Record    *catalogs.Record
	Rejection *Rejection
	History   history.History
}

// Accepted reports whether the document produced a record.
func (o Outcome) Accepted() bool {
	return o.Record != nil
}

// Floor returns the base-price floor of a category, or 0 for
// uncategorised documents.
func (e *Extractor) Floor(c sources.Category) float64 {
	return e.opts.floors[c]
}

func reject(doc *sources.Document, reason Reason, format string, args ...any) Outcome {
	return Outcome{
		Document:  doc.Key,
		Rejection: &Rejection{Document: doc.Key, Reason: reason, Detail: fmt.Sprintf(format, args...)},
	}
}

// Extract runs the gates and builds the record. A panic while reading
// the document is recovered and reported as an extraction failure.
func (e *Extractor) Extract(doc *sources.Document) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.NewExtractionError(doc.Key, r)
			out = reject(doc, ReasonExtractionFailure, "%v", err)
			out.Rejection.Err = err
		}
	}()
	return e.extract(doc)
}

func (e *Extractor) extract(doc *sources.Document) Outcome {
	a := e.opts.authorities

	id, idOK := resolver.Resolve(doc, a, authority.StoreID, resolver.ToString, resolver.NonEmpty).Get()
	name, nameOK := resolver.Resolve(doc, a, authority.Name, resolver.ToString, resolver.NonEmpty).Get()
	if !idOK || !nameOK {
		return reject(doc, ReasonMissingIdentity, "id=%t name=%t", idOK, nameOK)
	}

	release := resolver.Resolve(doc, a, authority.ReleaseDate, resolver.ToDate, nil)
	releaseDate, hasRelease := release.Get()
	if hasRelease && releaseDate.After(e.opts.snapshotCutoff) {
		return reject(doc, ReasonFutureRelease, "%s", releaseDate.Format(constants.DateLayout))
	}
	if doc.Category.Categorized() {
		if !hasRelease {
			return reject(doc, ReasonMissingReleaseDate, "%s", doc.Category)
		}
		if releaseDate.Before(e.opts.releaseCutoff) {
			return reject(doc, ReasonReleaseBeforeCutoff, "%s", releaseDate.Format(constants.DateLayout))
		}
	}

	var basePtr *float64
	base, hasBase := basePrice(doc, a, e.opts.ceiling).Get()
	if hasBase {
		basePtr = ptr.To(base)
	}
	if doc.Category.Categorized() {
		if !hasBase {
			return reject(doc, ReasonMissingBasePrice, "%s", doc.Category)
		}
		if floor := e.opts.floors[doc.Category]; base < floor {
			return reject(doc, ReasonBelowPriceFloor, "%.2f < %.2f", base, floor)
		}
	}

	genreList := genres(doc)
	if len(genreList) == 0 {
		return reject(doc, ReasonNoGenre, "")
	}

	pegi, esrb, descriptors := ratings(doc, a)
	if pegi == nil && esrb == nil {
		return reject(doc, ReasonNoAgeRating, "")
	}

	hist := e.mergeHistory(doc)
	discounts := make([]*int, len(constants.DiscountLevels))
	for i, pct := range constants.DiscountLevels {
		if !hasBase {
			break
		}
		if d, ok := hist.DaysToDiscount(base, releaseDate, pct); ok {
			discounts[i] = ptr.To(d)
		}
	}
	for i, pct := range constants.DiscountLevels {
		if pct >= 50 && discounts[i] != nil && *discounts[i] < constants.MinDeepDiscountDays {
			return e.rejectWith(doc, hist, ReasonDiscountTiming, "%d%% after %d days", pct, *discounts[i])
		}
	}

	var firstRecord *int
	if d, ok := hist.DaysToFirstRecord(releaseDate); ok {
		firstRecord = ptr.To(d)
		premium := hasBase && base >= e.opts.premiumPrice
		if (d > constants.MaxRecordGap && !premium) || d > constants.MaxRecordGapPremium {
			return e.rejectWith(doc, hist, ReasonFirstRecordGap, "%d days, premium %t", d, premium)
		}
	}

	lowest, ok := hist.LowestPrice()
	if !ok {
		return e.rejectWith(doc, hist, ReasonNoLowestPrice, "%d entries", hist.Len())
	}

	return Outcome{
		Document: doc.Key,
		Record: e.build(doc, gated{
			id: id, name: name, release: release, genres: genreList,
			pegi: pegi, esrb: esrb, descriptors: descriptors,
			base: basePtr, lowest: lowest, firstRecord: firstRecord, discounts: discounts,
		}),
		History: hist,
	}
}

func (e *Extractor) rejectWith(doc *sources.Document, hist history.History, reason Reason, format string, args ...any) Outcome {
	out := reject(doc, reason, format, args...)
	out.History = hist
	return out
}

// mergeHistory merges the sales series in authority order; the later
// series wins a shared date.
func (e *Extractor) mergeHistory(doc *sources.Document) history.History {
	var series [][]any
	for _, f := range e.opts.authorities.Find(authority.SalesHistory) {
		raw, ok := doc.Lookup(f.Source, f.Path)
		if !ok {
			continue
		}
		if s, ok := raw.([]any); ok {
			series = append(series, s)
		}
	}
	return history.Merge(e.opts.snapshotCutoff, series...)
}

// gated holds the values the gates already resolved.
type gated struct {
	id, name    string
	release     resolver.Value[time.Time]
	genres      []string
	pegi        *int
	esrb        *string
	descriptors []string
	base        *float64
	lowest      float64
	firstRecord *int
	discounts   []*int
}

// build resolves the remaining columns and assembles the record.
func (e *Extractor) build(doc *sources.Document, g gated) *catalogs.Record {
	a := e.opts.authorities
	r := e.rules

	ps4 := isPS4(doc, a)
	ps5 := flag(doc.Category == sources.NewGen || doc.Category == sources.AddOn)
	size4, size5 := downloadSizes(doc, ps4, ps5)
	local := r.localMultiplayer(doc)
	online := r.onlineMultiplayer(doc)
	low, high := r.playtime(doc)
	critic, user := metacritic(doc, a)
	voice, subtitles := languages(doc)

	return &catalogs.Record{
		ShortURLName: doc.Key,
		StoreID:      g.id,
		Name:         g.name,
		Publisher:    resolver.Resolve(doc, a, authority.Publisher, resolver.ToString, resolver.NonEmpty).Ptr(),
		Developer:    resolver.Resolve(doc, a, authority.Developer, resolver.ToString, resolver.NonEmpty).Ptr(),
		ReleaseDate:  g.release.Ptr(),

		StarRating:          starRating(doc, a),
		StarRatingCount:     resolver.Resolve(doc, a, authority.StarRatingCount, resolver.ToInt, resolver.NonNegative[int]).Ptr(),
		MetacriticScore:     critic,
		MetacriticUserScore: user,

		Genres: g.genres,

		IsPS4:             ps4,
		IsPS5:             ps5,
		IsIndie:           isIndie(doc, a),
		IsDLC:             flag(doc.Category == sources.AddOn),
		IsVR:              r.vr(doc),
		IsOptimizedPS5Pro: flag(r.ps5ProRule.matches(doc)),
		IsExclusive:       flag(r.exclusiveRule.matches(doc)),

		SeriesCount:          count(doc, a, authority.SeriesCount),
		PacksDeluxeCount:     count(doc, a, authority.PacksCount),
		HasMicrotransactions: r.microtransactions(doc),
		DLCsCount:            count(doc, a, authority.DLCsCount),
		TrophiesCount:        trophies(doc),

		HasLocalMultiplayer:         local.Available,
		LocalMultiplayerMaxPlayers:  local.Players,
		HasOnlineMultiplayer:        online.Available,
		OnlineMultiplayerMaxPlayers: online.Players,
		IsOnlineOnly:                online.OnlineOnly,

		Difficulty:         r.difficulty(doc),
		DownloadSizePS4:    size4,
		DownloadSizePS5:    size5,
		HoursMainStory:     low,
		HoursCompletionist: high,

		PEGIRating:         g.pegi,
		ESRBRating:         g.esrb,
		RatingDescriptions: g.descriptors,
		VoiceLanguages:     voice,
		SubtitleLanguages:  subtitles,
		FeatureTags:        featureTags(doc),

		BasePrice:              g.base,
		LowestPrice:            g.lowest,
		DaysToFirstPriceRecord: g.firstRecord,
		DaysToDiscount10:       g.discounts[0],
		DaysToDiscount25:       g.discounts[1],
		DaysToDiscount50:       g.discounts[2],
		DaysToDiscount75:       g.discounts[3],
	}
}
