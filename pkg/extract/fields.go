package extract

import (
	"github.com/agentstation/storecat/internal/utils/ptr"
	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/classify"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

// isPS4 is forced for previous-generation requests, resolved for
// new-generation and add-on requests and zero otherwise.
func isPS4(doc *sources.Document, a authority.Authority) *int {
	switch doc.Category {
	case sources.PrevGen:
		return ptr.To(1)
	case sources.NewGen, sources.AddOn:
		return resolver.Resolve(doc, a, authority.IsPS4, resolver.ToInt, resolver.Binary).Ptr()
	default:
		return ptr.To(0)
	}
}

// isIndie defaults to 0 when the flag is missing or unreadable. A blank
// or out-of-range flag has no value.
func isIndie(doc *sources.Document, a authority.Authority) *int {
	for _, f := range a.Find(authority.IsIndie) {
		raw, ok := doc.Lookup(f.Source, f.Path)
		if !ok {
			continue
		}
		if s, isText := raw.(string); isText && s == "" {
			return nil
		}
		v, err := resolver.ToInt(raw)
		if err != nil {
			return ptr.To(0)
		}
		if !resolver.Binary(v) {
			return nil
		}
		return ptr.To(v)
	}
	return ptr.To(0)
}

// starRating is the storefront average rounded to two decimals.
func starRating(doc *sources.Document, a authority.Authority) *float64 {
	v, ok := resolver.Resolve(doc, a, authority.StarRating, resolver.ToFloat, resolver.NonNegative[float64]).Get()
	if !ok {
		return nil
	}
	return ptr.To(round2(v))
}

// count resolves an aggregator counter, defaulting to 0.
func count(doc *sources.Document, a authority.Authority, field string) int {
	return resolver.Resolve(doc, a, field, resolver.ToInt, nil).Or(0)
}

// trophies sums the non-negative tracker trophy counts. The total has no
// value when none of the four grades is usable.
func trophies(doc *sources.Document) *int {
	total, usable := 0, false
	for _, grade := range []string{"Bronze", "Silver", "Gold", "Platinum"} {
		n, err := lookupInt(doc, sources.Tracker, grade)
		if err != nil || n < 0 {
			continue
		}
		total += n
		usable = true
	}
	if !usable {
		return nil
	}
	return &total
}

// metacritic returns the critic score and the user score on the same
// 0-100 scale.
func metacritic(doc *sources.Document, a authority.Authority) (*int, *int) {
	critic := resolver.Resolve(doc, a, authority.CriticScore, resolver.ToInt, resolver.NonNegative[int]).Ptr()
	user := resolver.Resolve(doc, a, authority.UserScore, resolver.ToInt, resolver.NonNegative[int]).Ptr()
	if user != nil {
		user = ptr.To(*user * 10)
	}
	return critic, user
}

// microtransactions reports in-game purchases from notices, the
// aggregator currency count or the rating descriptors.
func (r *rules) microtransactions(doc *sources.Document) int {
	if n, err := lookupInt(doc, sources.Deals, pathCurrencyCount); err == nil && n > 0 {
		return 1
	}
	return flag(r.microRule.matches(doc))
}

// vr reports VR support from notices, aggregator info or the tracker flag.
func (r *rules) vr(doc *sources.Document) int {
	if r.vrRule.matches(doc) {
		return 1
	}
	n, err := lookupInt(doc, sources.Tracker, pathTrackerVR)
	return flag(err == nil && n == 1)
}

// difficulty prefers the tracker's current then former rating; both must
// be readable. A "difficult" tag yields the configured value.
func (r *rules) difficulty(doc *sources.Document) *int {
	cur, errCur := lookupInt(doc, sources.Tracker, "Difficulty")
	old, errOld := lookupInt(doc, sources.Tracker, "OldDifficulty")
	if errCur == nil && errOld == nil {
		if cur > 0 {
			return ptr.To(cur)
		}
		if old > 0 {
			return ptr.To(old)
		}
	}
	if r.difficultRule.matches(doc) {
		return ptr.To(r.difficultValue)
	}
	return nil
}

// downloadSizes reads both tracker sizes; either being unreadable voids
// both. A platform the product is known not to support reports 0.
func downloadSizes(doc *sources.Document, ps4 *int, ps5 int) (*int, *int) {
	var s4, s5 *int
	n4, err4 := lookupInt(doc, sources.Tracker, "PS4Size")
	n5, err5 := lookupInt(doc, sources.Tracker, "PS5Size")
	if err4 == nil && err5 == nil {
		if n4 > 0 {
			s4 = ptr.To(n4)
		}
		if n5 > 0 {
			s5 = ptr.To(n5)
		}
	}
	if ps4 != nil && *ps4 == 0 && s4 == nil {
		s4 = ptr.To(0)
	}
	if ps5 == 0 && s5 == nil {
		s5 = ptr.To(0)
	}
	return s4, s5
}

// playtimeMeasures collects the readable playtime measures. The tracker
// uses -1 for unknown.
func playtimeMeasures(doc *sources.Document) map[string]int {
	m := make(map[string]int, len(measures))
	for _, key := range []string{MeasureMainStory, MeasureMainPlusExtra, MeasureCompletionist, MeasureAllStyles} {
		if n, err := lookupInt(doc, sources.Deals, "HowLong."+key); err == nil {
			m[key] = n
		}
	}
	if n, err := lookupInt(doc, sources.Tracker, "HoursLow"); err == nil && n != -1 {
		m[MeasureTrackerLow] = n
	}
	if n, err := lookupInt(doc, sources.Tracker, "HoursHigh"); err == nil && n != -1 {
		m[MeasureTrackerHigh] = n
	}
	return m
}

// applyPlaytime returns the value of the first rule that fires. A rule
// fires when its When measure is present, even if Use is not.
func applyPlaytime(set []PlaytimeRule, m map[string]int) *int {
	for _, rule := range set {
		when := rule.When
		if when == "" {
			when = rule.Use
		}
		if _, ok := m[when]; !ok {
			continue
		}
		v, ok := m[rule.Use]
		if !ok || v < 0 {
			return nil
		}
		return ptr.To(v)
	}
	return nil
}

func (r *rules) playtime(doc *sources.Document) (*int, *int) {
	m := playtimeMeasures(doc)
	return applyPlaytime(r.playtimeRules.Low, m), applyPlaytime(r.playtimeRules.High, m)
}

// genres merges the structured genre flags of tracker and aggregator
// with the aggregator's tags.
func genres(doc *sources.Document) []string {
	tracker, _ := doc.Part(sources.Tracker)
	deals, _ := doc.Part(sources.Deals)
	tags, _ := doc.Lookup(sources.Deals, pathDealsTags)
	return classify.Names(classify.Genres(classify.Signals{
		TrackerFlags: tracker,
		DealsFlags:   deals,
		DealsTags:    tags,
	}))
}

// featureTags lists the aggregator features and allow-listed tags.
func featureTags(doc *sources.Document) []string {
	features, _ := doc.Lookup(sources.Deals, pathDealsFeatures)
	tags, _ := doc.Lookup(sources.Deals, pathDealsTags)
	return classify.FeatureTags(features, tags)
}
