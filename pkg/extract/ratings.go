package extract

import (
	"github.com/agentstation/storecat/pkg/authority"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

// AgeRating is a PEGI/ESRB pair inferred from a tracker rating label.
type AgeRating struct {
	PEGI int
	ESRB string
}

var (
	ratingEveryone = AgeRating{3, "Everyone"}
	ratingTen      = AgeRating{7, "Everyone 10+"}
	ratingTeen     = AgeRating{12, "Teen"}
	ratingMature   = AgeRating{16, "Mature 17+"}
	ratingAdults   = AgeRating{18, "Adults Only 18+"}
	ratingM18      = AgeRating{18, "Mature 17+"}
)

// trackerRatings maps the tracker's free-text rating labels, which mix
// several national boards, onto a PEGI/ESRB pair.
var trackerRatings = map[string]AgeRating{
	"PEGI 3+":                         ratingEveryone,
	"IARC 3+":                         ratingEveryone,
	"Rating0+":                        ratingEveryone,
	"SKOREA All":                      ratingEveryone,
	"RatingAll":                       ratingEveryone,
	"GCAM Provisional 3":              ratingEveryone,
	"PEGI Provisional 3":              ratingEveryone,
	"General":                         ratingEveryone,
	"ESRB Everyone":                   ratingEveryone,
	"USK Everyone":                    ratingEveryone,
	"Suitable for general audiences.": ratingEveryone,

	"PEGI 7+":                       ratingTen,
	"IARC 7+":                       ratingTen,
	"Rating6+":                      ratingTen,
	"GCAM Provisional 7":            ratingTen,
	"PEGI Provisional 7":            ratingTen,
	"Parental guidance recommended": ratingTen,
	"Parental guidance recommended for younger viewers.": ratingTen,

	"PEGI 12+":          ratingTeen,
	"Rating12+":         ratingTeen,
	"USK 12":            ratingTeen,
	"SKOREA 12":         ratingTeen,
	"ESRB Everyone 10+": ratingTeen,
	"Restricted to persons 13 years and over.": ratingTeen,

	"PEGI 16+":                         ratingMature,
	"IARC 16+":                         ratingMature,
	"Rating16+":                        ratingMature,
	"SKOREA 15":                        ratingMature,
	"Not suitable for people under 15": ratingMature,
	"Restricted to persons 15 years and over.":         ratingMature,
	"Restricted to persons 16 years and over.":         ratingMature,
	"Suitable for mature audiences 16 years and over.": ratingMature,
	"Recommended for mature audiences":                 ratingMature,
	"ESRB Teen":                                        ratingMature,

	"PEGI 18+":                  ratingAdults,
	"Rating18+":                 ratingAdults,
	"Restricted to 18 and over": ratingAdults,
	"Restricted to persons 18 years and over.": ratingAdults,
	"ESRB Mature": ratingM18,
	"SKOREA M":    ratingM18,
}

// TrackerRating maps a tracker rating label.
func TrackerRating(label string) (AgeRating, bool) {
	r, ok := trackerRatings[label]
	return r, ok
}

// ratings resolves PEGI, ESRB and the content descriptors. Each rating
// the aggregator lacks is filled from the tracker label.
func ratings(doc *sources.Document, a authority.Authority) (*int, *string, []string) {
	pegi := resolver.Resolve(doc, a, authority.PEGIRating, resolver.ToInt, resolver.NonNegative[int]).Ptr()
	esrb := resolver.Resolve(doc, a, authority.ESRBRating, resolver.ToString, resolver.NonEmpty).Ptr()

	if pegi == nil || esrb == nil {
		label := resolver.Resolve(doc, a, authority.TrackerRating, resolver.ToString, resolver.NonEmpty)
		if l, ok := label.Get(); ok {
			if r, ok := TrackerRating(l); ok {
				if pegi == nil {
					pegi = &r.PEGI
				}
				if esrb == nil {
					esrb = &r.ESRB
				}
			}
		}
	}

	var desc []string
	for _, path := range []string{pathESRBDesc, pathPEGIDesc} {
		raw, _ := doc.Lookup(sources.Deals, path)
		list, err := resolver.ToStrings(raw)
		if err != nil {
			continue
		}
		desc = appendUnique(desc, list...)
	}
	return pegi, esrb, desc
}

// appendUnique appends the items not already in dst, keeping order.
func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		seen := false
		for _, d := range dst {
			if d == it {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, it)
		}
	}
	return dst
}
