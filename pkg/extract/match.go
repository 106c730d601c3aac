package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/storecat/pkg/sources"
)

// Raw paths read by the heuristics.
const (
	pathNotices        = "Notices.0"
	pathDealsInfo      = "InfosVR"
	pathDealsTags      = "Tags"
	pathDealsFeatures  = "Features"
	pathPEGIDesc       = "RatingPEGIDesc"
	pathESRBDesc       = "RatingESRBDesc"
	pathCurrencyCount  = "InGameCurrencyCount"
	pathTrackerVR      = "IsVR"
	pathOfflinePlayers = "OfflinePlayers"
	pathOnlinePlayers  = "OnlinePlayers"
	pathOnlinePlay     = "OnlinePlay"
)

// contains reports whether needle is in haystack: a substring of text or
// an element of a list. Both sides are compared in NFC form.
func contains(haystack any, needle string) bool {
	switch h := haystack.(type) {
	case string:
		return strings.Contains(norm.NFC.String(h), needle)
	case []any:
		for _, e := range h {
			if s, ok := e.(string); ok && norm.NFC.String(s) == needle {
				return true
			}
		}
	}
	return false
}

func containsAny(haystack any, needles []string) bool {
	for _, n := range needles {
		if contains(haystack, n) {
			return true
		}
	}
	return false
}

// notices returns the first storefront notice group as individual
// notices. A plain string is a single notice.
func notices(doc *sources.Document) []string {
	raw, ok := doc.Lookup(sources.Storefront, pathNotices)
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return []string{norm.NFC.String(v)}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, norm.NFC.String(s))
			}
		}
		return out
	}
	return nil
}

// matches evaluates a keyword rule against a document.
func (k KeywordRule) matches(doc *sources.Document) bool {
	if len(k.Fragments) > 0 {
		for _, n := range notices(doc) {
			for _, f := range k.Fragments {
				if strings.Contains(n, f) {
					return true
				}
			}
		}
	}
	if len(k.Notices) > 0 {
		if raw, ok := doc.Lookup(sources.Storefront, pathNotices); ok && containsAny(raw, k.Notices) {
			return true
		}
	}
	checks := []struct {
		path     string
		keywords []string
	}{
		{pathDealsInfo, k.DealsInfo},
		{pathDealsTags, k.DealsTags},
		{pathDealsFeatures, k.DealsFeatures},
		{pathPEGIDesc, k.DealsDescriptors},
		{pathESRBDesc, k.DealsDescriptors},
	}
	for _, c := range checks {
		if len(c.keywords) == 0 {
			continue
		}
		if raw, ok := doc.Lookup(sources.Deals, c.path); ok && containsAny(raw, c.keywords) {
			return true
		}
	}
	return false
}

// flag converts a condition to a 0/1 column value.
func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
