package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/agentstation/storecat/pkg/errors"
	"github.com/agentstation/storecat/pkg/resolver"
	"github.com/agentstation/storecat/pkg/sources"
)

// moreMarker is a pagination artefact in the aggregator's voice list.
const moreMarker = "More +"

// languageNames maps the tracker's locale codes to display names.
var languageNames = map[string]string{
	"en":    "English",
	"fr":    "French",
	"de":    "German",
	"pt_BR": "Portuguese (Brazil)",
	"es":    "Spanish",
	"nl":    "Dutch",
	"it":    "Italian",
	"ch":    "Chinese",
	"zh":    "Chinese (Simplified)",
	"pl":    "Polish",
	"ru":    "Russian",
	"pt":    "Portuguese",
	"pt_PT": "Portuguese",
	"ja":    "Japanese",
	"in":    "Indonesian",
	"tr":    "Turkish",
	"ko":    "Korean",
	"es_MX": "Spanish (Mexico)",
	"ar":    "Arabic",
	"ca":    "Catalan",
	"uk":    "Ukrainian",
	"hu":    "Hungarian",
	"cs":    "Czech",
	"no":    "Norwegian",
	"sv":    "Swedish",
	"th":    "Thai",
	"fi":    "Finnish",
	"hi":    "Hindi",
	"hr":    "Croatian",
	"eu":    "Basque",
	"da":    "Danish",
	"ms":    "Malay",
	"ch_HK": "Chinese",
	"en_GR": "English",
	"en_CZ": "English",
	"fr_CA": "French",
	"fr_BE": "French",
	"sk":    "Slovaque",
	"el":    "Grec",
	"ro":    "Roumain",
	"he":    "Hébreu",
	"bg":    "Bulgare",
	"vi":    "Vietnamien",
	"sl":    "Slovène",
	"tl":    "Tagalog",
	"ga":    "Irlandais",
	"gl":    "Galicien",
	"cy":    "Gallois",
	"af":    "Afrikaans",
	"gd":    "Gaélique",
}

var quotedCode = regexp.MustCompile(`"([a-z_A-Z]+)"`)

// NormalizeLanguages turns a tracker language value into display names.
// The tracker stores a JSON array, a JSON object keyed by position or a
// single code, sometimes truncated. Unknown codes are dropped.
func NormalizeLanguages(s string) []string {
	s = strings.TrimSpace(s)
	codes, err := decodeCodes(s)
	if err != nil {
		codes = nil
		for _, m := range quotedCode.FindAllStringSubmatch(s, -1) {
			codes = append(codes, m[1])
		}
	}

	var out []string
	for _, c := range codes {
		if name, ok := languageNames[strings.TrimSpace(c)]; ok {
			out = appendUnique(out, name)
		}
	}
	return out
}

func decodeCodes(s string) ([]string, error) {
	switch {
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			s += "]"
		}
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err != nil {
			return nil, err
		}
		return stringsOnly(arr)

	case strings.HasPrefix(s, "{"):
		if !strings.HasSuffix(s, "}") {
			s += "}"
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return positionLess(keys[i], keys[j]) })
		vals := make([]any, len(keys))
		for i, k := range keys {
			vals[i] = obj[k]
		}
		return stringsOnly(vals)

	default:
		return []string{strings.Trim(s, `"`)}, nil
	}
}

// positionLess orders numeric keys numerically, before any other key.
func positionLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func stringsOnly(vals []any) ([]string, error) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("non-string language code")
		}
		out = append(out, s)
	}
	return out, nil
}

// languages returns the voice and subtitle language lists: aggregator
// names first, then normalised tracker codes, without duplicates.
func languages(doc *sources.Document) (voice, subtitles []string) {
	if raw, ok := doc.Lookup(sources.Deals, "VoiceLang"); ok {
		if list, err := resolver.ToStrings(raw); err == nil {
			for _, l := range list {
				if l != moreMarker {
					voice = appendUnique(voice, l)
				}
			}
		}
	}
	if raw, ok := doc.Lookup(sources.Tracker, "VoiceLang"); ok {
		if s, ok := raw.(string); ok {
			voice = appendUnique(voice, NormalizeLanguages(s)...)
		}
	}

	if raw, ok := doc.Lookup(sources.Deals, "SubtitleLang"); ok {
		if list, err := resolver.ToStrings(raw); err == nil {
			subtitles = appendUnique(subtitles, list...)
		}
	}
	if raw, ok := doc.Lookup(sources.Tracker, "SubtitleLang"); ok {
		if s, ok := raw.(string); ok {
			subtitles = appendUnique(subtitles, NormalizeLanguages(s)...)
		}
	}
	return voice, subtitles
}
