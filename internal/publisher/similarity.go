package publisher

import "github.com/pmezard/go-difflib/difflib"

// Ratio returns the similarity of a and b in [0, 1]: twice the number of
// matching runes over the total rune count, with matches found by
// difflib's sequence matcher.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
