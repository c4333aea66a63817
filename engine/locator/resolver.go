package locator

import (
	"strconv"
	"strings"
)

// MatchKind classifies how a raw path token resolved.
type MatchKind string

const (
	// MatchExact means the token is a current canonical slug.
	MatchExact MatchKind = "exact"
	// MatchFuzzy means a prefix of the token is a current canonical slug.
	MatchFuzzy MatchKind = "fuzzy"
	// MatchNumeric means the token is a legacy numeric identifier; the
	// caller looks the id up directly and redirects to the canonical slug.
	MatchNumeric MatchKind = "numeric"
)

// Resolution is the outcome of resolving a raw token against the index.
type Resolution struct {
	Kind        MatchKind
	ShopID      int64
	MatchedSlug string
}

// Resolve maps a raw path token to a directory entry. Numeric tokens bypass
// the index entirely. Otherwise an exact lookup is tried first, then a fuzzy
// fallback that strips trailing hyphen-delimited segments one at a time and
// returns the longest matching prefix. Single-word tokens never fuzzy-match.
func Resolve(idx *Index, rawToken string) (Resolution, bool) {
	if rawToken == "" {
		return Resolution{}, false
	}
	if id, err := strconv.ParseInt(rawToken, 10, 64); err == nil {
		return Resolution{Kind: MatchNumeric, ShopID: id}, true
	}
	if id, ok := idx.Lookup(rawToken); ok {
		return Resolution{Kind: MatchExact, ShopID: id, MatchedSlug: rawToken}, true
	}
	if !strings.Contains(rawToken, "-") {
		return Resolution{}, false
	}
	parts := strings.Split(rawToken, "-")
	for i := len(parts) - 1; i >= 1; i-- {
		prefix := strings.Join(parts[:i], "-")
		if id, ok := idx.Lookup(prefix); ok {
			return Resolution{Kind: MatchFuzzy, ShopID: id, MatchedSlug: prefix}, true
		}
	}
	return Resolution{}, false
}
