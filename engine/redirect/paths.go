package redirect

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/indiepages/indiepages/engine/locator"
)

// DirectoryPath is the single unified listing page every legacy listing
// shape collapses to.
const DirectoryPath = "/directory"

// ListingBase is the canonical entity-detail prefix.
const ListingBase = "/listing"

// APIPrefix marks data traffic the redirect layer never touches.
const APIPrefix = "/api/"

// ListingPath returns the canonical detail path for a slug.
func ListingPath(slug string) string {
	return ListingBase + "/" + slug
}

// DirectoryURL assembles the unified listing URL. Parameters appear in a
// fixed order (state, city, county, features) and region values are assumed
// to already be short codes.
func DirectoryURL(state, city, county, features string) string {
	var b strings.Builder
	b.WriteString(DirectoryPath)
	sep := byte('?')
	appendParam := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteByte(sep)
		sep = '&'
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	appendParam("state", state)
	appendParam("city", city)
	appendParam("county", county)
	appendParam("features", features)
	return b.String()
}

// humanizePlace turns a slug-like place token into a display name:
// hyphens become spaces and each word is title-cased. The caser is built
// per call; a cases.Caser carries transform state and must not be shared
// between goroutines.
func humanizePlace(token string) string {
	caser := cases.Title(language.English)
	words := strings.Split(token, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// splitPlaceRegion splits a combined place-region token, taking the last
// hyphen-delimited segment as the region and the rest as the place name.
// Place names containing a region word are not disambiguated; the last
// segment always wins. Tokens without a hyphen do not parse.
func splitPlaceRegion(token string) (place, region string, ok bool) {
	i := strings.LastIndex(token, "-")
	if i <= 0 || i == len(token)-1 {
		return "", "", false
	}
	return humanizePlace(token[:i]), locator.NormalizeRegion(token[i+1:]), true
}
