package redirect

import (
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/indiepages/indiepages/engine/locator"
)

// rule is one legacy-shape entry in the ordered table. Rules are evaluated
// top to bottom and the first one whose pattern matches owns the request:
// its target either names the canonical location or declines, in which case
// the request passes through (rules never stack).
type rule struct {
	name    string
	pattern *regexp.Regexp
	target  func(e *Engine, m []string) (string, bool)
}

// Rule names, exported for metrics labels.
const (
	RuleBrowseAll    = "browse_all"
	RuleStateOnly    = "state_only"
	RuleStateCity    = "state_city"
	RuleStateCounty  = "state_county"
	RuleCityState    = "city_state"
	RuleCountyState  = "county_state"
	RuleCategoryByID = "category_by_id"
	RuleLegacyList   = "legacy_list"
	RuleLegacyDetail = "legacy_detail"
	RuleStaleSlug    = "stale_slug"
)

// rules is the ordered legacy-pattern table. Static shapes come first so the
// common case never touches the index; the entity-detail rule that consults
// the resolver is last.
var rules = []rule{
	{
		name:    RuleBrowseAll,
		pattern: regexp.MustCompile(`^/directory/(?:states|cities|browse)/?$`),
		target: func(_ *Engine, _ []string) (string, bool) {
			return DirectoryPath, true
		},
	},
	{
		name:    RuleStateCity,
		pattern: regexp.MustCompile(`^/directory/state/([^/]+)/city/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			return DirectoryURL(locator.NormalizeRegion(m[1]), humanizePlace(m[2]), "", ""), true
		},
	},
	{
		name:    RuleStateCounty,
		pattern: regexp.MustCompile(`^/directory/state/([^/]+)/county/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			return DirectoryURL(locator.NormalizeRegion(m[1]), "", humanizePlace(m[2]), ""), true
		},
	},
	{
		name:    RuleStateOnly,
		pattern: regexp.MustCompile(`^/directory/state/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			return DirectoryURL(locator.NormalizeRegion(m[1]), "", "", ""), true
		},
	},
	{
		name:    RuleCityState,
		pattern: regexp.MustCompile(`^/directory/city-state/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			place, region, ok := splitPlaceRegion(m[1])
			if !ok {
				return DirectoryPath, true
			}
			return DirectoryURL(region, place, "", ""), true
		},
	},
	{
		name:    RuleCountyState,
		pattern: regexp.MustCompile(`^/directory/county-state/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			place, region, ok := splitPlaceRegion(m[1])
			if !ok {
				return DirectoryPath, true
			}
			return DirectoryURL(region, "", place, ""), true
		},
	},
	{
		name:    RuleCategoryByID,
		pattern: regexp.MustCompile(`^/directory/category/(\d+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			return DirectoryURL("", "", "", m[1]), true
		},
	},
	{
		name:    RuleLegacyList,
		pattern: regexp.MustCompile(`^/(?:bookshops|stores)/?$`),
		target: func(_ *Engine, _ []string) (string, bool) {
			return DirectoryPath, true
		},
	},
	{
		name:    RuleLegacyDetail,
		pattern: regexp.MustCompile(`^/(?:bookshop|store)/([^/]+)/?$`),
		target: func(_ *Engine, m []string) (string, bool) {
			return ListingPath(m[1]), true
		},
	},
	{
		name:    RuleStaleSlug,
		pattern: regexp.MustCompile(`^/listing/([^/]+)/?$`),
		target:  (*Engine).resolveListingToken,
	},
}

// Engine evaluates inbound request paths against the legacy rule table.
type Engine struct {
	holder *locator.Holder
}

// New returns an engine reading index snapshots from the given holder. A nil
// holder is allowed; entity-variant rules then simply never redirect.
func New(holder *locator.Holder) *Engine {
	return &Engine{holder: holder}
}

// Decide evaluates a request. Only GET requests are considered; API and
// asset traffic always passes. The result is either exactly one permanent
// redirect or a pass-through, never an error.
func (e *Engine) Decide(method, reqPath string) Decision {
	if method != http.MethodGet {
		return None()
	}
	if strings.HasPrefix(reqPath, APIPrefix) {
		return None()
	}
	if path.Ext(reqPath) != "" {
		return None()
	}
	for i := range rules {
		m := rules[i].pattern.FindStringSubmatch(reqPath)
		if m == nil {
			continue
		}
		if location, ok := rules[i].target(e, m); ok {
			return moved(rules[i].name, location)
		}
		return None()
	}
	return None()
}

// resolveListingToken handles the entity-detail shape. Numeric legacy ids
// pass through: the detail handler owns the data lookup and issues the
// follow-up redirect, keeping this layer free of I/O. Non-numeric tokens are
// resolved against the index and redirect only when the current canonical
// slug differs from the requested token.
func (e *Engine) resolveListingToken(m []string) (string, bool) {
	if e.holder == nil {
		return "", false
	}
	res, ok := locator.Resolve(e.holder.Index(), m[1])
	if !ok || res.Kind == locator.MatchNumeric {
		return "", false
	}
	if res.MatchedSlug == m[1] {
		return "", false
	}
	return ListingPath(res.MatchedSlug), true
}
