// Package locator derives canonical URL identifiers for directory listings
// and resolves inbound slug-like tokens back to entries.
package locator

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify converts a display name into its canonical URL path segment:
// lowercase, characters outside word/space/hyphen stripped, whitespace runs
// become single hyphens, repeated hyphens collapse, leading and trailing
// hyphens are trimmed. Total and idempotent; empty input yields "".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
