// Package redirect decides whether an inbound request path is a legacy URL
// shape that must be consolidated onto its canonical form. Decisions are
// pure values: the engine either names exactly one permanent redirect or
// passes the request through untouched.
package redirect

import "net/http"

// Decision is the outcome of evaluating a request against the rule table.
type Decision struct {
	Redirect bool
	// Location is the canonical target path (with query) when Redirect is set.
	Location string
	// Status is always http.StatusMovedPermanently for redirects; legacy
	// URLs consolidate SEO signal, so temporary redirects are never used.
	Status int
	// Rule names the matched table entry, for logging and metrics.
	Rule string
}

// None is the pass-through decision.
func None() Decision {
	return Decision{}
}

func moved(rule, location string) Decision {
	return Decision{
		Redirect: true,
		Location: location,
		Status:   http.StatusMovedPermanently,
		Rule:     rule,
	}
}
