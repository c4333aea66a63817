package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indiepages/indiepages/engine/infra/monitoring"
	"github.com/indiepages/indiepages/engine/locator"
	"github.com/indiepages/indiepages/engine/redirect"
	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/logger"
)

// handleListing serves the entity-detail page. Numeric legacy ids are looked
// up in the store and answered with a permanent redirect to the canonical
// slug; this is the second step the redirect middleware deliberately leaves
// to the handler so static-pattern requests stay free of data lookups.
func (s *Server) handleListing(c *gin.Context) {
	token := c.Param("token")
	res, ok := locator.Resolve(s.holder.Index(), token)
	if !ok {
		s.metrics.RecordLookup(monitoring.OutcomeNotFound)
		respondNotFound(c, "no such listing")
		return
	}
	switch res.Kind {
	case locator.MatchNumeric:
		s.metrics.RecordLookup(monitoring.OutcomeNumeric)
		s.redirectNumericID(c, res.ShopID)
	case locator.MatchFuzzy:
		// Normally consumed by the redirect middleware; kept here so direct
		// handler calls behave identically.
		s.metrics.RecordLookup(monitoring.OutcomeFuzzy)
		c.Redirect(http.StatusMovedPermanently, redirect.ListingPath(res.MatchedSlug))
	default:
		s.metrics.RecordLookup(monitoring.OutcomeResolved)
		s.renderListing(c, res.ShopID)
	}
}

// redirectNumericID resolves a legacy numeric id to its current canonical
// slug and redirects. Resolved slugs are memoized; ids are stable and a
// rename simply ages out with the cache entry on the next index refresh.
func (s *Server) redirectNumericID(c *gin.Context, id int64) {
	if slug, ok := s.slugCache.Get(id); ok {
		c.Redirect(http.StatusMovedPermanently, redirect.ListingPath(slug))
		return
	}
	ctx := c.Request.Context()
	item, err := s.store.GetShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, shop.ErrNotFound) {
			respondNotFound(c, "no such listing")
			return
		}
		logger.FromContext(ctx).Error("Shop lookup failed", "id", id, "error", err)
		respondInternal(c, "could not load listing")
		return
	}
	slug := locator.Slugify(item.Name)
	if slug == "" || !item.Live {
		respondNotFound(c, "no such listing")
		return
	}
	s.slugCache.Add(id, slug)
	c.Redirect(http.StatusMovedPermanently, redirect.ListingPath(slug))
}

func (s *Server) renderListing(c *gin.Context, id int64) {
	ctx := c.Request.Context()
	item, err := s.store.GetShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, shop.ErrNotFound) {
			// Index snapshot is ahead of the store; treat as a miss.
			respondNotFound(c, "no such listing")
			return
		}
		logger.FromContext(ctx).Error("Shop lookup failed", "id", id, "error", err)
		respondInternal(c, "could not load listing")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":       item.ID,
			"name":     item.Name,
			"slug":     locator.Slugify(item.Name),
			"region":   locator.NormalizeRegion(item.Region),
			"locality": item.Locality,
		},
		"message": "Success",
	})
}
