package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/indiepages/indiepages/engine/locator"
	"github.com/indiepages/indiepages/pkg/logger"
)

// directoryEntry is one row of the unified listing page.
type directoryEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Region   string `json:"region"`
	Locality string `json:"locality"`
}

// handleDirectory serves the unified listing view. Filters arrive as the
// canonical query parameters (state, city, county, features); region values
// are normalized so both "CA" and "california" filter identically.
func (s *Server) handleDirectory(c *gin.Context) {
	ctx := c.Request.Context()
	shops, err := s.store.ListShops(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Listing shops failed", "error", err)
		respondInternal(c, "could not load directory")
		return
	}
	state := ""
	if raw := c.Query("state"); raw != "" {
		state = locator.NormalizeRegion(raw)
	}
	city := c.Query("city")
	entries := make([]directoryEntry, 0, len(shops))
	for i := range shops {
		if !shops[i].Live {
			continue
		}
		if state != "" && locator.NormalizeRegion(shops[i].Region) != state {
			continue
		}
		if city != "" && !strings.EqualFold(shops[i].Locality, city) {
			continue
		}
		entries = append(entries, directoryEntry{
			ID:       shops[i].ID,
			Name:     shops[i].Name,
			Slug:     locator.Slugify(shops[i].Name),
			Region:   locator.NormalizeRegion(shops[i].Region),
			Locality: shops[i].Locality,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"shops": entries,
			"filters": gin.H{
				"state":    state,
				"city":     city,
				"county":   c.Query("county"),
				"features": c.Query("features"),
			},
		},
		"message": "Success",
	})
}
