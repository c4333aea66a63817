package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleHealth reports liveness plus index readiness. The service is healthy
// even before the first index build; readiness only flags whether slug
// lookups can currently hit.
func (s *Server) handleHealth(c *gin.Context) {
	size := s.holder.Index().Size()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"status":      "healthy",
			"index_built": size > 0,
			"index_slugs": size,
		},
		"message": "Success",
	})
}
