package server

import "github.com/gin-gonic/gin"

// Error codes returned in JSON error payloads.
const (
	ErrNotFoundCode = "NOT_FOUND"
	ErrInternalCode = "INTERNAL_ERROR"
)

// Error is the JSON error payload shape.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(404, gin.H{"error": Error{Code: ErrNotFoundCode, Message: message}})
}

func respondInternal(c *gin.Context, message string) {
	c.JSON(500, gin.H{"error": Error{Code: ErrInternalCode, Message: message}})
}
