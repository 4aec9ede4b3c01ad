package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the underlying error and returns a generic message, so
// callers never see internal details.
func internalError(c *gin.Context, message string, err error) {
	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
}
