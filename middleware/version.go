package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "v1"

// RequireAPIVersion rejects requests carrying a mismatched X-Api-Version
// header. A missing header is tolerated for older clients.
func RequireAPIVersion(c *gin.Context) {
	if v := c.GetHeader("X-Api-Version"); v != "" && v != apiVersion {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported API version: " + v})
		c.Abort()
		return
	}
	c.Next()
}
