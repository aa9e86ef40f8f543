package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the standard error body: {"error": "..."}.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondInternalError logs the real failure server-side and returns a
// generic 500 so no internal detail leaks to the caller.
func RespondInternalError(c *gin.Context, err error) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
