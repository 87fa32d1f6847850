package handlers

import (
	"github.com/gin-gonic/gin"
)

// getUserID reads the acting user set by the auth middleware.
func getUserID(c *gin.Context) string {
	v, ok := c.Get("user_id")
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
