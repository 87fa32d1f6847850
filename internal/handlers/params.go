package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/config"
	"tasktrack/internal/models"
)

// parseListQuery reads the optional list parameters and applies the
// defaults: page=1, limit=10, string filters empty. Values that do not
// parse fall back to the defaults rather than erroring. The configured
// caps are applied last; a zero cap leaves the value unbounded.
func parseListQuery(c *gin.Context, caps config.ListingConfig) models.TaskQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	if caps.MaxLimit > 0 && limit > caps.MaxLimit {
		limit = caps.MaxLimit
	}
	if caps.MaxPage > 0 && page > caps.MaxPage {
		page = caps.MaxPage
	}

	return models.TaskQuery{
		Name:   c.Query("name"),
		Status: c.Query("status"),
		ID:     c.Query("id"),
		Page:   page,
		Limit:  limit,
	}
}
