package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageFromQuery reads the 1-based ?page= parameter. A missing or
// non-integer value means page 1.
func PageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}

	return page
}
