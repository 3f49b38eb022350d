package middleware

import (
	"portfolio-api/internal/api/params"
	"portfolio-api/internal/api/respond"

	"github.com/gin-gonic/gin"
)

// RequireNumericID answers 404 when the named path segment is not a
// non-negative integer, before any other check runs.
func RequireNumericID(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := params.ID(c, name); !ok {
			respond.NotFound(c)
			return
		}
		c.Next()
	}
}
