package middleware

import (
	"net/http"

	"portfolio-api/internal/api/params"
	"portfolio-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// RequireKnownArtwork rejects engagement on ids missing from the catalog.
// Ids that are not integers are left to the handler's 404.
func RequireKnownArtwork(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := params.ID(c, "id")
		if ok && !cat.Has(id) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.Next()
	}
}
