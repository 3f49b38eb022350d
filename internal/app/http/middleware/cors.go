package middleware

import (
	"net/http"
	"strconv"
	"time"

	"portfolio-api/internal/domain/origin"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS attaches the cross-origin policy to every response and answers
// preflight requests before routing. A strict policy is enforced by
// gin-contrib/cors and rejects unmatched origins; otherwise unmatched
// origins receive the policy's fallback origin.
func CORS(p origin.Policy) gin.HandlerFunc {
	if p.Strict {
		strict := cors.New(cors.Config{
			AllowOriginFunc: p.Matches,
			AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Content-Type", "Authorization"},
			MaxAge:          origin.MaxAgeSeconds * time.Second,
		})
		return func(c *gin.Context) {
			if o := c.GetHeader("Origin"); o != "" && !p.Matches(o) && !sameOrigin(c, o) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			strict(c)
			if c.IsAborted() {
				return
			}
			// OPTIONS without an Origin header still never reaches routing
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
		}
	}

	return func(c *gin.Context) {
		allowed, _ := p.Allow(c.GetHeader("Origin"))

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowed)
		h.Set("Access-Control-Allow-Methods", origin.AllowMethods)
		h.Set("Access-Control-Allow-Headers", origin.AllowHeaders)
		h.Set("Access-Control-Max-Age", strconv.Itoa(origin.MaxAgeSeconds))
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// sameOrigin mirrors gin-contrib/cors, which lets a page call its own host.
func sameOrigin(c *gin.Context, o string) bool {
	return o == "http://"+c.Request.Host || o == "https://"+c.Request.Host
}
