package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxJSONBody bounds a JSON submission; the largest legal comment is far smaller.
const MaxJSONBody = 64 << 10

// LimitBody caps the request body at n bytes. Reads past the cap fail, which
// the JSON binders report as a bad request. The body itself is never rewritten.
func LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
