// Package params parses route parameters shared by several handlers.
package params

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

var digits = regexp.MustCompile(`^[0-9]+$`)

// ParseID accepts only non-negative decimal integers that fit in int64.
func ParseID(raw string) (int64, bool) {
	if !digits.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ID reads the named path parameter. A path whose id segment is not a
// non-negative integer does not match any route, so callers answer 404.
func ID(c *gin.Context, name string) (int64, bool) {
	return ParseID(c.Param(name))
}
