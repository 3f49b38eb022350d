// Package origin decides which caller origin the API echoes in CORS headers.
package origin

import "strings"

const (
	AllowMethods = "GET, POST, DELETE, OPTIONS"
	AllowHeaders = "Content-Type, Authorization"

	// MaxAgeSeconds is how long browsers may cache a preflight answer.
	MaxAgeSeconds = 86400
)

type Policy struct {
	// Origins are matched exactly. The first entry is the fallback.
	Origins []string
	// Suffix admits any origin ending in it, e.g. ".site.pages.dev".
	Suffix string
	// Strict rejects unmatched origins instead of echoing the fallback.
	Strict bool
}

// Matches reports whether origin is on the allow-list or under the suffix.
func (p Policy) Matches(origin string) bool {
	if origin == "" {
		return false
	}
	for _, o := range p.Origins {
		if origin == o {
			return true
		}
	}
	return p.Suffix != "" && strings.HasSuffix(origin, p.Suffix)
}

// Allow returns the value for Access-Control-Allow-Origin. An unmatched
// origin yields the first configured origin unless the policy is strict, in
// which case ok is false.
func (p Policy) Allow(origin string) (allowed string, ok bool) {
	if p.Matches(origin) {
		return origin, true
	}
	if p.Strict || len(p.Origins) == 0 {
		return "", false
	}
	return p.Origins[0], true
}
