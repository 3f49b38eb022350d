// Package identity derives the pseudonymous visitor key used to deduplicate likes.
//
// The key comes from client-address headers set by the edge proxy. It is
// coarse (shared behind NAT) and spoofable when the service is reachable
// without that proxy.
package identity

import (
	"net/http"
	"strings"
)

const (
	Prefix  = "ip:"
	Unknown = "unknown"
)

type Resolver struct {
	Headers []string
}

func NewResolver(headers []string) *Resolver {
	if len(headers) == 0 {
		headers = []string{"CF-Connecting-IP"}
	}
	return &Resolver{Headers: headers}
}

// Resolve returns "ip:<address>" for the first header that carries a value,
// or "ip:unknown". List-valued headers contribute their first entry.
func (r *Resolver) Resolve(req *http.Request) string {
	for _, h := range r.Headers {
		v := req.Header.Get(h)
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		if v = strings.TrimSpace(v); v != "" {
			return Prefix + v
		}
	}
	return Prefix + Unknown
}
