// Package httputil builds the outbound HTTP client shared by the indexer
// and discovery tooling. Every request carries the configured User-Agent.
package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound request. Documentation hosts are
// occasionally very slow; anything beyond this is treated as unreachable.
const DefaultTimeout = 30 * time.Second

type uaTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}

// NewClient returns an HTTP client that follows redirects and sends the
// given User-Agent on every request.
func NewClient(userAgent string) *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &uaTransport{
			base:      http.DefaultTransport,
			userAgent: userAgent,
		},
	}
}
