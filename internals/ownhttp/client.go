package ownhttp

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// UserAgent is sent with every request
var UserAgent = "pillowgen (https://github.com/pillowmc/pillowgen)"

// Options configure the client returned by New
type Options struct {
	// Timeout for a whole request (including reading the body). 0 means no timeout
	Timeout time.Duration
	// RateLimit in requests per second. 0 disables throttling
	RateLimit float64
}

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New(opts Options) *http.Client {
	var transport http.RoundTripper = NewAddHeaderTransport(nil)
	if opts.RateLimit > 0 {
		transport = NewThrottleTransport(transport, rate.NewLimiter(rate.Limit(opts.RateLimit), 1))
	}
	return &http.Client{Transport: transport, Timeout: opts.Timeout}
}
