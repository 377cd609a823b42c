package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport waits for the limiter before every request
type ThrottleTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return tt.next.RoundTrip(req)
}

// NewThrottleTransport wraps next (http.DefaultTransport if nil)
func NewThrottleTransport(next http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &ThrottleTransport{next, limiter}
}
