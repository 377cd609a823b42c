package ownhttp

import "net/http"

// AddHeaderTransport sets the User-Agent header on all outgoing requests
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		// RoundTrip must not modify the request
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return adt.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
