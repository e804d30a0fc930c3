package client

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit holds each request until limiter grants it
func RateLimit(next http.RoundTripper, limiter *rate.Limiter) http.RoundTripper {
	if limiter == nil {
		return next
	}
	return &limitRoundTripper{limiter: limiter, next: next}
}

type limitRoundTripper struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

func (l *limitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := l.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return l.next.RoundTrip(req)
}
