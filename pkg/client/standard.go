package client

import (
	"net"
	"net/http"
	"time"
)

type Option func(*option)

type option struct {
	t       *http.Transport
	jar     http.CookieJar
	timeout time.Duration
}

// Timeout bounds a whole exchange
func Timeout(t time.Duration) Option {
	return func(o *option) { o.timeout = t }
}

// CookieJar sends and stores cookies, the session credentials ride on it
func CookieJar(jar http.CookieJar) Option {
	return func(o *option) { o.jar = jar }
}

// NewStandardClient 标准库client
func NewStandardClient(opts ...Option) *standardClient {
	o := &option{
		t: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 10,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 60 * time.Second,
			ForceAttemptHTTP2:     true,
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return &standardClient{client: &http.Client{Transport: o.t, Jar: o.jar, Timeout: o.timeout}}
}

type standardClient struct {
	client *http.Client
}

// RoundTrip goes through http.Client so the jar and redirects apply
func (s *standardClient) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}
