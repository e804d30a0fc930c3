package base

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"areaadmin/pkg/client"
)

// Config describes the transport stack towards the area backend
type Config struct {
	// URL the area endpoint, seeded cookies are scoped to its host
	URL           string
	Timeout       time.Duration
	Retry         int
	RetryInterval time.Duration
	// RateLimit requests per second, zero disables the limiter
	RateLimit float64
	Burst     int
	// CSRFCookie and CSRFHeader default to csrftoken and X-CSRFToken
	CSRFCookie string
	CSRFHeader string
	// Cookies seeds the session jar, e.g. sessionid and csrftoken
	Cookies map[string]string
	// Registerer enables request metrics when set
	Registerer prometheus.Registerer
	Namespace  string
}

// NewTransport builds jar -> metrics -> rate limit -> retry -> curl log,
// with CSRF echoing on every request
func NewTransport(cfg Config) (client.Transport, http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.Cookies) > 0 {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		cookies := make([]*http.Cookie, 0, len(cfg.Cookies))
		for name, value := range cfg.Cookies {
			cookies = append(cookies, &http.Cookie{Name: name, Value: value, Path: "/"})
		}
		jar.SetCookies(u, cookies)
	}

	var rt http.RoundTripper = client.NewStandardClient(client.Timeout(cfg.Timeout), client.CookieJar(jar))
	if cfg.Registerer != nil {
		m, err := client.NewMetrics(cfg.Registerer, cfg.Namespace)
		if err != nil {
			return nil, nil, err
		}
		rt = m.RoundTripper(rt)
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		rt = client.RateLimit(rt, rate.NewLimiter(rate.Limit(cfg.RateLimit), burst))
	}
	rt = client.Retry(rt, cfg.Retry, cfg.RetryInterval)
	rt = client.CurlRoundTripper(rt)

	req := client.CSRFRequest{
		Jar:        jar,
		CookieName: cfg.CSRFCookie,
		HeaderName: cfg.CSRFHeader,
	}
	return client.NewTransporter(req, rt, client.ResponseHandler{}), jar, nil
}
