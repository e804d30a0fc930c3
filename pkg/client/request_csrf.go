package client

import (
	"context"
	"io"
	"net/http"
)

const (
	DefaultCSRFCookie = "csrftoken"
	DefaultCSRFHeader = "X-CSRFToken"
)

// CSRFRequest echoes the anti-forgery cookie back as a request header.
// A missing cookie leaves the header out and the request goes on.
type CSRFRequest struct {
	Jar        http.CookieJar
	CookieName string
	HeaderName string
	CoPartner  Requester
}

func (c CSRFRequest) Build(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Request, error) {
	partner := c.CoPartner
	if partner == nil {
		partner = JSONRequest{}
	}
	req, err := partner.Build(ctx, method, url, body, headers)
	if err != nil {
		return nil, err
	}
	if token := c.token(req); token != "" {
		headerName := c.HeaderName
		if headerName == "" {
			headerName = DefaultCSRFHeader
		}
		req.Header.Set(headerName, token)
	}
	return req, nil
}

func (c CSRFRequest) token(req *http.Request) string {
	if c.Jar == nil {
		return ""
	}
	name := c.CookieName
	if name == "" {
		name = DefaultCSRFCookie
	}
	for _, cookie := range c.Jar.Cookies(req.URL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
