package client

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"areaadmin/pkg/code"
)

// Requester turns what a RESTClient collected into an *http.Request
type Requester interface {
	Build(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Request, error)
}

// JSONRequest asks for JSON and labels a body as JSON unless the caller did
type JSONRequest struct{}

func (JSONRequest) Build(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.WithStack(code.Unexpected(err))
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
