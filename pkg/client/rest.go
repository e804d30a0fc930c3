package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"

	"areaadmin/pkg/code"
	"areaadmin/pkg/json"
)

type RESTClient interface {
	Endpoints(endpoint string) RESTClient
	Resource(resource string) RESTClient
	Name(resourceName string) RESTClient
	Param(paramName, value string) RESTClient
	Params(values url.Values) RESTClient
	SetHeader(key string, values ...string) RESTClient
	Body(obj interface{}) RESTClient
	URL() *url.URL
	Do(ctx context.Context, result interface{}, opts ...Func) error
	DoNop(ctx context.Context, opts ...Func) error
}

// NameMayNotBe specifies strings that cannot be used as names specified as path segments
var NameMayNotBe = []string{".", ".."}

// NameMayNotContain specifies substrings that cannot be used in names specified as path segments
var NameMayNotContain = []string{"/", "%"}

// IsValidPathSegmentName validates the name can be safely encoded as a path segment
func IsValidPathSegmentName(name string) []string {
	for _, illegalName := range NameMayNotBe {
		if name == illegalName {
			return []string{fmt.Sprintf(`may not be '%s'`, illegalName)}
		}
	}

	var errs []string
	for _, illegalContent := range NameMayNotContain {
		if strings.Contains(name, illegalContent) {
			errs = append(errs, fmt.Sprintf(`may not contain '%s'`, illegalContent))
		}
	}

	return errs
}

func NewRESTClient(t Transport, verb string) RESTClient {
	return &restfulClient{c: t, verb: verb}
}

type restfulClient struct {
	c Transport

	baseURL *url.URL
	// the endpoint path ended with "/", every built path keeps one
	trailingSlash bool
	verb    string
	params  url.Values
	headers http.Header

	// structural elements of the request
	resource     string
	resourceName string

	// output
	err  error
	body io.Reader
}

func (r *restfulClient) Endpoints(endpoint string) RESTClient {
	if endpoint == "" {
		return r
	}
	if r.err != nil {
		return r
	}
	r.baseURL, r.err = url.Parse(endpoint)
	if r.err == nil {
		r.trailingSlash = strings.HasSuffix(r.baseURL.Path, "/")
	}
	return r
}

func (r *restfulClient) Resource(resource string) RESTClient {
	if r.err != nil {
		return r
	}
	if len(r.resource) != 0 {
		r.err = fmt.Errorf("resource already set to %q, cannot change to %q", r.resource, resource)
		return r
	}
	if reasons := IsValidPathSegmentName(resource); len(reasons) != 0 {
		r.err = fmt.Errorf("invalid resource %q: %v", resource, reasons)
		return r
	}
	r.resource = resource
	return r
}

func (r *restfulClient) Name(resourceName string) RESTClient {
	if r.err != nil {
		return r
	}
	if len(resourceName) == 0 {
		r.err = fmt.Errorf("resource name may not be empty")
		return r
	}
	if len(r.resourceName) != 0 {
		r.err = fmt.Errorf("resource name already set to %q, cannot change to %q", r.resourceName, resourceName)
		return r
	}
	if reasons := IsValidPathSegmentName(resourceName); len(reasons) != 0 {
		r.err = fmt.Errorf("invalid resource name %q: %v", resourceName, reasons)
		return r
	}
	r.resourceName = resourceName
	return r
}

// Param adds a query parameter, empty names or values are skipped
func (r *restfulClient) Param(paramName, value string) RESTClient {
	if paramName == "" || value == "" {
		return r
	}
	if r.err != nil {
		return r
	}
	if r.params == nil {
		r.params = make(url.Values)
	}
	r.params[paramName] = append(r.params[paramName], value)
	return r
}

func (r *restfulClient) Params(values url.Values) RESTClient {
	for key, list := range values {
		for _, value := range list {
			r.Param(key, value)
		}
	}
	return r
}

func (r *restfulClient) SetHeader(key string, values ...string) RESTClient {
	if r.headers == nil {
		r.headers = http.Header{}
	}
	r.headers.Del(key)
	for _, value := range values {
		r.headers.Add(key, value)
	}
	return r
}

func (r *restfulClient) Body(body interface{}) RESTClient {
	if r.err != nil {
		return r
	}
	if body != nil {
		switch data := body.(type) {
		case string:
			r.body = strings.NewReader(data)
		case []byte:
			r.body = bytes.NewReader(data)
		case io.Reader:
			r.body = data
		default:
			content, err := json.Marshal(data)
			if err != nil {
				r.err = err
				return r
			}
			r.SetHeader("Content-Type", "application/json; charset=utf-8")
			r.body = bytes.NewReader(content)
		}
	}
	return r
}

func (r *restfulClient) Do(ctx context.Context, result interface{}, opts ...Func) error {
	if r.err != nil {
		return errors.WithStack(code.Unexpected(r.err))
	}
	uri := r.URL().String()
	req, err := r.c.Request().Build(ctx, r.verb, uri, r.body, r.headers)
	if err != nil {
		return err
	}
	var resp *http.Response
	if resp, err = r.c.RoundTrip(req); err != nil {
		return roundTripError(err)
	}
	defer resp.Body.Close()
	return r.c.Response().Parse(resp, result, opts...)
}

func (r *restfulClient) DoNop(ctx context.Context, opts ...Func) error {
	return r.Do(ctx, nil, opts...)
}

func (r *restfulClient) URL() *url.URL {
	finalURL := &url.URL{}
	if r.baseURL != nil {
		*finalURL = *r.baseURL
	}
	p := path.Join("/", finalURL.Path, strings.ToLower(r.resource), r.resourceName)
	// Join trims trailing slashes, the backend routes on them
	if r.trailingSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	finalURL.Path = p
	finalURL.RawPath = ""
	query := url.Values{}
	for key, values := range r.params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	finalURL.RawQuery = query.Encode()
	return finalURL
}

// roundTripError tags a round trip failure: a cancelled call is the
// caller's doing, everything else means no response came back
func roundTripError(err error) error {
	var ce *code.Error
	if errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return errors.WithStack(code.Unexpected(err))
	}
	return errors.WithStack(code.Transport(err))
}
