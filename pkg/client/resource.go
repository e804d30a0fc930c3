package client

import "net/http"

type IRequest interface {
	AddEndpoint(endpoint string) IRequest
	AddPath(path string) IRequest
	To() Transport
}

// NewResource binds t to an endpoint and an optional resource path
func NewResource(t Transport) IRequest {
	return &resource{t: t}
}

type resource struct {
	t        Transport
	resource string
	endpoint string
}

func (r *resource) AddEndpoint(endpoint string) IRequest {
	return &resource{
		t:        r.t,
		resource: r.resource,
		endpoint: endpoint,
	}
}

func (r *resource) AddPath(path string) IRequest {
	return &resource{
		t:        r.t,
		resource: path,
		endpoint: r.endpoint,
	}
}

func (r *resource) To() Transport {
	return &fixTransport{
		t:        r.t,
		resource: r.resource,
		endpoint: r.endpoint,
	}
}

type fixTransport struct {
	t        Transport
	resource string
	endpoint string
}

func (t *fixTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	return t.t.RoundTrip(request)
}

func (t *fixTransport) Request() Requester {
	return t.t.Request()
}

func (t *fixTransport) Response() Response {
	return t.t.Response()
}

func (t *fixTransport) Method(method string) RESTClient {
	c := NewRESTClient(t.t, method).Endpoints(t.endpoint)
	if t.resource == "" {
		return c
	}
	return c.Resource(t.resource)
}
