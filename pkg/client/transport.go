package client

import (
	"net/http"
)

// Transport carries everything a RESTClient needs to talk to one backend:
// how requests are built, the round tripper chain and the response decoder.
type Transport interface {
	http.RoundTripper
	Request() Requester
	Response() Response

	Method(verb string) RESTClient
}

type Transporter struct {
	req   Requester
	chain http.RoundTripper
	resp  Response
}

func NewTransporter(req Requester, chain http.RoundTripper, resp Response) Transport {
	if req == nil {
		req = JSONRequest{}
	}
	if resp == nil {
		resp = ResponseHandler{}
	}
	return &Transporter{req: req, chain: chain, resp: resp}
}

func (t *Transporter) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.chain.RoundTrip(req)
}

func (t *Transporter) Request() Requester {
	return t.req
}

func (t *Transporter) Response() Response {
	return t.resp
}

func (t *Transporter) Method(verb string) RESTClient {
	return NewRESTClient(t, verb)
}
