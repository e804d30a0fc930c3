package client

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/pkg/errors"

	"areaadmin/pkg/code"
	"areaadmin/pkg/json"
)

type Response interface {
	Parse(resp *http.Response, result interface{}, opts ...Func) error
}

type ResponseHandler struct {
}

func (o ResponseHandler) Parse(resp *http.Response, result interface{}, opts ...Func) error {
	if len(opts) == 0 {
		opts = append(opts, DefaultFunc...)
	}
	for _, opt := range opts {
		if err := opt(resp); err != nil {
			return err
		}
	}
	if resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 || result == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := o.checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return err
	}
	if err := json.DecodeUseNumber(resp.Body, result); err != nil {
		if errors.Is(err, io.EOF) {
			// chunked and empty
			return nil
		}
		return errors.WithStack(code.Unexpected(err))
	}
	return nil
}

func (o ResponseHandler) checkContentType(contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return errors.WithStack(code.Unexpected(err))
	}
	if mediaType != "application/json" {
		return errors.WithStack(code.Unexpected(fmt.Errorf("can't parse content-type %s", contentType)))
	}
	return nil
}
