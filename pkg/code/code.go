package code

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind tags the failure class of an Error.
type Kind string

const (
	// KindValidation client side check failed, nothing was sent
	KindValidation Kind = "validation"
	// KindHTTP server answered with a non-2xx status
	KindHTTP Kind = "http"
	// KindTransport request was sent but no response came back
	KindTransport Kind = "transport"
	// KindUnexpected anything else while building, sending or decoding
	KindUnexpected Kind = "unexpected"
)

// Error is the tagged failure reported by every area operation.
type Error struct {
	Kind Kind
	// StatusCode and Status are only set for KindHTTP
	StatusCode int
	Status     string
	// Body raw response body of a KindHTTP error
	Body []byte
	// Fields field keyed messages of a KindValidation error
	Fields map[string][]string
	Err    error
}

// Validation builds a KindValidation error from field keyed messages
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

// HTTP builds a KindHTTP error, statusText falls back to the canonical text
func HTTP(statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       body,
	}
}

// Transport builds a KindTransport error
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// Unexpected builds a KindUnexpected error
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("kind:%s,status_code:%d,status:%s,body:%s", e.Kind, e.StatusCode, e.Status, e.Body)
	case KindValidation:
		return fmt.Sprintf("kind:%s,fields:%v", e.Kind, e.Fields)
	default:
		return fmt.Sprintf("kind:%s,error:%v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on StatusCode when the target carries one
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// WithStatusCode copy e with another status code
func (e *Error) WithStatusCode(statusCode int) *Error {
	ec := *e
	ec.StatusCode = statusCode
	ec.Status = http.StatusText(statusCode)
	return &ec
}

// From returns the *Error inside err, anything unknown is KindUnexpected
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Unexpected(err)
}

// KindOf reports the Kind of err
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return From(err).Kind
}
