package client

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"areaadmin/pkg/code"
)

// Func inspects a response before its body is decoded
type Func func(*http.Response) error

// DefaultFunc rejects every non-2xx response
var DefaultFunc = []Func{StatusFunc()}

// StatusFunc turns a status outside expect (2xx when empty) into a
// code.KindHTTP error carrying the response body
func StatusFunc(expect ...int) Func {
	return func(resp *http.Response) error {
		if accepted(resp.StatusCode, expect) {
			return nil
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.WithStack(code.Transport(err))
		}
		e := code.HTTP(resp.StatusCode, body)
		if text := reasonPhrase(resp); text != "" {
			e.Status = text
		}
		return errors.WithStack(e)
	}
}

// reasonPhrase is the text after the code in a status line like "404 Not Found"
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

func accepted(statusCode int, expect []int) bool {
	if len(expect) == 0 {
		return statusCode >= 200 && statusCode < 300
	}
	for _, c := range expect {
		if c == statusCode {
			return true
		}
	}
	return false
}
