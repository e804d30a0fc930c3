package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var errRetryStatus = errors.New("retryable status")

// OnRetryCondition is a function to determine whether to retry
func OnRetryCondition(resp *http.Response, err error) bool {
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// connection dropped mid exchange
			return true
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return false
		default:
			var netErr net.Error
			return errors.As(err, &netErr)
		}
	}
	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return true
	default:
	}
	return false
}

// Retry repeats a read up to attempts more times while OnRetryCondition
// holds, waiting interval between tries. Mutations are sent once.
func Retry(next http.RoundTripper, attempts int, interval time.Duration) http.RoundTripper {
	return &retryRoundTripper{
		attempts:     attempts,
		interval:     interval,
		RoundTripper: next,
	}
}

type retryRoundTripper struct {
	attempts int
	interval time.Duration
	http.RoundTripper
}

func (r *retryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if r.attempts <= 0 || !idempotent(req.Method) {
		return r.RoundTripper.RoundTrip(req)
	}
	var (
		last    *http.Response
		attempt int
	)
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.interval), uint64(r.attempts)),
		req.Context())
	operation := func() error {
		out := req
		if attempt > 0 {
			if last != nil {
				_, _ = io.Copy(io.Discard, last.Body)
				last.Body.Close()
				last = nil
			}
			var err error
			if out, err = rewind(req); err != nil {
				return backoff.Permanent(err)
			}
		}
		attempt++
		resp, err := r.RoundTripper.RoundTrip(out)
		if !OnRetryCondition(resp, err) {
			if err != nil {
				return backoff.Permanent(err)
			}
			last = resp
			return nil
		}
		if err != nil {
			return err
		}
		last = resp
		return errRetryStatus
	}
	err := backoff.Retry(operation, b)
	if last != nil && (err == nil || errors.Is(err, errRetryStatus)) {
		return last, nil
	}
	if err == nil {
		err = errRetryStatus
	}
	return nil, err
}

// idempotent reports whether method is a read that is safe to resend
func idempotent(method string) bool {
	switch method {
	case "", http.MethodGet, http.MethodHead:
		return true
	default:
		return false
	}
}

func rewind(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return out, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body can not be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	out.Body = body
	return out, nil
}
