package client

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/http2curl"

	"areaadmin/pkg/logger"
)

// CurlRoundTripper logs every exchange as a curl command at debug level
func CurlRoundTripper(next http.RoundTripper) *CustomTransporter {
	return &CustomTransporter{
		Mask:         NewHeaderMasker(defaultMasked...),
		RoundTripper: next,
	}
}

type CustomTransporter struct {
	Mask         func(string) string
	RoundTripper http.RoundTripper
}

func (c *CustomTransporter) RoundTrip(req *http.Request) (*http.Response, error) {
	log := logger.From(req.Context())
	if !log.Core().Enabled(zapcore.DebugLevel) {
		return c.RoundTripper.RoundTrip(req)
	}
	content := &TransportContent{}
	// print the curl command to ease debugging
	if curl, err := http2curl.GetCurlCommand(req); err == nil {
		content.Request = curl.String()
	}
	start := time.Now()
	defer func() {
		log.Debug("call request end",
			zap.Int64("cost_ms", time.Since(start).Milliseconds()),
			zap.String("content", FormatContent(content, c.Mask)))
	}()
	resp, err := c.RoundTripper.RoundTrip(req)
	if err != nil {
		content.Status = err.Error()
		return nil, err
	}
	content.Status = resp.Status
	if resp.StatusCode == http.StatusNoContent {
		return resp, nil
	}
	response, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	content.Response = string(response)
	// Reset resp.Body so it can be use again
	resp.Body = io.NopCloser(bytes.NewBuffer(response))
	return resp, nil
}
