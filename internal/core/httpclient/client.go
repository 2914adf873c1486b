package httpclient

import (
	"net/http"
	"time"

	"cargo-tracker/internal/core/logger"

	"go.uber.org/zap"
)

const userAgent = "cargo-tracker/1.0"

// LoggingRoundTripper logs outbound calls and stamps default headers.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Headers are added to every request that does not already set them.
	Headers map[string]string
}

// RoundTrip executes the request and logs details. Query strings are left out
// of the log because gateway URLs can carry credentials.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	req = req.Clone(req.Context())
	for k, v := range lrt.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	target := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
			Headers: map[string]string{"User-Agent": userAgent},
		},
		Timeout: timeout,
	}
}
