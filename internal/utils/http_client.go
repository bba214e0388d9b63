package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// LoggingTransport implements http.RoundTripper and logs outbound requests
// and responses. Used by the external adapters (AI parsing, email).
type LoggingTransport struct {
	Transport http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody := snapshotBody(&req.Body)
	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		zap.L().Error("outbound http request failed",
			zap.String("method", req.Method),
			zap.Stringer("url", req.URL),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	respBody := snapshotBody(&resp.Body)
	zap.L().Debug("outbound http request",
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL),
		zap.String("status", resp.Status),
		zap.Duration("duration", duration),
		zap.String("request_body", reqBody),
		zap.String("response_body", respBody))

	return resp, nil
}

// snapshotBody reads and restores a body, returning a truncated copy for
// logging.
func snapshotBody(body *io.ReadCloser) string {
	if body == nil || *body == nil {
		return ""
	}
	bodyBytes, _ := io.ReadAll(*body)
	*body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bodyBytes) > maxLoggedBody {
		return string(bodyBytes[:maxLoggedBody]) + "...(truncated)"
	}
	return string(bodyBytes)
}

// NewHTTPClient returns a new http.Client with logging enabled.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
