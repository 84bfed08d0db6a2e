package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader        = "X-Trace-ID"
	defaultClientTimeout = 10 * time.Second
)

// HTTPClient is a resty.Client bound to one server.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080")
//	resp, err := client.R().Get("/health_check")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client sending relative requests to baseURL. Each
// call creates an independent connection pool.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithTraceID makes every following request carry traceID, so server logs
// of those requests can be correlated with the caller.
func (c *HTTPClient) WithTraceID(traceID string) *HTTPClient {
	c.SetHeader(traceIDHeader, traceID)
	return c
}
