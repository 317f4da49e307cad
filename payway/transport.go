package payway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// =====================================================
// TRANSPORT
// =====================================================

// Response is one raw gateway response: the HTTP status plus the undecoded
// body. Error statuses are still responses; only the absence of a response
// is a transport failure.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs the network call for one signed request. The fields
// arrive in transmission order and must be sent in that order.
// Implementations return a Response for every completed HTTP exchange,
// including error statuses, and an error only when no usable response was
// obtained. Custom implementations enable test doubles and custom
// networking stacks; timeouts and retries are the transport's or the
// caller's concern, never the client's.
type Transport interface {
	Send(ctx context.Context, path string, fields []Field) (*Response, error)
}

// HTTPTransport is the default Transport: a multipart/form-data POST client
// bound to the gateway base URL.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTransport creates the default transport with a 30 second timeout.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return NewHTTPTransportWithClient(baseURL, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewHTTPTransportWithClient creates a transport using a caller-supplied
// http.Client, e.g. for custom pooling, proxies or TLS settings.
func NewHTTPTransportWithClient(baseURL string, httpClient *http.Client) *HTTPTransport {
	return &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, path string, fields []Field) (*Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := writer.WriteField(f.Name, stringify(f.Value)); err != nil {
			return nil, newRequestError(fmt.Errorf("write field %s: %w", f.Name, err))
		}
	}
	if err := writer.Close(); err != nil {
		return nil, newRequestError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, &buf)
	if err != nil {
		return nil, newRequestError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, newNoResponseError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNoResponseError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
