package payway

import (
	"fmt"
	"strconv"
)

// =====================================================
// ERROR TYPES
// =====================================================

// GatewayError is returned when PayWay responded but indicated failure.
// It carries the gateway's own code, status and body so callers can branch
// programmatically. 5xx statuses are typically retryable, 4xx are not; the
// SDK itself never retries.
type GatewayError struct {
	Message    string
	ErrorCode  string         // gateway error code from the response body, if any
	StatusCode int            // HTTP status of the response
	Details    map[string]any // full decoded response body
}

func (e *GatewayError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("payway: [%s] %s", e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("payway: %s", e.Message)
}

// TransportError is returned when no usable response was obtained at all:
// either the request could not be dispatched, or it was sent and no response
// arrived. It wraps the underlying transport failure for diagnostics.
type TransportError struct {
	GatewayError
	Err error // underlying transport failure
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payway: %s (%v)", e.Message, e.Err)
	}
	return fmt.Sprintf("payway: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newRequestError reports a request that could not be constructed or sent.
func newRequestError(err error) *TransportError {
	return &TransportError{
		GatewayError: GatewayError{Message: fmt.Sprintf("Request error: %v", err)},
		Err:          err,
	}
}

// newNoResponseError reports a request that was dispatched but produced no
// response (connection reset, timeout before response, DNS failure).
func newNoResponseError(err error) *TransportError {
	return &TransportError{
		GatewayError: GatewayError{Message: "Network error: No response received from PayWay API"},
		Err:          err,
	}
}

// newGatewayError maps an error-status response body into a GatewayError.
// Message falls back to "Unknown error" when the body carries none.
func newGatewayError(statusCode int, details map[string]any) *GatewayError {
	ge := &GatewayError{
		Message:    "Unknown error",
		StatusCode: statusCode,
		Details:    details,
	}
	if msg, ok := details["message"].(string); ok && msg != "" {
		ge.Message = msg
	}
	switch code := details["code"].(type) {
	case string:
		ge.ErrorCode = code
	case float64:
		ge.ErrorCode = strconv.FormatFloat(code, 'f', -1, 64)
	}
	return ge
}
