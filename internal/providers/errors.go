package providers

import (
	"errors"
	"fmt"
)

// transientStatuses are the upstream response codes worth retrying.
var transientStatuses = map[int]struct{}{
	408: {},
	409: {},
	429: {},
	500: {},
	502: {},
	503: {},
	504: {},
}

// NetworkError captures timeouts and connection failures. Always retryable.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError captures a non-2xx upstream status. Retryable only for the
// transient subset.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// MalformedResponseError captures a body that could not be parsed as the
// expected format. Never retried.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsTransient reports whether the error is worth another attempt.
func IsTransient(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		_, ok := transientStatuses[upErr.StatusCode]
		return ok
	}
	return false
}
