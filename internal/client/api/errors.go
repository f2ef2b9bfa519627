package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport-level failures (connection refused,
// timeout) where no response was received at all.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the remote service. Detail carries the
// "detail" field of the error payload when the service provided one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// ErrorDetail extracts the service-provided detail message from err,
// or "" if err is not an *Error or carries no detail.
func ErrorDetail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
