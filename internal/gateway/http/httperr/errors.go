package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from an upstream service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned %d", e.Code)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.Code, e.Body)
}

func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == code
	}
	return false
}

// IsRetryable reports whether the call is worth repeating: transport
// failures and throttling or transient upstream statuses. Other HTTP
// statuses are taken as definitive answers.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return true
	}

	switch statusErr.Code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func StatusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%d", statusErr.Code)
	}
	return "transport_error"
}
