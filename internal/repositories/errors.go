package repositories

import (
	"fmt"
	"net/http"
)

// NetworkError is a failure below HTTP: DNS, connect, timeout, reset or a
// cancelled context. The message never includes the request URL, which
// carries the API key.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("network error: %v", e.Cause)
	}
	return fmt.Sprintf("network error: %s: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

// TransportError is a response with a non-2xx status.
type TransportError struct {
	StatusCode    int
	StatusMessage string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.StatusMessage)
}

// NotFound reports the provider's answer for an unknown city.
func (e *TransportError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError is a 2xx response whose body is not a forecast document.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// EmptyResultError is a successful response that carries no forecast.
type EmptyResultError struct {
	City string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no forecast data available for %q", e.City)
}
