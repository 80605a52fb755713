package api

import (
	"fmt"
	"time"
)

// TransportError represents a network-level failure: DNS, connection, TLS,
// timeout or caller-side cancellation. Transport failures are never retried
// by this layer.
type TransportError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a 2xx response whose body is not valid JSON or does
// not match the expected shape.
type DecodeError struct {
	Err error
	URL string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RateLimitError represents an HTTP 429 that was not absorbed by the retry
// loop: either retries are disabled, or the budget was spent (Exhausted).
// RetryAfter is the server's stated wait before the next attempt.
type RateLimitError struct {
	RetryAfter time.Duration
	Attempts   int
	Exhausted  bool
}

func (e *RateLimitError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("rate limit retries exhausted after %d attempts, retry after %s", e.Attempts, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// StatusError represents any other non-2xx response. Body is best-effort
// response text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
