package amber

import (
	"errors"
	"fmt"
	"time"

	"github.com/amberelectric/amber-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrRateLimited matches both rate-limit error kinds, whether retries
	// were disabled or the retry budget was exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrDeserialization is returned when a response body does not match
	// the expected shape; it usually indicates API contract drift.
	ErrDeserialization = errors.New("failed to deserialize response")
)

// AmberError is implemented by all SDK errors.
type AmberError interface {
	error
	AmberError() // marker method
}

// TransportError represents a network-level failure: DNS, connection, TLS,
// timeout or caller-side cancellation. The client does not retry transport
// failures; callers may.
type TransportError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AmberError implements the AmberError interface.
func (e *TransportError) AmberError() {}

// DeserializationError indicates a successful response whose body is not
// valid JSON or does not match the expected tagged shape. It is fatal for
// the call.
type DeserializationError struct {
	Err error
	URL string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// AmberError implements the AmberError interface.
func (e *DeserializationError) AmberError() {}

// RateLimitExceededError is returned when a request hits the rate limit
// and automatic retries are disabled. RetryAfter is the wait suggested by
// the server before trying again.
type RateLimitExceededError struct {
	RetryAfter time.Duration
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitExceededError) Is(target error) bool {
	return target == ErrRateLimited
}

// AmberError implements the AmberError interface.
func (e *RateLimitExceededError) AmberError() {}

// RateLimitExhaustedError is returned when the configured retry budget was
// spent on consecutive rate-limited responses. Attempts is the number of
// retries made; RetryAfter is the server's last suggested wait.
type RateLimitExhaustedError struct {
	Attempts   int
	RetryAfter time.Duration
}

func (e *RateLimitExhaustedError) Error() string {
	return fmt.Sprintf("rate limit retries exhausted after %d attempts, retry after %s", e.Attempts, e.RetryAfter)
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitExhaustedError) Is(target error) bool {
	return target == ErrRateLimited
}

// AmberError implements the AmberError interface.
func (e *RateLimitExhaustedError) AmberError() {}

// UnexpectedStatusError represents any non-2xx response other than 429.
// Body carries the response text best-effort.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// AmberError implements the AmberError interface.
func (e *UnexpectedStatusError) AmberError() {}

// wrapError converts internal API errors to public errors. This keeps the
// internal package out of the public surface while preserving every field,
// so errors.Is and errors.As work with the exported types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{
			Err:     transportErr.Err,
			URL:     transportErr.URL,
			Attempt: transportErr.Attempt,
		}
	}

	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return &DeserializationError{
			Err: decodeErr.Err,
			URL: decodeErr.URL,
		}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		if rateErr.Exhausted {
			return &RateLimitExhaustedError{
				Attempts:   rateErr.Attempts,
				RetryAfter: rateErr.RetryAfter,
			}
		}
		return &RateLimitExceededError{RetryAfter: rateErr.RetryAfter}
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return &UnexpectedStatusError{
			StatusCode: statusErr.StatusCode,
			Body:       statusErr.Body,
		}
	}

	return err
}
