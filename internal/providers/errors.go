package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable signals a provider that cannot serve requests.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RetrievalError captures a failed upstream query (network, bad status,
// malformed response). Callers surface it as a degraded state, not a crash.
type RetrievalError struct {
	Provider string
	Endpoint string
	Err      error
}

func (e *RetrievalError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s: fetch %s failed: %v", e.Provider, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Provider, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// AsRetrievalError attempts to unwrap an error into a RetrievalError.
func AsRetrievalError(err error) (*RetrievalError, bool) {
	var rErr *RetrievalError
	if errors.As(err, &rErr) {
		return rErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
