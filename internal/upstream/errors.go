package upstream

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout           = errors.New("upstream request timed out")
	ErrMissingCredential = errors.New("upstream credential not configured")
)

// TransientError is a failure expected to clear on retry: rate limiting,
// 5xx responses, overload reported inside a 200 body, timeouts.
type TransientError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transient upstream error (status %d): %s", e.StatusCode, e.Reason)
	}
	return "transient upstream error: " + e.Reason
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// HardError is a failure that retrying will not fix.
type HardError struct {
	StatusCode int
	Message    string
}

func (e *HardError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
	}
	return "upstream error: " + e.Message
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te) || errors.Is(err, ErrTimeout)
}
