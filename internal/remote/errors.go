package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized means the credential was rejected; the caller should
	// re-authenticate. Local data is always retained.
	ErrUnauthorized = errors.New("credential rejected by remote store")
	// ErrNotFound means the record no longer exists server-side
	ErrNotFound = errors.New("record not found on remote store")
	// ErrValidation means the remote store rejected the request shape
	ErrValidation = errors.New("request rejected by remote store")
)

// TransientError marks failures (timeouts, unreachable host, 5xx) that
// degrade to the last-known-good local snapshot and are never surfaced as
// blocking errors.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient remote failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether the failure should be treated as temporary
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// classifyStatus maps a non-2xx response to the error taxonomy
func classifyStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusBadRequest:
		return ErrValidation
	default:
		return &TransientError{Err: fmt.Errorf("remote store returned status %d", code)}
	}
}
