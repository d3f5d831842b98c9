package domain

import (
	"fmt"

	"github.com/allisson/lockbox/internal/errors"
)

// Key service error definitions.
//
// These errors cover both HTTP-level answers from the key service and
// transport-level failures reaching it. They wrap standard errors from
// internal/errors so callers can branch on either the specific condition or
// the broader category.
var (
	// ErrBadPassword indicates the secret was rejected by the key service (HTTP 401).
	ErrBadPassword = errors.Wrap(errors.ErrUnauthorized, "bad password")

	// ErrKeyLocked indicates the key is locked after too many failed attempts
	// (HTTP 204 or 403).
	ErrKeyLocked = errors.Wrap(errors.ErrLocked, "key locked")

	// ErrKeyMissing indicates no key exists for the given key id (HTTP 404).
	ErrKeyMissing = errors.Wrap(errors.ErrNotFound, "key missing")

	// ErrUnableToCreateKey indicates the key service failed to create a key (HTTP 500).
	ErrUnableToCreateKey = errors.Wrap(errors.ErrInternal, "unable to create key")

	// ErrBadInternet indicates a transport-level failure reaching the key service.
	ErrBadInternet = errors.Wrap(errors.ErrUnavailable, "bad internet connection")

	// ErrPotentiallyNoInternet indicates the device appears to be offline.
	ErrPotentiallyNoInternet = errors.Wrap(errors.ErrUnavailable, "potentially no internet connection")

	// ErrUnableToDecode indicates a 200 response whose body failed to parse as
	// a key model.
	ErrUnableToDecode = errors.Wrap(errors.ErrInvalidInput, "unable to decode key service response")

	// ErrNoLongSecret indicates a legacy key service response lacking the long
	// secret. Operations that need to offer biometric enrollment must not
	// proceed without it.
	ErrNoLongSecret = errors.Wrap(errors.ErrInvalidInput, "response has no long secret")

	// ErrUnknown is the sentinel wrapped by UnknownError values.
	ErrUnknown = errors.New("unknown key service error")
)

// UnknownError carries the raw status code and server message of a response
// that matched no known mapping. Both fields are optional: a transport
// failure with no error detail at all yields an UnknownError with neither.
type UnknownError struct {
	Code    *int
	Message *string
}

// Error implements the error interface.
func (e *UnknownError) Error() string {
	switch {
	case e.Code != nil && e.Message != nil:
		return fmt.Sprintf("unknown key service error: code=%d message=%q", *e.Code, *e.Message)
	case e.Code != nil:
		return fmt.Sprintf("unknown key service error: code=%d", *e.Code)
	case e.Message != nil:
		return fmt.Sprintf("unknown key service error: message=%q", *e.Message)
	default:
		return "unknown key service error"
	}
}

// Unwrap links UnknownError values to the ErrUnknown sentinel.
func (e *UnknownError) Unwrap() error {
	return ErrUnknown
}
