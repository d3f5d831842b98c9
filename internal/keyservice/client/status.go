package client

import (
	"errors"
	"net"
	"net/http"
	"syscall"

	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// Pseudo status codes for failures that produced no HTTP response. Negative
// by convention so they can never collide with real HTTP status codes.
const (
	// codeOffline marks transport failures that indicate the device is offline.
	codeOffline = -1009

	// codeTransportFailure marks all other transport-level failures.
	codeTransportFailure = -1
)

// MapStatusCode converts a key service HTTP status code, or a negative
// transport pseudo-code, into the corresponding typed error.
//
// The mapping is part of the wire contract and must stay exact:
//
//	-1009        -> ErrPotentiallyNoInternet
//	other < 0    -> ErrBadInternet
//	401          -> ErrBadPassword
//	204, 403     -> ErrKeyLocked
//	404          -> ErrKeyMissing
//	500          -> ErrUnableToCreateKey
//	anything else -> UnknownError{code, message}
func MapStatusCode(code int, message *string) error {
	if code < 0 {
		if code == codeOffline {
			return keyserviceDomain.ErrPotentiallyNoInternet
		}
		return keyserviceDomain.ErrBadInternet
	}

	switch code {
	case http.StatusUnauthorized:
		return keyserviceDomain.ErrBadPassword
	case http.StatusNoContent, http.StatusForbidden:
		return keyserviceDomain.ErrKeyLocked
	case http.StatusNotFound:
		return keyserviceDomain.ErrKeyMissing
	case http.StatusInternalServerError:
		return keyserviceDomain.ErrUnableToCreateKey
	default:
		return &keyserviceDomain.UnknownError{Code: &code, Message: message}
	}
}

// mapTransportError maps a failure that produced no HTTP response.
// A nil error means no detail is available at all, yielding an UnknownError
// with neither code nor message.
func mapTransportError(err error) error {
	if err == nil {
		return &keyserviceDomain.UnknownError{}
	}
	return MapStatusCode(transportErrorCode(err), nil)
}

// transportErrorCode derives the negative pseudo-code for a transport error.
// DNS resolution failures and unreachable-network conditions are the
// strongest offline signals this layer can observe.
func transportErrorCode(err error) int {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return codeOffline
	}
	if errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.ENETDOWN) {
		return codeOffline
	}
	return codeTransportFailure
}
