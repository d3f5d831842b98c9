package client

import (
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
)

// The status-code mapping is part of the wire contract; this table must not drift.
func TestMapStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected error
	}{
		{"offline pseudo-code", -1009, keyserviceDomain.ErrPotentiallyNoInternet},
		{"other negative code", -1234, keyserviceDomain.ErrBadInternet},
		{"401 bad password", 401, keyserviceDomain.ErrBadPassword},
		{"204 key locked", 204, keyserviceDomain.ErrKeyLocked},
		{"403 key locked", 403, keyserviceDomain.ErrKeyLocked},
		{"404 key missing", 404, keyserviceDomain.ErrKeyMissing},
		{"500 unable to create key", 500, keyserviceDomain.ErrUnableToCreateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, MapStatusCode(tt.code, nil), tt.expected)
		})
	}

	t.Run("unknown code without message", func(t *testing.T) {
		err := MapStatusCode(600, nil)

		var unknown *keyserviceDomain.UnknownError
		require.ErrorAs(t, err, &unknown)
		require.NotNil(t, unknown.Code)
		assert.Equal(t, 600, *unknown.Code)
		assert.Nil(t, unknown.Message)
	})

	t.Run("unknown code with message", func(t *testing.T) {
		message := "teapot"
		err := MapStatusCode(418, &message)

		var unknown *keyserviceDomain.UnknownError
		require.ErrorAs(t, err, &unknown)
		require.NotNil(t, unknown.Code)
		assert.Equal(t, 418, *unknown.Code)
		require.NotNil(t, unknown.Message)
		assert.Equal(t, "teapot", *unknown.Message)
	})
}

func TestMapTransportError(t *testing.T) {
	t.Run("nil error yields unknown with no detail", func(t *testing.T) {
		err := mapTransportError(nil)

		var unknown *keyserviceDomain.UnknownError
		require.ErrorAs(t, err, &unknown)
		assert.Nil(t, unknown.Code)
		assert.Nil(t, unknown.Message)
	})

	t.Run("dns failure maps to potentially no internet", func(t *testing.T) {
		err := mapTransportError(&net.DNSError{Err: "no such host", Name: "keys.example.com"})
		assert.ErrorIs(t, err, keyserviceDomain.ErrPotentiallyNoInternet)
	})

	t.Run("network unreachable maps to potentially no internet", func(t *testing.T) {
		err := mapTransportError(&net.OpError{Op: "dial", Err: syscall.ENETUNREACH})
		assert.ErrorIs(t, err, keyserviceDomain.ErrPotentiallyNoInternet)
	})

	t.Run("generic transport failure maps to bad internet", func(t *testing.T) {
		err := mapTransportError(&net.OpError{Op: "dial", Err: syscall.ECONNREFUSED})
		assert.ErrorIs(t, err, keyserviceDomain.ErrBadInternet)
	})
}
