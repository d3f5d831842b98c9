// Package domain defines the key service data transfer objects and the error
// taxonomy shared by the key service client and the storage orchestrator.
package domain

import (
	"encoding/base64"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

// KeyModel is the result of a successful key service call.
//
// Constructed fresh per network response and never mutated. The model itself
// is not persisted; only ciphertext derived from Key and, optionally, the
// LongSecret are ever written to secure storage.
type KeyModel struct {
	// KeyID is the server-assigned identifier for the key. It is stable across
	// calls and is used to re-derive the same encryption key later.
	KeyID string

	// Key is the base64-encoded raw symmetric key material. The server always
	// returns 128-bit keys for the CBC construction; other constructions
	// permit 256-bit.
	Key string

	// LongSecret is an opaque high-entropy token returned alongside a freshly
	// created (or secret-unlocked) key. Knowledge of the long secret is
	// equivalent to knowledge of the secret for key retrieval. Nil on
	// responses from legacy server deployments.
	LongSecret *string
}

// DecodeKey decodes the base64 key material.
// Returns cryptoDomain.ErrInvalidEncryptionKey if the key is not valid
// base64, so cryptographic operations fail with a typed error instead of
// crashing on malformed server data.
func (k *KeyModel) DecodeKey() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(k.Key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidEncryptionKey
	}
	return raw, nil
}

// HasLongSecret reports whether the response carried a long secret.
func (k *KeyModel) HasLongSecret() bool {
	return k.LongSecret != nil && *k.LongSecret != ""
}
