// Package service implements the ciphertext envelope codec.
// Ciphers produce self-describing envelopes (IV/nonce prepended to the
// ciphertext) so decryption needs only the raw key and the envelope bytes.
package service

import (
	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

// Cipher defines the interface for envelope encryption with a fixed key.
type Cipher interface {
	// Encrypt encrypts plaintext and returns the full envelope.
	// A fresh random IV/nonce is generated per call and embedded in the envelope.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt splits the envelope and returns the plaintext.
	// Any authentication, format or padding failure surfaces as
	// cryptoDomain.ErrDecryptionFailed, never as garbage plaintext.
	Decrypt(envelope []byte) ([]byte, error)
}

// CipherManager defines the interface for creating Cipher instances.
type CipherManager interface {
	// CreateCipher creates a Cipher for the specified method keyed with key.
	CreateCipher(key []byte, method cryptoDomain.Method) (Cipher, error)
}
