package domain

import (
	"github.com/allisson/lockbox/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. Key material never appears
// inside error values.
var (
	// ErrInvalidEncryptionKey indicates the key material is unusable.
	//
	// Returned when the base64 key string from the key service fails to decode,
	// or when the decoded key has a length the chosen construction rejects.
	ErrInvalidEncryptionKey = errors.Wrap(errors.ErrInvalidInput, "invalid encryption key")

	// ErrEncryptionFailed indicates the underlying cipher rejected the input.
	ErrEncryptionFailed = errors.Wrap(errors.ErrInternal, "encryption failed")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Envelope has been tampered with or truncated
	//   - Envelope produced under a different method
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrUnsupportedMethod indicates the requested encryption method is not supported.
	//
	// Supported methods: AESGCM (aes-gcm), AESCBCPKCS7 (aes-cbc-pkcs7).
	ErrUnsupportedMethod = errors.Wrap(errors.ErrInvalidInput, "unsupported encryption method")
)
