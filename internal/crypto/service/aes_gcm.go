package service

import (
	"crypto/aes"
	"crypto/cipher"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

// AESGCMCipher implements the Cipher interface using AES-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption: the envelope carries a 16-byte
// authentication tag, so tampering, truncation and wrong-method input are all
// detected at decryption time instead of producing corrupted plaintext.
//
// Envelope layout (the AEAD combined form):
//
//	nonce (12 bytes) || ciphertext || authentication tag (16 bytes)
//
// Security properties:
//   - Accepts any AES key length (128, 192 or 256 bits)
//   - 12-byte nonce, randomly generated per encryption
//   - Nonce reuse under the same key catastrophically breaks confidentiality
//     and authenticity, so nonces are always drawn fresh from the CSPRNG
//
// Thread safety:
//
//	The cipher instance is stateless beyond its key schedule and safe for
//	concurrent use from multiple goroutines.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-GCM cipher keyed with key.
//
// Returns cryptoDomain.ErrInvalidEncryptionKey if the key length is not a
// valid AES key size.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidEncryptionKey
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidEncryptionKey
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext into a combined-form envelope.
// A unique 12-byte nonce is generated per call and prepended to the sealed data.
func (a *AESGCMCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := RandomBytes(a.aead.NonceSize())

	// Seal appends ciphertext||tag to the nonce, yielding the full envelope.
	return a.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a combined-form envelope.
//
// The authentication tag is verified before any plaintext is returned. A
// truncated envelope, a tampered envelope, a wrong key, or an envelope
// produced under the CBC construction all fail tag verification and surface
// as cryptoDomain.ErrDecryptionFailed.
func (a *AESGCMCipher) Decrypt(envelope []byte) ([]byte, error) {
	nonceSize := a.aead.NonceSize()
	if len(envelope) < nonceSize+a.aead.Overhead() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := a.aead.Open(nil, envelope[:nonceSize], envelope[nonceSize:], nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
