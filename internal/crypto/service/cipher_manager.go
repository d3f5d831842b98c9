package service

import (
	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

// cipherManager implements CipherManager for the supported envelope methods.
type cipherManager struct{}

// NewCipherManager creates a new CipherManager instance.
func NewCipherManager() CipherManager {
	return &cipherManager{}
}

// CreateCipher creates a Cipher for the specified method keyed with key.
// Returns cryptoDomain.ErrUnsupportedMethod for methods outside the closed
// {aes-gcm, aes-cbc-pkcs7} set.
func (m *cipherManager) CreateCipher(key []byte, method cryptoDomain.Method) (Cipher, error) {
	switch method {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.AESCBCPKCS7:
		return NewAESCBC(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedMethod
	}
}
