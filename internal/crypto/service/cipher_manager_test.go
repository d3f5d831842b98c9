package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

func TestNewCipherManager(t *testing.T) {
	manager := NewCipherManager()
	assert.NotNil(t, manager)
}

func TestCipherManager_CreateCipher(t *testing.T) {
	manager := NewCipherManager()
	key := RandomBytes(16)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
		require.NoError(t, err)

		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
	})

	t.Run("create AES-CBC cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.AESCBCPKCS7)
		require.NoError(t, err)

		_, ok := cipher.(*AESCBCCipher)
		assert.True(t, ok, "cipher should be of type *AESCBCCipher")
	})

	t.Run("create cipher with unsupported method", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Method("unsupported"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedMethod)
	})

	t.Run("create cipher with invalid key", func(t *testing.T) {
		_, err := manager.CreateCipher(make([]byte, 7), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncryptionKey)
	})
}

// An envelope produced under one method must never decrypt under the other.
func TestCipherManager_CrossMethodDecryptionFails(t *testing.T) {
	manager := NewCipherManager()
	key := RandomBytes(16)
	plaintext := []byte("hello")

	gcm, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
	require.NoError(t, err)
	cbc, err := manager.CreateCipher(key, cryptoDomain.AESCBCPKCS7)
	require.NoError(t, err)

	t.Run("CBC envelope under GCM", func(t *testing.T) {
		envelope, err := cbc.Encrypt(plaintext)
		require.NoError(t, err)

		_, err = gcm.Decrypt(envelope)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("GCM envelope under CBC", func(t *testing.T) {
		envelope, err := gcm.Encrypt(plaintext)
		require.NoError(t, err)

		_, err = cbc.Decrypt(envelope)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
