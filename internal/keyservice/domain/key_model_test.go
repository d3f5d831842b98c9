package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

func TestKeyModel_DecodeKey(t *testing.T) {
	t.Run("valid base64", func(t *testing.T) {
		raw := []byte("0123456789abcdef")
		model := KeyModel{KeyID: "k1", Key: base64.StdEncoding.EncodeToString(raw)}

		decoded, err := model.DecodeKey()
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	})

	t.Run("invalid base64", func(t *testing.T) {
		model := KeyModel{KeyID: "k1", Key: "!!! not base64 !!!"}

		_, err := model.DecodeKey()
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncryptionKey)
	})
}

func TestKeyModel_HasLongSecret(t *testing.T) {
	longSecret := "ls1"
	empty := ""

	assert.True(t, (&KeyModel{LongSecret: &longSecret}).HasLongSecret())
	assert.False(t, (&KeyModel{LongSecret: &empty}).HasLongSecret())
	assert.False(t, (&KeyModel{}).HasLongSecret())
}
