package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
)

// AESCBCCipher implements the Cipher interface using AES in CBC mode with
// PKCS#7 padding.
//
// Envelope layout: IV (16 bytes) || padded ciphertext. CBC provides no
// authentication, so a wrong key or tampered envelope is detected only
// through block-alignment and padding checks; all such failures collapse
// into cryptoDomain.ErrDecryptionFailed to avoid a padding oracle.
type AESCBCCipher struct {
	block cipher.Block
}

// NewAESCBC creates a new AES-CBC cipher keyed with key.
// Accepts 128- or 256-bit keys; the key service currently issues 128-bit
// keys for this construction.
func NewAESCBC(key []byte) (*AESCBCCipher, error) {
	if len(key) != 16 && len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidEncryptionKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidEncryptionKey
	}

	return &AESCBCCipher{block: block}, nil
}

// Encrypt pads plaintext with PKCS#7, encrypts it under a fresh random IV and
// prepends the IV to form the envelope.
func (a *AESCBCCipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, aes.BlockSize)

	envelope := make([]byte, aes.BlockSize+len(padded))
	iv := RandomBytes(aes.BlockSize)
	copy(envelope, iv)

	cipher.NewCBCEncrypter(a.block, iv).CryptBlocks(envelope[aes.BlockSize:], padded)
	return envelope, nil
}

// Decrypt splits the IV from the envelope, decrypts the remaining blocks and
// strips the PKCS#7 padding.
func (a *AESCBCCipher) Decrypt(envelope []byte) ([]byte, error) {
	// Minimum envelope: IV plus one full padded block.
	if len(envelope) < 2*aes.BlockSize || (len(envelope)-aes.BlockSize)%aes.BlockSize != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	iv := envelope[:aes.BlockSize]
	ciphertext := envelope[aes.BlockSize:]

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(a.block, iv).CryptBlocks(padded, ciphertext)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// pkcs7Pad appends padding so len(result) is a multiple of blockSize.
// A full block of padding is added when the input is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding in constant time over the
// padding bytes.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, false
	}

	valid := 1
	for _, b := range data[len(data)-padLen:] {
		valid &= subtle.ConstantTimeByteEq(b, byte(padLen))
	}
	if valid != 1 {
		return nil, false
	}

	return data[:len(data)-padLen], true
}
