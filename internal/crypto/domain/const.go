package domain

// Method represents the encryption construction used to produce ciphertext envelopes.
//
// The set is closed: every envelope this library writes is produced by one of
// these two constructions, chosen once at orchestrator construction and applied
// to every encrypt/decrypt call for that instance's lifetime. Switching methods
// after data has been stored makes old envelopes unreadable unless the caller
// tracks which method produced them.
type Method string

const (
	// AESGCM represents the AES-GCM authenticated encryption construction.
	//
	// Envelope layout is the AEAD combined form: nonce (12 bytes) || ciphertext ||
	// authentication tag (16 bytes). Any AES key length (128, 192 or 256 bits)
	// is accepted.
	AESGCM Method = "aes-gcm"

	// AESCBCPKCS7 represents AES in CBC mode with PKCS#7 padding.
	//
	// Envelope layout: IV (16 bytes) || padded ciphertext. Accepts 128- or
	// 256-bit keys; the remote key service currently issues 128-bit keys for
	// this construction. CBC provides no authentication, so decryption failures
	// of tampered envelopes are detected only through padding errors.
	AESCBCPKCS7 Method = "aes-cbc-pkcs7"
)

// ParseMethod converts a method string to a Method.
// Returns ErrUnsupportedMethod if the string names no known construction.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case AESGCM:
		return AESGCM, nil
	case AESCBCPKCS7:
		return AESCBCPKCS7, nil
	default:
		return "", ErrUnsupportedMethod
	}
}
