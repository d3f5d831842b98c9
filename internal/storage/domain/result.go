// Package domain defines the encrypted storage results, identifiers and errors.
package domain

// longSecretPrefix namespaces the biometric long-secret cache inside secure
// storage. It is stable across releases (changing it would orphan every
// enrolled long secret) and distinct from any plausible caller-supplied item
// id.
const longSecretPrefix = "lockbox.longsecret"

// LongSecretItemID derives the secure storage item id caching the long
// secret for keyID. The derivation is deterministic and collision-free
// across key ids.
func LongSecretItemID(keyID string) string {
	return longSecretPrefix + "." + keyID
}

// KeyCreationResult is returned after a new key has been created, so the
// caller can persist the key id for future retrieval and optionally the long
// secret for manual biometric enrollment.
type KeyCreationResult struct {
	KeyID      string
	LongSecret string
}

// BiometricLoadResult is returned after a biometric-gated load. It exposes
// the long secret that was actually used so callers can re-enroll it if
// needed.
type BiometricLoadResult struct {
	Data       []byte
	LongSecret string
}
