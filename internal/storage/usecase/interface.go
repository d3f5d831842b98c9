package usecase

import (
	"context"

	storageDomain "github.com/allisson/lockbox/internal/storage/domain"
)

// EncryptedStorage orchestrates key retrieval, payload encryption and secure
// local persistence. Every operation is fail-fast: the first failing stage
// aborts the operation and its error is returned unchanged, and no partial
// writes are left behind.
type EncryptedStorage interface {
	// Store encrypts data under the key identified by keyID (fetched with the
	// user secret) and persists the envelope under itemID.
	Store(ctx context.Context, itemID string, data []byte, keyID, secret string) error

	// StoreViaLongSecret is Store with the key fetched via a long secret
	// instead of the user secret.
	StoreViaLongSecret(ctx context.Context, itemID string, data []byte, keyID, longSecret string) error

	// StoreWithNewKey creates a fresh key protected by secret, encrypts data
	// with it and persists the envelope under itemID. The key service answer
	// must carry a long secret; a legacy answer without one aborts the
	// operation before anything is written.
	StoreWithNewKey(ctx context.Context, itemID string, data []byte, secret string) (*storageDomain.KeyCreationResult, error)

	// StoreViaBiometric loads the cached long secret for keyID behind the
	// biometric gate, then behaves as StoreViaLongSecret.
	StoreViaBiometric(ctx context.Context, itemID string, data []byte, keyID string) error

	// StoreViaBiometricWithNewKey creates a fresh key, caches its long secret
	// behind the biometric gate and then encrypts and persists data under
	// itemID. The long secret is persisted before the payload so a failure
	// never leaves an encrypted payload without a way to decrypt it.
	StoreViaBiometricWithNewKey(ctx context.Context, itemID string, data []byte, secret string) (*storageDomain.KeyCreationResult, error)

	// Get loads the envelope stored under itemID and decrypts it with the key
	// identified by keyID (fetched with the user secret).
	Get(ctx context.Context, itemID, keyID, secret string) ([]byte, error)

	// GetViaLongSecret is Get with the key fetched via a long secret.
	GetViaLongSecret(ctx context.Context, itemID, keyID, longSecret string) ([]byte, error)

	// GetViaBiometric loads the cached long secret for keyID behind the
	// biometric gate, fetches the key with it and decrypts the envelope
	// stored under itemID. The long secret that was used is returned
	// alongside the plaintext.
	GetViaBiometric(ctx context.Context, itemID, keyID string) (*storageDomain.BiometricLoadResult, error)

	// EnableBiometric fetches the key identified by keyID with the user
	// secret and caches its long secret behind the biometric gate. A legacy
	// key without a long secret cannot be enrolled.
	EnableBiometric(ctx context.Context, keyID, secret string) error

	// EnableBiometricViaLongSecret caches an already-known long secret for
	// keyID behind the biometric gate without any network round trip.
	EnableBiometricViaLongSecret(keyID, longSecret string) error

	// HasValue reports whether an envelope exists under itemID.
	HasValue(itemID string) bool

	// HasBiometricProtectedValue reports whether an envelope exists under
	// itemID and a biometric-protected long secret is cached for keyID. It
	// never triggers a biometric prompt.
	HasBiometricProtectedValue(itemID, keyID string) bool

	// Remove deletes the envelope stored under itemID. Removing a
	// non-existent item is not an error.
	Remove(itemID string) error

	// RemoveLongSecret deletes the cached long secret for keyID, disabling
	// biometric access for that key. Removing a non-enrolled key is not an
	// error.
	RemoveLongSecret(keyID string) error
}
