// Package securestorage defines the capability set the encrypted storage
// layer requires from a secure local key-value store (platform keychain or
// equivalent), plus reference implementations.
//
// The core never implements the biometric gate itself; it relies on the
// implementation to guarantee that biometric-protected items are unreadable
// without a successful biometric (or device-passcode-fallback) challenge.
package securestorage

// SecureStorage is the capability interface for the secure local store.
//
// Calls that trigger a biometric challenge block until the user responds or
// cancels; implementations must not be invoked from a single-threaded UI
// loop. Existence checks never trigger a challenge.
type SecureStorage interface {
	// Store persists data under itemID.
	Store(itemID string, data []byte) error

	// StoreBiometricProtected persists data under itemID such that it is
	// unreadable without a successful biometric challenge.
	StoreBiometricProtected(itemID string, data []byte) error

	// Get loads the data stored under itemID.
	Get(itemID string) ([]byte, error)

	// GetBiometricProtected loads biometric-protected data, triggering the
	// platform's biometric challenge. A cancelled or failed challenge
	// surfaces as ErrAuthenticationFailed, not as a generic load failure.
	GetBiometricProtected(itemID string) ([]byte, error)

	// HasValue reports whether an item exists under itemID.
	HasValue(itemID string) bool

	// HasBiometricProtectedValue reports whether a biometric-protected item
	// exists under itemID. The check itself never triggers a biometric
	// prompt (fail silently rather than prompt).
	HasBiometricProtectedValue(itemID string) bool

	// Remove deletes the item stored under itemID, including any
	// biometric-protected variant. Removing a non-existent item is not an
	// error.
	Remove(itemID string) error
}
