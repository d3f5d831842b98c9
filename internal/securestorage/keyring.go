package securestorage

import (
	"errors"
	"slices"

	"github.com/99designs/keyring"

	apperrors "github.com/allisson/lockbox/internal/errors"
)

// KeyringStorage is a SecureStorage implementation backed by the platform
// keyring through 99designs/keyring.
//
// Two keyring namespaces are opened: a plain one for payload items and a
// protected one for biometric-gated items. The protected namespace relies on
// the platform backend's user-presence challenge (keychain prompt, or the
// file backend's passphrase prompt where no keychain exists); a declined or
// failed challenge surfaces as ErrAuthenticationFailed.
type KeyringStorage struct {
	plain     keyring.Keyring
	protected keyring.Keyring
}

// NewKeyringStorage opens the two keyring namespaces for serviceName.
//
// promptFunc is invoked by backends that gate access behind a passphrase; it
// stands in for the biometric challenge on platforms without one.
func NewKeyringStorage(serviceName string, promptFunc keyring.PromptFunc) (*KeyringStorage, error) {
	plain, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open keyring")
	}

	protected, err := keyring.Open(keyring.Config{
		ServiceName:      serviceName + ".protected",
		FilePasswordFunc: promptFunc,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open protected keyring")
	}

	return &KeyringStorage{plain: plain, protected: protected}, nil
}

// Store persists data under itemID in the plain namespace.
func (s *KeyringStorage) Store(itemID string, data []byte) error {
	err := s.plain.Set(keyring.Item{Key: itemID, Data: data})
	if err != nil {
		return apperrors.Wrap(ErrFailedToStoreData, err.Error())
	}
	return nil
}

// StoreBiometricProtected persists data under itemID in the protected namespace.
func (s *KeyringStorage) StoreBiometricProtected(itemID string, data []byte) error {
	err := s.protected.Set(keyring.Item{Key: itemID, Data: data})
	if err != nil {
		return apperrors.Wrap(ErrFailedToStoreData, err.Error())
	}
	return nil
}

// Get loads the data stored under itemID.
func (s *KeyringStorage) Get(itemID string) ([]byte, error) {
	item, err := s.plain.Get(itemID)
	if err != nil {
		return nil, apperrors.Wrap(ErrFailedToLoadData, err.Error())
	}
	return item.Data, nil
}

// GetBiometricProtected loads protected data, triggering the backend's
// user-presence challenge. Errors other than not-found are attributed to the
// challenge, since the backend does not report a finer-grained cause.
func (s *KeyringStorage) GetBiometricProtected(itemID string) ([]byte, error) {
	item, err := s.protected.Get(itemID)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, apperrors.Wrap(ErrFailedToLoadData, err.Error())
		}
		return nil, apperrors.Wrap(ErrAuthenticationFailed, err.Error())
	}
	return item.Data, nil
}

// HasValue reports whether an item exists under itemID.
func (s *KeyringStorage) HasValue(itemID string) bool {
	return keyringContains(s.plain, itemID)
}

// HasBiometricProtectedValue reports whether a protected item exists.
// Uses the key listing, which no backend gates behind a prompt.
func (s *KeyringStorage) HasBiometricProtectedValue(itemID string) bool {
	return keyringContains(s.protected, itemID)
}

// Remove deletes the item from both namespaces. Idempotent.
func (s *KeyringStorage) Remove(itemID string) error {
	if err := s.plain.Remove(itemID); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return apperrors.Wrap(ErrFailedToStoreData, err.Error())
	}
	if err := s.protected.Remove(itemID); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return apperrors.Wrap(ErrFailedToStoreData, err.Error())
	}
	return nil
}

// keyringContains scans the key listing for itemID.
func keyringContains(ring keyring.Keyring, itemID string) bool {
	keys, err := ring.Keys()
	if err != nil {
		return false
	}
	return slices.Contains(keys, itemID)
}
