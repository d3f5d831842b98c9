// Package usecase implements the encrypted storage orchestration layer.
// This package coordinates the key service client, the cipher layer and
// secure local storage to implement encrypt-then-store and load-then-decrypt
// flows, including the biometric long-secret cache.
package usecase

import (
	"context"
	"log/slog"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/lockbox/internal/crypto/domain"
	cryptoService "github.com/allisson/lockbox/internal/crypto/service"
	"github.com/allisson/lockbox/internal/keyservice/client"
	keyserviceDomain "github.com/allisson/lockbox/internal/keyservice/domain"
	"github.com/allisson/lockbox/internal/securestorage"
	storageDomain "github.com/allisson/lockbox/internal/storage/domain"
)

// BeforeNetworkHook is invoked right before an operation starts a sequence
// that may block on the biometric gate and the network. It is a UI
// affordance only (show a spinner); its execution never blocks or delays the
// operation itself.
type BeforeNetworkHook func()

// encryptedStorage implements the EncryptedStorage interface.
type encryptedStorage struct {
	keyService    client.Client
	storage       securestorage.SecureStorage
	cipherManager cryptoService.CipherManager
	method        cryptoDomain.Method
	beforeNetwork BeforeNetworkHook
	logger        *slog.Logger
}

// NewEncryptedStorage creates an encrypted storage instance with the provided
// dependencies. method selects the envelope format for every Store operation;
// Get operations accept any envelope the corresponding cipher can open.
// beforeNetwork may be nil.
func NewEncryptedStorage(
	keyService client.Client,
	storage securestorage.SecureStorage,
	cipherManager cryptoService.CipherManager,
	method cryptoDomain.Method,
	beforeNetwork BeforeNetworkHook,
	logger *slog.Logger,
) EncryptedStorage {
	return &encryptedStorage{
		keyService:    keyService,
		storage:       storage,
		cipherManager: cipherManager,
		method:        method,
		beforeNetwork: beforeNetwork,
		logger:        logger,
	}
}

// Store encrypts data under the key identified by keyID and persists the
// envelope under itemID.
func (e *encryptedStorage) Store(ctx context.Context, itemID string, data []byte, keyID, secret string) error {
	model, err := e.keyService.GetKey(ctx, secret, keyID)
	if err != nil {
		return err
	}

	return e.encryptAndStore(itemID, data, model)
}

// StoreViaLongSecret encrypts data under the key fetched via longSecret and
// persists the envelope under itemID.
func (e *encryptedStorage) StoreViaLongSecret(
	ctx context.Context,
	itemID string,
	data []byte,
	keyID, longSecret string,
) error {
	model, err := e.keyService.GetKeyViaLongSecret(ctx, longSecret, keyID)
	if err != nil {
		return err
	}

	return e.encryptAndStore(itemID, data, model)
}

// StoreWithNewKey creates a fresh key, encrypts data with it and persists the
// envelope under itemID.
func (e *encryptedStorage) StoreWithNewKey(
	ctx context.Context,
	itemID string,
	data []byte,
	secret string,
) (*storageDomain.KeyCreationResult, error) {
	model, err := e.keyService.CreateKey(ctx, secret)
	if err != nil {
		return nil, err
	}

	// A key without a long secret can never be enrolled for biometric access
	// later; refuse it before anything is written.
	if !model.HasLongSecret() {
		return nil, keyserviceDomain.ErrNoLongSecret
	}

	if err := e.encryptAndStore(itemID, data, model); err != nil {
		return nil, err
	}

	return &storageDomain.KeyCreationResult{
		KeyID:      model.KeyID,
		LongSecret: *model.LongSecret,
	}, nil
}

// StoreViaBiometric loads the cached long secret for keyID behind the
// biometric gate, then stores data via that long secret.
func (e *encryptedStorage) StoreViaBiometric(ctx context.Context, itemID string, data []byte, keyID string) error {
	e.notifyBeforeNetwork()

	longSecret, err := e.loadLongSecret(keyID)
	if err != nil {
		return err
	}

	return e.StoreViaLongSecret(ctx, itemID, data, keyID, longSecret)
}

// StoreViaBiometricWithNewKey creates a fresh key, caches its long secret
// behind the biometric gate and then encrypts and persists data under itemID.
func (e *encryptedStorage) StoreViaBiometricWithNewKey(
	ctx context.Context,
	itemID string,
	data []byte,
	secret string,
) (*storageDomain.KeyCreationResult, error) {
	e.notifyBeforeNetwork()

	model, err := e.keyService.CreateKey(ctx, secret)
	if err != nil {
		return nil, err
	}

	if !model.HasLongSecret() {
		return nil, keyserviceDomain.ErrNoLongSecret
	}

	// The long secret is persisted before the payload: if enrollment fails,
	// no encrypted payload is left behind that biometric access could never
	// open.
	if err := e.storeLongSecret(model.KeyID, *model.LongSecret); err != nil {
		return nil, err
	}

	if err := e.encryptAndStore(itemID, data, model); err != nil {
		return nil, err
	}

	return &storageDomain.KeyCreationResult{
		KeyID:      model.KeyID,
		LongSecret: *model.LongSecret,
	}, nil
}

// Get loads the envelope stored under itemID and decrypts it with the key
// identified by keyID.
func (e *encryptedStorage) Get(ctx context.Context, itemID, keyID, secret string) ([]byte, error) {
	model, err := e.keyService.GetKey(ctx, secret, keyID)
	if err != nil {
		return nil, err
	}

	return e.loadAndDecrypt(itemID, model)
}

// GetViaLongSecret loads the envelope stored under itemID and decrypts it
// with the key fetched via longSecret.
func (e *encryptedStorage) GetViaLongSecret(ctx context.Context, itemID, keyID, longSecret string) ([]byte, error) {
	model, err := e.keyService.GetKeyViaLongSecret(ctx, longSecret, keyID)
	if err != nil {
		return nil, err
	}

	return e.loadAndDecrypt(itemID, model)
}

// GetViaBiometric loads the cached long secret for keyID behind the biometric
// gate, fetches the key with it and decrypts the envelope stored under
// itemID.
func (e *encryptedStorage) GetViaBiometric(
	ctx context.Context,
	itemID, keyID string,
) (*storageDomain.BiometricLoadResult, error) {
	e.notifyBeforeNetwork()

	longSecret, err := e.loadLongSecret(keyID)
	if err != nil {
		return nil, err
	}

	model, err := e.keyService.GetKeyViaLongSecret(ctx, longSecret, keyID)
	if err != nil {
		return nil, err
	}

	data, err := e.loadAndDecrypt(itemID, model)
	if err != nil {
		return nil, err
	}

	return &storageDomain.BiometricLoadResult{
		Data:       data,
		LongSecret: longSecret,
	}, nil
}

// EnableBiometric fetches the key identified by keyID with the user secret
// and caches its long secret behind the biometric gate.
func (e *encryptedStorage) EnableBiometric(ctx context.Context, keyID, secret string) error {
	model, err := e.keyService.GetKey(ctx, secret, keyID)
	if err != nil {
		return err
	}

	if !model.HasLongSecret() {
		return keyserviceDomain.ErrNoLongSecret
	}

	return e.storeLongSecret(keyID, *model.LongSecret)
}

// EnableBiometricViaLongSecret caches an already-known long secret for keyID
// behind the biometric gate without any network round trip.
func (e *encryptedStorage) EnableBiometricViaLongSecret(keyID, longSecret string) error {
	return e.storeLongSecret(keyID, longSecret)
}

// HasValue reports whether an envelope exists under itemID.
func (e *encryptedStorage) HasValue(itemID string) bool {
	return e.storage.HasValue(itemID)
}

// HasBiometricProtectedValue reports whether an envelope exists under itemID
// and a biometric-protected long secret is cached for keyID. The check never
// triggers a biometric prompt.
func (e *encryptedStorage) HasBiometricProtectedValue(itemID, keyID string) bool {
	if !e.storage.HasBiometricProtectedValue(storageDomain.LongSecretItemID(keyID)) {
		return false
	}

	return e.storage.HasValue(itemID)
}

// Remove deletes the envelope stored under itemID.
func (e *encryptedStorage) Remove(itemID string) error {
	return e.storage.Remove(itemID)
}

// RemoveLongSecret deletes the cached long secret for keyID.
func (e *encryptedStorage) RemoveLongSecret(keyID string) error {
	return e.storage.Remove(storageDomain.LongSecretItemID(keyID))
}

// encryptAndStore is a helper method that encrypts data with the key carried
// by model and persists the resulting envelope under itemID.
func (e *encryptedStorage) encryptAndStore(itemID string, data []byte, model *keyserviceDomain.KeyModel) error {
	key, err := model.DecodeKey()
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(key)

	cipher, err := e.cipherManager.CreateCipher(key, e.method)
	if err != nil {
		return err
	}

	envelope, err := cipher.Encrypt(data)
	if err != nil {
		return err
	}

	return e.storage.Store(itemID, envelope)
}

// loadAndDecrypt is a helper method that loads the envelope stored under
// itemID and decrypts it with the key carried by model.
func (e *encryptedStorage) loadAndDecrypt(itemID string, model *keyserviceDomain.KeyModel) ([]byte, error) {
	envelope, err := e.storage.Get(itemID)
	if err != nil {
		return nil, err
	}

	key, err := model.DecodeKey()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	cipher, err := e.cipherManager.CreateCipher(key, e.method)
	if err != nil {
		return nil, err
	}

	return cipher.Decrypt(envelope)
}

// loadLongSecret loads the cached long secret for keyID behind the biometric
// gate. Errors from the gate (including a cancelled challenge) surface
// unchanged.
func (e *encryptedStorage) loadLongSecret(keyID string) (string, error) {
	raw, err := e.storage.GetBiometricProtected(storageDomain.LongSecretItemID(keyID))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", storageDomain.ErrUnexpectedData
	}

	return string(raw), nil
}

// storeLongSecret caches longSecret for keyID behind the biometric gate.
func (e *encryptedStorage) storeLongSecret(keyID, longSecret string) error {
	return e.storage.StoreBiometricProtected(storageDomain.LongSecretItemID(keyID), []byte(longSecret))
}

// notifyBeforeNetwork fires the before-network hook without blocking the
// operation.
func (e *encryptedStorage) notifyBeforeNetwork() {
	if e.beforeNetwork == nil {
		return
	}

	hook := e.beforeNetwork
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("before-network hook panicked", "panic", r)
			}
		}()
		hook()
	}()
}
