package usecase

import (
	"context"
	"time"

	"github.com/allisson/lockbox/internal/metrics"
	storageDomain "github.com/allisson/lockbox/internal/storage/domain"
)

// encryptedStorageWithMetrics decorates EncryptedStorage with metrics
// instrumentation.
type encryptedStorageWithMetrics struct {
	next    EncryptedStorage
	metrics metrics.BusinessMetrics
}

// NewEncryptedStorageWithMetrics wraps an EncryptedStorage with metrics
// recording.
func NewEncryptedStorageWithMetrics(storage EncryptedStorage, m metrics.BusinessMetrics) EncryptedStorage {
	return &encryptedStorageWithMetrics{
		next:    storage,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for a finished
// operation.
func (e *encryptedStorageWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "storage", operation, status)
	e.metrics.RecordDuration(ctx, "storage", operation, time.Since(start), status)
}

// Store records metrics for store operations.
func (e *encryptedStorageWithMetrics) Store(ctx context.Context, itemID string, data []byte, keyID, secret string) error {
	start := time.Now()
	err := e.next.Store(ctx, itemID, data, keyID, secret)
	e.record(ctx, "store", start, err)

	return err
}

// StoreViaLongSecret records metrics for long-secret store operations.
func (e *encryptedStorageWithMetrics) StoreViaLongSecret(
	ctx context.Context,
	itemID string,
	data []byte,
	keyID, longSecret string,
) error {
	start := time.Now()
	err := e.next.StoreViaLongSecret(ctx, itemID, data, keyID, longSecret)
	e.record(ctx, "store_long_secret", start, err)

	return err
}

// StoreWithNewKey records metrics for store-with-new-key operations.
func (e *encryptedStorageWithMetrics) StoreWithNewKey(
	ctx context.Context,
	itemID string,
	data []byte,
	secret string,
) (*storageDomain.KeyCreationResult, error) {
	start := time.Now()
	result, err := e.next.StoreWithNewKey(ctx, itemID, data, secret)
	e.record(ctx, "store_new_key", start, err)

	return result, err
}

// StoreViaBiometric records metrics for biometric store operations.
func (e *encryptedStorageWithMetrics) StoreViaBiometric(
	ctx context.Context,
	itemID string,
	data []byte,
	keyID string,
) error {
	start := time.Now()
	err := e.next.StoreViaBiometric(ctx, itemID, data, keyID)
	e.record(ctx, "store_biometric", start, err)

	return err
}

// StoreViaBiometricWithNewKey records metrics for biometric
// store-with-new-key operations.
func (e *encryptedStorageWithMetrics) StoreViaBiometricWithNewKey(
	ctx context.Context,
	itemID string,
	data []byte,
	secret string,
) (*storageDomain.KeyCreationResult, error) {
	start := time.Now()
	result, err := e.next.StoreViaBiometricWithNewKey(ctx, itemID, data, secret)
	e.record(ctx, "store_biometric_new_key", start, err)

	return result, err
}

// Get records metrics for get operations.
func (e *encryptedStorageWithMetrics) Get(ctx context.Context, itemID, keyID, secret string) ([]byte, error) {
	start := time.Now()
	data, err := e.next.Get(ctx, itemID, keyID, secret)
	e.record(ctx, "get", start, err)

	return data, err
}

// GetViaLongSecret records metrics for long-secret get operations.
func (e *encryptedStorageWithMetrics) GetViaLongSecret(
	ctx context.Context,
	itemID, keyID, longSecret string,
) ([]byte, error) {
	start := time.Now()
	data, err := e.next.GetViaLongSecret(ctx, itemID, keyID, longSecret)
	e.record(ctx, "get_long_secret", start, err)

	return data, err
}

// GetViaBiometric records metrics for biometric get operations.
func (e *encryptedStorageWithMetrics) GetViaBiometric(
	ctx context.Context,
	itemID, keyID string,
) (*storageDomain.BiometricLoadResult, error) {
	start := time.Now()
	result, err := e.next.GetViaBiometric(ctx, itemID, keyID)
	e.record(ctx, "get_biometric", start, err)

	return result, err
}

// EnableBiometric records metrics for biometric enrollment operations.
func (e *encryptedStorageWithMetrics) EnableBiometric(ctx context.Context, keyID, secret string) error {
	start := time.Now()
	err := e.next.EnableBiometric(ctx, keyID, secret)
	e.record(ctx, "enable_biometric", start, err)

	return err
}

// EnableBiometricViaLongSecret records metrics for offline biometric
// enrollment operations.
func (e *encryptedStorageWithMetrics) EnableBiometricViaLongSecret(keyID, longSecret string) error {
	start := time.Now()
	err := e.next.EnableBiometricViaLongSecret(keyID, longSecret)
	e.record(context.Background(), "enable_biometric_long_secret", start, err)

	return err
}

// HasValue records metrics for existence checks.
func (e *encryptedStorageWithMetrics) HasValue(itemID string) bool {
	start := time.Now()
	found := e.next.HasValue(itemID)
	e.record(context.Background(), "has_value", start, nil)

	return found
}

// HasBiometricProtectedValue records metrics for biometric existence checks.
func (e *encryptedStorageWithMetrics) HasBiometricProtectedValue(itemID, keyID string) bool {
	start := time.Now()
	found := e.next.HasBiometricProtectedValue(itemID, keyID)
	e.record(context.Background(), "has_biometric_value", start, nil)

	return found
}

// Remove records metrics for removal operations.
func (e *encryptedStorageWithMetrics) Remove(itemID string) error {
	start := time.Now()
	err := e.next.Remove(itemID)
	e.record(context.Background(), "remove", start, err)

	return err
}

// RemoveLongSecret records metrics for long-secret removal operations.
func (e *encryptedStorageWithMetrics) RemoveLongSecret(keyID string) error {
	start := time.Now()
	err := e.next.RemoveLongSecret(keyID)
	e.record(context.Background(), "remove_long_secret", start, err)

	return err
}
