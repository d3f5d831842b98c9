package commands

import (
	"context"
	"fmt"
	"log/slog"

	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

// RunEnableBiometric fetches the key with the user secret and caches its long
// secret behind the biometric gate.
func RunEnableBiometric(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	keyID, secret string,
) error {
	if err := storage.EnableBiometric(ctx, keyID, secret); err != nil {
		return fmt.Errorf("failed to enable biometric access: %w", err)
	}

	logger.Info("biometric access enabled", slog.String("key_id", keyID))
	return nil
}

// RunEnableBiometricOffline caches an already-known long secret without a
// network round trip.
func RunEnableBiometricOffline(
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	keyID, longSecret string,
) error {
	if err := storage.EnableBiometricViaLongSecret(keyID, longSecret); err != nil {
		return fmt.Errorf("failed to enable biometric access: %w", err)
	}

	logger.Info("biometric access enabled", slog.String("key_id", keyID))
	return nil
}

// RunStoreBiometric stores a payload using the biometric-cached long secret.
func RunStoreBiometric(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	io IOTuple,
	itemID, keyID, data string,
) error {
	payload, err := readData(data, io.Reader)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	if err := storage.StoreViaBiometric(ctx, itemID, payload, keyID); err != nil {
		return fmt.Errorf("failed to store item: %w", err)
	}

	logger.Info("item stored", slog.String("item_id", itemID), slog.String("key_id", keyID))
	return nil
}

// RunStoreBiometricWithNewKey creates a fresh key, enrolls it for biometric
// access and stores the payload with it.
func RunStoreBiometricWithNewKey(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	io IOTuple,
	itemID, secret, data string,
) error {
	payload, err := readData(data, io.Reader)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	result, err := storage.StoreViaBiometricWithNewKey(ctx, itemID, payload, secret)
	if err != nil {
		return fmt.Errorf("failed to store item with new key: %w", err)
	}

	logger.Info("item stored with new key", slog.String("item_id", itemID))
	fmt.Fprintf(io.Writer, "keyid: %s\nlongsecret: %s\n", result.KeyID, result.LongSecret)
	return nil
}

// RunGetBiometric loads a stored item using the biometric-cached long secret.
func RunGetBiometric(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	io IOTuple,
	itemID, keyID string,
) error {
	result, err := storage.GetViaBiometric(ctx, itemID, keyID)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	if _, err := io.Writer.Write(result.Data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// RunHasBiometricValue reports whether an item exists together with a cached
// long secret for its key.
func RunHasBiometricValue(
	storage storageUsecase.EncryptedStorage,
	io IOTuple,
	itemID, keyID string,
) error {
	fmt.Fprintf(io.Writer, "%t\n", storage.HasBiometricProtectedValue(itemID, keyID))
	return nil
}

// RunRemoveLongSecret deletes the cached long secret for a key, disabling
// biometric access.
func RunRemoveLongSecret(
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	keyID string,
) error {
	if err := storage.RemoveLongSecret(keyID); err != nil {
		return fmt.Errorf("failed to remove long secret: %w", err)
	}

	logger.Info("long secret removed", slog.String("key_id", keyID))
	return nil
}
