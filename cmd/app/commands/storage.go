package commands

import (
	"context"
	"fmt"
	"log/slog"

	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

// RunStore encrypts the payload under an existing key and stores it.
func RunStore(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	io IOTuple,
	itemID, keyID, secret, data string,
) error {
	payload, err := readData(data, io.Reader)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	if err := storage.Store(ctx, itemID, payload, keyID, secret); err != nil {
		return fmt.Errorf("failed to store item: %w", err)
	}

	logger.Info("item stored", slog.String("item_id", itemID), slog.String("key_id", keyID))
	return nil
}

// RunStoreWithNewKey creates a fresh key, stores the payload with it and
// prints the key id and long secret for safekeeping.
func RunStoreWithNewKey(
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

	result, err := storage.StoreWithNewKey(ctx, itemID, payload, secret)
	if err != nil {
		return fmt.Errorf("failed to store item with new key: %w", err)
	}

	logger.Info("item stored with new key", slog.String("item_id", itemID))
	fmt.Fprintf(io.Writer, "keyid: %s\nlongsecret: %s\n", result.KeyID, result.LongSecret)
	return nil
}

// RunGet loads and decrypts a stored item, writing the plaintext to output.
func RunGet(
	ctx context.Context,
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	io IOTuple,
	itemID, keyID, secret string,
) error {
	data, err := storage.Get(ctx, itemID, keyID, secret)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	if _, err := io.Writer.Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// RunHasValue reports whether an item exists.
func RunHasValue(
	storage storageUsecase.EncryptedStorage,
	io IOTuple,
	itemID string,
) error {
	fmt.Fprintf(io.Writer, "%t\n", storage.HasValue(itemID))
	return nil
}

// RunRemove deletes a stored item.
func RunRemove(
	storage storageUsecase.EncryptedStorage,
	logger *slog.Logger,
	itemID string,
) error {
	if err := storage.Remove(itemID); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	logger.Info("item removed", slog.String("item_id", itemID))
	return nil
}
