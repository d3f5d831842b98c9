package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/lockbox/internal/app"
	"github.com/allisson/lockbox/internal/config"
	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getStorageCommands()...)
	cmds = append(cmds, getBiometricCommands()...)
	return cmds
}

// withStorage assembles the DI container, hands the encrypted storage to fn
// and shuts everything down afterwards.
func withStorage(
	ctx context.Context,
	fn func(ctx context.Context, storage storageUsecase.EncryptedStorage, logger *slog.Logger) error,
) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	storage, err := container.EncryptedStorage()
	if err != nil {
		return fmt.Errorf("failed to initialize encrypted storage: %w", err)
	}

	return fn(ctx, storage, logger)
}
