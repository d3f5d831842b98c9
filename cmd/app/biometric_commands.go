package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/lockbox/cmd/app/commands"
	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

func getBiometricCommands() []*cli.Command {
	itemFlag := &cli.StringFlag{
		Name:     "item",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Item id under which the payload is stored",
	}
	keyFlag := &cli.StringFlag{
		Name:     "key-id",
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "Key id identifying the encryption key",
	}
	secretFlag := &cli.StringFlag{
		Name:     "secret",
		Aliases:  []string{"s"},
		Required: true,
		Usage:    "User secret protecting the key",
	}
	dataFlag := &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "Payload to store (omit to read from stdin)",
	}

	return []*cli.Command{
		{
			Name:  "enable-biometric",
			Usage: "Cache the key's long secret behind the biometric gate",
			Flags: []cli.Flag{keyFlag, secretFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunEnableBiometric(
						ctx,
						storage,
						logger,
						cmd.String("key-id"),
						cmd.String("secret"),
					)
				})
			},
		},
		{
			Name:  "enable-biometric-offline",
			Usage: "Cache an already-known long secret without a network round trip",
			Flags: []cli.Flag{
				keyFlag,
				&cli.StringFlag{
					Name:     "long-secret",
					Aliases:  []string{"l"},
					Required: true,
					Usage:    "Long secret issued when the key was created",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunEnableBiometricOffline(
						storage,
						logger,
						cmd.String("key-id"),
						cmd.String("long-secret"),
					)
				})
			},
		},
		{
			Name:  "store-biometric",
			Usage: "Store a payload using the biometric-cached long secret",
			Flags: []cli.Flag{itemFlag, keyFlag, dataFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunStoreBiometric(
						ctx,
						storage,
						logger,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("key-id"),
						cmd.String("data"),
					)
				})
			},
		},
		{
			Name:  "store-biometric-new-key",
			Usage: "Create a fresh key, enroll it for biometric access and store a payload",
			Flags: []cli.Flag{itemFlag, secretFlag, dataFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunStoreBiometricWithNewKey(
						ctx,
						storage,
						logger,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("secret"),
						cmd.String("data"),
					)
				})
			},
		},
		{
			Name:  "get-biometric",
			Usage: "Load a stored payload using the biometric-cached long secret",
			Flags: []cli.Flag{itemFlag, keyFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunGetBiometric(
						ctx,
						storage,
						logger,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("key-id"),
					)
				})
			},
		},
		{
			Name:  "has-biometric-value",
			Usage: "Check whether an item and its biometric-cached long secret exist",
			Flags: []cli.Flag{itemFlag, keyFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunHasBiometricValue(
						storage,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("key-id"),
					)
				})
			},
		},
		{
			Name:  "remove-long-secret",
			Usage: "Delete the biometric-cached long secret for a key",
			Flags: []cli.Flag{keyFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunRemoveLongSecret(storage, logger, cmd.String("key-id"))
				})
			},
		},
	}
}
