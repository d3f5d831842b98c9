package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/lockbox/cmd/app/commands"
	storageUsecase "github.com/allisson/lockbox/internal/storage/usecase"
)

func getStorageCommands() []*cli.Command {
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
			Name:  "store",
			Usage: "Encrypt a payload under an existing key and store it",
			Flags: []cli.Flag{itemFlag, keyFlag, secretFlag, dataFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunStore(
						ctx,
						storage,
						logger,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("key-id"),
						cmd.String("secret"),
						cmd.String("data"),
					)
				})
			},
		},
		{
			Name:  "store-new-key",
			Usage: "Create a fresh key and store a payload encrypted with it",
			Flags: []cli.Flag{itemFlag, secretFlag, dataFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunStoreWithNewKey(
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
			Name:  "get",
			Usage: "Load and decrypt a stored payload",
			Flags: []cli.Flag{itemFlag, keyFlag, secretFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunGet(
						ctx,
						storage,
						logger,
						commands.DefaultIO(),
						cmd.String("item"),
						cmd.String("key-id"),
						cmd.String("secret"),
					)
				})
			},
		},
		{
			Name:  "has-value",
			Usage: "Check whether an item exists",
			Flags: []cli.Flag{itemFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunHasValue(storage, commands.DefaultIO(), cmd.String("item"))
				})
			},
		},
		{
			Name:  "remove",
			Usage: "Delete a stored item",
			Flags: []cli.Flag{itemFlag},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withStorage(ctx, func(
					ctx context.Context,
					storage storageUsecase.EncryptedStorage,
					logger *slog.Logger,
				) error {
					return commands.RunRemove(storage, logger, cmd.String("item"))
				})
			},
		},
	}
}
