// Command tbadmin is a terminal console for the token service admin backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	adminkit "github.com/tokenbrush/adminkit"
	"github.com/tokenbrush/adminkit/cli"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := cli.InitLogger(*verbose)
	defer logger.Sync()

	if err := run(logger, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, args []string) error {
	cfg, err := adminkit.FromEnv()
	if err != nil {
		return err
	}
	// A one-shot binary needs the credential to outlive the process, so file
	// storage is the default unless the environment says otherwise.
	if os.Getenv("TB_ADMIN_TOKEN_STORAGE") == "" {
		cfg.Storage.Mode = adminkit.StorageFile
	}

	builder := adminkit.New().
		WithConfig(cfg).
		WithNavigator(&cli.ScreenNavigator{Log: logger})

	if cfg.Storage.Mode == adminkit.StorageRedis {
		addr := os.Getenv("TB_ADMIN_REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		builder = builder.WithRedis(redis.NewClient(&redis.Options{Addr: addr}))
	}

	ctrl, err := builder.Build()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Hydrate(context.Background()); err != nil {
		logger.Warn("session hydrate failed", zap.Error(err))
	}

	console := cli.NewConsole(ctrl, logger, os.Stdout)
	return cli.NewRootCommand(console).Execute(args)
}
