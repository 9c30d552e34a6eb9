// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dheerghayush/storefront-api/internal/admin"
	"github.com/dheerghayush/storefront-api/internal/banner"
	"github.com/dheerghayush/storefront-api/internal/catalog"
	"github.com/dheerghayush/storefront-api/internal/config"
	"github.com/dheerghayush/storefront-api/internal/core"
	"github.com/dheerghayush/storefront-api/internal/seed"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("storectl failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Operator tooling for the storefront API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(
		&configPath, "config", "config.yaml", "path to config file",
	)

	load := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(
		newMigrateCmd(load),
		newBootstrapCmd(load),
		newSeedCmd(load),
		newHashPasswordCmd(),
		newVersionCmd(),
	)
	return root
}

type configLoader func() (*config.Config, error)

func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := load()
			if err != nil {
				return err
			}

			db, err := core.NewDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			if err := core.Migrate(ctx, db.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newBootstrapCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Ensure the default admin and banners exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := load()
			if err != nil {
				return err
			}

			db, err := core.NewDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			svc := newSeedService(db, nil, cfg.Bootstrap)
			result, err := svc.Bootstrap(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"admin created: %t, banners created: %d\n",
				result.AdminCreated, result.BannersCreated,
			)
			return nil
		},
	}
}

func newSeedCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace categories, products and banners with the sample dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := load()
			if err != nil {
				return err
			}

			db, err := core.NewDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			var cache catalog.Cache
			if cfg.Cache.Enabled {
				rdb, err := core.NewRedis(ctx, cfg.Redis)
				if err != nil {
					return err
				}
				defer rdb.Close() //nolint:errcheck
				cache = catalog.NewRedisCache(rdb.Client, cfg.Cache.CatalogTTL)
			}

			svc := newSeedService(db, cache, cfg.Bootstrap)
			result, err := svc.Reseed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"%s: %d categories, %d products, %d banners\n",
				result.Message,
				result.CategoriesCount,
				result.ProductsCount,
				result.BannersCount,
			)
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the argon2id hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := core.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storectl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newSeedService(
	db *core.Database,
	cache catalog.Cache,
	bootstrap config.BootstrapConfig,
) *seed.Service {
	return seed.NewService(seed.ServiceConfig{
		Store:     seed.NewStore(db),
		Admins:    admin.NewService(admin.NewRepository(db.DB)),
		Banners:   banner.NewRepository(db.DB),
		Cache:     catalog.NewService(catalog.NewRepository(db.DB), cache),
		Bootstrap: bootstrap,
	})
}
