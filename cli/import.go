// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/config"
	"github.com/katalvlaran/metropath/logging"
	"github.com/katalvlaran/metropath/store/memory"
	"github.com/katalvlaran/metropath/store/postgres"
	"github.com/katalvlaran/metropath/store/sqlite"
)

func importCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load a YAML network catalog into the SQLite or PostgreSQL store",
		Example: "  metropath import --network network.yaml --sqlite metropath.db\n" +
			"  metropath import --network network.yaml --store postgres --postgres-dsn postgres://localhost/metro",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.network == "" {
				return errors.New("cli: --network is required")
			}
			cfg, err := g.load(func(c *config.Config) {
				// The catalog is the input here, so the target defaults to SQLite.
				if g.store == "" {
					c.Store.Backend = config.StoreSQLite
				}
			})
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging)

			cat, err := memory.LoadCatalog(g.network)
			if err != nil {
				return err
			}
			if err := warnDisconnected(logger, cat); err != nil {
				return err
			}

			ctx := cmd.Context()
			switch cfg.Store.Backend {
			case config.StoreSQLite:
				db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.ImportCatalog(ctx, cat.Stations, cat.Lines); err != nil {
					return err
				}
			case config.StorePostgres:
				db, err := postgres.Open(ctx, cfg.Store.PostgresDSN)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.ImportCatalog(ctx, cat.Stations, cat.Lines); err != nil {
					return err
				}
			default:
				return fmt.Errorf("cli: cannot import into the %s store", cfg.Store.Backend)
			}

			logger.Info("catalog.imported",
				"store", cfg.Store.Backend, "stations", len(cat.Stations), "lines", len(cat.Lines))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d stations and %d lines\n", len(cat.Stations), len(cat.Lines))

			return err
		},
	}
}

// warnDisconnected logs when the catalog does not form one connected network.
func warnDisconnected(logger *slog.Logger, cat *memory.Catalog) error {
	parts, err := builder.Build(cat.Lines).Components()
	if err != nil {
		return err
	}
	if len(parts) > 1 {
		sizes := make([]int, len(parts))
		for i, p := range parts {
			sizes[i] = len(p)
		}
		logger.Warn("catalog.disconnected", "parts", len(parts), "sizes", sizes)
	}

	return nil
}
