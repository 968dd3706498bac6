// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metropath/config"
	"github.com/katalvlaran/metropath/fare"
	"github.com/katalvlaran/metropath/httpapi"
	"github.com/katalvlaran/metropath/pathservice"
	"github.com/katalvlaran/metropath/store/memory"
	"github.com/katalvlaran/metropath/store/postgres"
	"github.com/katalvlaran/metropath/store/sqlite"
)

// app is the wired service plus what must be released on exit.
type app struct {
	service *pathservice.Service
	health  httpapi.HealthProbe
	close   func()
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	policy := fare.DefaultPolicy()
	if cfg.Fare.PolicyFile != "" {
		var err error
		if policy, err = fare.LoadPolicy(cfg.Fare.PolicyFile); err != nil {
			return nil, err
		}
	}
	calc, err := fare.NewCalculator(policy)
	if err != nil {
		return nil, err
	}

	var (
		stations pathservice.StationRepository
		lines    pathservice.LineRepository
		a        = &app{close: func() {}}
	)

	switch cfg.Store.Backend {
	case config.StoreMemory:
		cat, err := memory.LoadCatalog(cfg.Store.NetworkFile)
		if err != nil {
			return nil, err
		}
		store := memory.NewStoreFromCatalog(cat)
		stations, lines = store.Stations(), store.Lines()

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		stations, lines, a.health = db.Stations(), db.Lines(), db
		a.close = func() { _ = db.Close() }

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return nil, err
		}
		stations, lines, a.health = db.Stations(), db.Lines(), db
		a.close = db.Close

	default:
		return nil, fmt.Errorf("cli: unsupported store %q", cfg.Store.Backend)
	}

	logger.Debug("app.ready", "store", cfg.Store.Backend, "fare_policy", cfg.Fare.PolicyFile)
	a.service = pathservice.NewService(stations, lines, calc, pathservice.WithLogger(logger))

	return a, nil
}
