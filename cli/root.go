// SPDX-License-Identifier: MIT

// Package cli is the metropath command line.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metropath/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// globalFlags override the matching environment settings when set.
type globalFlags struct {
	store       string
	network     string
	sqlitePath  string
	postgresDSN string
	farePolicy  string
	logLevel    string
	logFormat   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "metropath",
		Short:        "Shortest subway paths and fares",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.store, "store", "", "station store: memory, sqlite or postgres (env METROPATH_STORE)")
	pf.StringVar(&g.network, "network", "", "YAML network catalog (env METROPATH_NETWORK_FILE)")
	pf.StringVar(&g.sqlitePath, "sqlite", "", "SQLite database file (env METROPATH_SQLITE_PATH)")
	pf.StringVar(&g.postgresDSN, "postgres-dsn", "", "PostgreSQL connection string (env METROPATH_POSTGRES_DSN)")
	pf.StringVar(&g.farePolicy, "fare-policy", "", "YAML fare policy (env METROPATH_FARE_POLICY)")
	pf.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error (env METROPATH_LOG_LEVEL)")
	pf.StringVar(&g.logFormat, "log-format", "", "text or json (env METROPATH_LOG_FORMAT)")

	cmd.AddCommand(serveCmd(g), pathCmd(g), importCmd(g), checkCmd(g), reachCmd(g))

	return cmd
}

// load reads the configuration with flag overrides applied.
func (g *globalFlags) load(extra ...func(*config.Config)) (config.Config, error) {
	overrides := append([]func(*config.Config){g.apply}, extra...)

	return config.Load(overrides...)
}

func (g *globalFlags) apply(c *config.Config) {
	if g.store != "" {
		c.Store.Backend = strings.ToLower(g.store)
	}
	if g.network != "" {
		c.Store.NetworkFile = g.network
		// A catalog given on the command line implies the memory store unless one is named.
		if g.store == "" {
			c.Store.Backend = config.StoreMemory
		}
	}
	if g.sqlitePath != "" {
		c.Store.SQLitePath = g.sqlitePath
	}
	if g.postgresDSN != "" {
		c.Store.PostgresDSN = g.postgresDSN
	}
	if g.farePolicy != "" {
		c.Fare.PolicyFile = g.farePolicy
	}
	if g.logLevel != "" {
		c.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		c.Logging.Format = g.logFormat
	}
}
