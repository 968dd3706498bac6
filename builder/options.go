// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs,
//     nil loggers). Build itself never panics.

package builder

import (
	"io"
	"log/slog"
	"strconv"
)

// BuilderOption customizes Build by mutating a builderConfig before the graph is constructed.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	// idFn maps a station ID to a vertex ID. Must be injective.
	idFn func(int64) string
	// logger receives a debug summary of each build.
	logger *slog.Logger
}

// DecimalID is the default vertex ID scheme: the station ID in base 10.
func DecimalID(stationID int64) string {
	return strconv.FormatInt(stationID, 10)
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DecimalID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the station ID → vertex ID mapping.
// The function must be injective; colliding IDs merge stations.
// Panics on nil.
func WithIDScheme(fn func(int64) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
