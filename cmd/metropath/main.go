// SPDX-License-Identifier: MIT

// Command metropath computes shortest subway paths and fares.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/metropath/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
