// SPDX-License-Identifier: MIT

// Command kisoext solves, generates and benchmarks minimal k-isomorphic
// subgraph extension instances.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/kisoext/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := cli.Execute(ctx, version); err != nil {
		cancel()
		os.Exit(1)
	}
}
