// SPDX-License-Identifier: MIT

// Command socialnet loads a social graph from CSV and answers connection,
// suggestion and influence queries, interactively or one-shot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "socialnet:", err)
		stop()
		os.Exit(1)
	}
}
