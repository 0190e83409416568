// Package main runs the studio operator CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/gameforge/internal/cmd/studioctl"
	entrypoint "github.com/louisbranch/gameforge/internal/platform/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStudioCtl, func(ctx context.Context) error {
		return studioctl.Execute(ctx, os.Args[1:])
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "studioctl: %v\n", err)
		os.Exit(1)
	}
}
