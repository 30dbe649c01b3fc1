// Package main is the entry point for the forge build orchestrator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	_ "go.trai.ch/forge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components, fresh for every run
	opts = append(opts, graft.DisableCache())
	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return domain.ExitFailure
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	err = cli.Execute(ctx)
	if err != nil && !domain.IsReported(err) {
		components.Logger.Error(err)
	}
	return domain.OutcomeOf(err).Code
}
