// Package main is the entry point for the rig build tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/domain"
	_ "go.trai.ch/rig/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(rigMain())
}

func rigMain() int {
	wd, err := os.Getwd()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		return 1
	}

	base := domain.Invocation{WorkDir: wd, Environ: os.Environ()}
	return run(context.Background(), os.Args[1:], base, os.Stdout, os.Stderr, app.NewApp)
}

func run(
	ctx context.Context,
	args []string,
	base domain.Invocation,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer func() {
		if err := components.App.Close(context.WithoutCancel(ctx)); err != nil {
			components.Logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App.WithOutput(stdout), base)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	outcome, err := cli.Execute(ctx)
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	if outcome.Terminated {
		return 0
	}
	return domain.ProcessStatus(outcome.Code)
}
