// Package app implements the application layer for rig.
package app

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/lifecycle"
)

// Shutdowner flushes and stops a tracing pipeline.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// App runs build invocations and releases run-scoped resources afterwards.
type App struct {
	controller *lifecycle.Controller
	telemetry  ports.Telemetry
	tracing    Shutdowner
	selector   domain.TargetSelector
}

// New creates a new App. Invocations without explicit targets run the
// default target declared by the build file.
func New(controller *lifecycle.Controller, telemetry ports.Telemetry, tracing Shutdowner) *App {
	return &App{
		controller: controller,
		telemetry:  telemetry,
		tracing:    tracing,
		selector:   domain.SelectDeclaredDefault(),
	}
}

// WithOutput sets the writer informational output is printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.controller.WithOutput(w)
	return a
}

// WithSelector sets the selector that picks the target of invocations without explicit targets.
func (a *App) WithSelector(selector domain.TargetSelector) *App {
	a.selector = selector
	return a
}

// Run executes one invocation.
func (a *App) Run(ctx context.Context, inv domain.Invocation) domain.Outcome {
	return a.controller.Execute(ctx, inv, a.selector)
}

// Close flushes the telemetry session and the tracing pipeline.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.telemetry.Close(), a.tracing.Shutdown(ctx))
}
