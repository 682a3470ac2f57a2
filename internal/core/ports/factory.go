// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// BuildFactory constructs the build definition of an invocation.
//
//go:generate mockgen -source=factory.go -destination=mocks/mock_factory.go -package=mocks
type BuildFactory interface {
	// Create loads the declared targets and parameters and fills in the invoked
	// targets, falling back to the target picked by selector when the caller
	// requested none.
	Create(ctx context.Context, inv domain.Invocation, selector domain.TargetSelector) (*domain.Build, error)
}

// Injector populates the configurable values of a build definition in place.
type Injector interface {
	// Inject resolves every declared parameter and built-in flag for this invocation.
	Inject(ctx context.Context, build *domain.Build, inv domain.Invocation) error
}
