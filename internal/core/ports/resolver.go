package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// TargetResolver expands the invoked targets into the executable target set.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type TargetResolver interface {
	// Resolve returns the invoked targets and all of their transitive dependencies
	// in dependency order.
	Resolve(ctx context.Context, build *domain.Build, invoked []domain.InternedString) ([]*domain.ExecutableTarget, error)
}

// RequirementValidator checks the declared pre-conditions of executable targets.
type RequirementValidator interface {
	// Validate returns an error describing every unmet requirement, or nil.
	Validate(ctx context.Context, targets []*domain.ExecutableTarget, build *domain.Build) error
}
