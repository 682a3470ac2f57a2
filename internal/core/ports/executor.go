package ports

import (
	"context"
	"io"

	"go.trai.ch/rig/internal/core/domain"
)

// TargetExecutor runs an executable target set in dependency order.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type TargetExecutor interface {
	// Execute runs every target of the set to a terminal status.
	//
	// When one or more targets fail, the returned error is a composite
	// (errors.Join) of one *domain.InvocationError per failed target.
	Execute(ctx context.Context, targets []*domain.ExecutableTarget) error
}

// Executor runs the work function of a single target.
type Executor interface {
	// Execute runs the target's command in dir with the given extra environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format.
	//
	// It returns an error if the command fails.
	Execute(ctx context.Context, target *domain.Target, dir string, env []string, stdout, stderr io.Writer) error
}
