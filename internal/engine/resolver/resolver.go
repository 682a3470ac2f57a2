// Package resolver computes the executable target set of an invocation.
package resolver

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// SkipReasonRequested is the skip reason of targets skipped on the command line.
const SkipReasonRequested = "skipped by request"

// Resolver implements ports.TargetResolver.
type Resolver struct{}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve expands the invoked targets through their dependencies and returns
// the resulting set in execution order: dependencies first, ties broken by name.
func (r *Resolver) Resolve(
	_ context.Context,
	b *domain.Build,
	invoked []domain.InternedString,
) ([]*domain.ExecutableTarget, error) {
	if len(invoked) == 0 {
		return nil, domain.ErrNoTargets
	}

	if err := checkDeclared(b.Targets, invoked, "target"); err != nil {
		return nil, err
	}
	if err := checkDeclared(b.Targets, b.SkippedTargets, "skip"); err != nil {
		return nil, err
	}

	if err := b.Targets.Validate(); err != nil {
		return nil, err
	}

	selected := collectDependencies(b.Targets, invoked)

	requested := make(map[domain.InternedString]bool, len(invoked))
	for _, name := range invoked {
		requested[name] = true
	}

	targets := make([]*domain.ExecutableTarget, 0, len(selected))
	for t := range b.Targets.Walk() {
		if !selected[t.Name] {
			continue
		}

		et := domain.NewExecutableTarget(t, requested[t.Name])
		if b.IsSkipped(t.Name) {
			et.MarkSkipped(SkipReasonRequested)
		}
		targets = append(targets, et)
	}

	return targets, nil
}

func checkDeclared(g *domain.Graph, names []domain.InternedString, key string) error {
	for _, name := range names {
		if _, ok := g.Target(name); !ok {
			return zerr.With(domain.ErrTargetNotFound, key, name.String())
		}
	}
	return nil
}

// collectDependencies returns the invoked targets and everything they depend on, transitively.
func collectDependencies(g *domain.Graph, invoked []domain.InternedString) map[domain.InternedString]bool {
	selected := make(map[domain.InternedString]bool)

	queue := make([]domain.InternedString, len(invoked))
	copy(queue, invoked)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if selected[current] {
			continue
		}
		selected[current] = true

		t, _ := g.Target(current)
		for _, dep := range t.Dependencies {
			if !selected[dep] {
				queue = append(queue, dep)
			}
		}
	}

	return selected
}
