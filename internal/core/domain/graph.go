// Package domain contains the core domain models of a build run: the declared
// targets and their dependency graph, the build definition, and the failure
// and outcome model of a single invocation.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents the declared targets of a build and their dependency edges.
type Graph struct {
	targets        map[InternedString]Target
	dependents     map[InternedString][]InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets:    make(map[InternedString]Target),
		dependents: make(map[InternedString][]InternedString),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	for _, dep := range t.Dependencies {
		g.dependents[dep] = append(g.dependents[dep], t.Name)
	}
	g.executionOrder = nil
	return nil
}

// Target returns the declared target with the given name.
func (g *Graph) Target(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Len returns the number of declared targets.
func (g *Graph) Len() int {
	return len(g.targets)
}

// Names returns every declared target name sorted alphabetically.
func (g *Graph) Names() []InternedString {
	names := make([]InternedString, 0, len(g.targets))
	for name := range g.targets {
		names = append(names, name)
	}
	slices.SortFunc(names, InternedString.Compare)
	return names
}

// Dependents returns the targets that directly depend on name, sorted by name.
func (g *Graph) Dependents(name InternedString) []InternedString {
	deps := slices.Clone(g.dependents[name])
	slices.SortFunc(deps, InternedString.Compare)
	return deps
}

// Validate checks for missing dependencies and cycles using a depth-first topological sort.
// Targets are visited in name order so the resulting execution order is deterministic.
func (g *Graph) Validate() error {
	order := make([]InternedString, 0, len(g.targets))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target := g.targets[u]
		for _, dep := range target.Dependencies {
			if _, exists := g.targets[dep]; !exists {
				return zerr.With(zerr.With(ErrMissingDependency, "dependency", dep.String()), "target", u.String())
			}
			switch visited[dep] {
			case 1:
				return buildCycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, name := range g.Names() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	g.executionOrder = order
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []InternedString, dep InternedString) error {
	startIdx := slices.Index(path, dep)
	segments := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		segments = append(segments, node.String())
	}
	segments = append(segments, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(segments, " -> "))
}

// Walk returns an iterator that yields targets in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}
