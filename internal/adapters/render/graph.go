package render

import (
	"slices"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
)

// Graph implements ports.GraphRenderer as a text tree per target.
type Graph struct{}

// NewGraph creates a new Graph renderer.
func NewGraph() *Graph {
	return &Graph{}
}

// Graph renders every declared target, in execution order, followed by the
// tree of its transitive dependencies. If the graph has a cycle, targets are
// listed by name and the edge closing the cycle is marked.
func (r *Graph) Graph(b *domain.Build) string {
	order := b.Targets.Names()
	if err := b.Targets.Validate(); err == nil {
		order = order[:0]
		for t := range b.Targets.Walk() {
			order = append(order, t.Name)
		}
	}

	if len(order) == 0 {
		return "No targets declared."
	}

	var sb strings.Builder
	for _, name := range order {
		sb.WriteString(name.String())
		sb.WriteString("\n")
		r.writeDependencies(&sb, b.Targets, name, "", []domain.InternedString{name})
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (r *Graph) writeDependencies(
	sb *strings.Builder,
	g *domain.Graph,
	name domain.InternedString,
	indent string,
	path []domain.InternedString,
) {
	target, _ := g.Target(name)
	for i, dep := range target.Dependencies {
		branch, next := "├── ", "│   "
		if i == len(target.Dependencies)-1 {
			branch, next = "└── ", "    "
		}

		sb.WriteString(indent + branch + dep.String())
		if slices.Contains(path, dep) {
			sb.WriteString(" (cycle)\n")
			continue
		}
		sb.WriteString("\n")
		r.writeDependencies(sb, g, dep, indent+next, append(path, dep))
	}
}
