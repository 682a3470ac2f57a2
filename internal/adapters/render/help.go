// Package render produces the informational texts of a build: the targets and
// parameters help and the dependency graph.
package render

import (
	"fmt"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
)

const secretMask = "*****"

// Help implements ports.HelpRenderer.
type Help struct{}

// NewHelp creates a new Help renderer.
func NewHelp() *Help {
	return &Help{}
}

// TargetsText lists every declared target with its direct dependencies and description.
func (h *Help) TargetsText(b *domain.Build) string {
	names := b.Targets.Names()
	if len(names) == 0 {
		return "No targets declared."
	}

	defaultTarget := b.DefaultTarget
	if defaultTarget.IsZero() {
		defaultTarget = b.DeclaredDefault
	}

	labels := make([]string, len(names))
	deps := make([]string, len(names))
	labelWidth, depsWidth := 0, 0
	for i, name := range names {
		labels[i] = name.String()
		if name == defaultTarget {
			labels[i] += " (default)"
		}
		labelWidth = max(labelWidth, len(labels[i]))

		target, _ := b.Targets.Target(name)
		if len(target.Dependencies) > 0 {
			parts := make([]string, len(target.Dependencies))
			for j, dep := range target.Dependencies {
				parts[j] = dep.String()
			}
			deps[i] = "-> " + strings.Join(parts, ", ")
		}
		depsWidth = max(depsWidth, len(deps[i]))
	}

	var sb strings.Builder
	sb.WriteString("Targets (with their direct dependencies):\n\n")
	for i, name := range names {
		target, _ := b.Targets.Target(name)
		line := fmt.Sprintf("  %-*s  %-*s  %s", labelWidth, labels[i], depsWidth, deps[i], target.Description)
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// ParametersText lists every declared parameter with its description,
// default value and whether it is required. Secret defaults are masked.
func (h *Help) ParametersText(b *domain.Build) string {
	if len(b.Parameters) == 0 {
		return "No parameters declared."
	}

	width := 0
	for _, p := range b.Parameters {
		width = max(width, len(p.Name)+2)
	}

	var sb strings.Builder
	sb.WriteString("Parameters:\n\n")
	for _, p := range b.Parameters {
		var notes []string
		if p.Description != "" {
			notes = append(notes, p.Description)
		}
		if p.Required {
			notes = append(notes, "(required)")
		}
		if p.Default != "" {
			value := p.Default
			if p.Secret {
				value = secretMask
			}
			notes = append(notes, fmt.Sprintf("Default is '%s'.", value))
		}

		line := fmt.Sprintf("  %-*s  %s", width, "--"+p.Name, strings.Join(notes, " "))
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
