package requirement_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/engine/requirement"
	"go.trai.ch/zerr"
)

func target(name string, reqs ...domain.Requirement) *domain.ExecutableTarget {
	return domain.NewExecutableTarget(domain.Target{
		Name:         domain.NewInternedString(name),
		Requirements: reqs,
	}, true)
}

func param(name string) domain.Requirement {
	return domain.Requirement{Kind: domain.RequirementParameter, Value: name}
}

func env(name string) domain.Requirement {
	return domain.Requirement{Kind: domain.RequirementEnv, Value: name}
}

func file(path string) domain.Requirement {
	return domain.Requirement{Kind: domain.RequirementFile, Value: path}
}

func unmet(t *testing.T, err error) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, leaf := range domain.Flatten(err) {
		zErr, ok := leaf.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", leaf)
		assert.Equal(t, "requirement not met", zErr.Message())
		out = append(out, zErr.Metadata())
	}
	return out
}

func TestValidate_AllMet(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o600))

	b := domain.NewBuild(root)
	b.Values["Configuration"] = "Release"
	b.Env["RIG_REQUIREMENT_TOKEN"] = ""

	targets := []*domain.ExecutableTarget{
		target("compile", param("Configuration"), file("go.mod")),
		target("publish", env("RIG_REQUIREMENT_TOKEN")),
	}

	assert.NoError(t, requirement.New().Validate(t.Context(), targets, b))
}

func TestValidate_CollectsEveryUnmetRequirement(t *testing.T) {
	b := domain.NewBuild(t.TempDir())
	b.Values["Empty"] = ""

	targets := []*domain.ExecutableTarget{
		target("compile", param("Configuration"), param("Empty")),
		target("publish", env("RIG_REQUIREMENT_UNSET_VARIABLE"), file("missing.txt")),
	}

	err := requirement.New().Validate(t.Context(), targets, b)
	require.Error(t, err)

	assert.Equal(t, []map[string]any{
		{"requirement": "param:Configuration", "target": "compile"},
		{"requirement": "param:Empty", "target": "compile"},
		{"requirement": "env:RIG_REQUIREMENT_UNSET_VARIABLE", "target": "publish"},
		{"requirement": "file:missing.txt", "target": "publish"},
	}, unmet(t, err))
}

func TestValidate_IgnoresSkippedTargets(t *testing.T) {
	b := domain.NewBuild(t.TempDir())

	skipped := target("publish", param("ApiKey"))
	skipped.MarkSkipped("skipped by request")

	assert.NoError(t, requirement.New().Validate(t.Context(), []*domain.ExecutableTarget{skipped}, b))
}

func TestValidate_AbsoluteFile(t *testing.T) {
	dir := t.TempDir()
	b := domain.NewBuild(t.TempDir())

	targets := []*domain.ExecutableTarget{target("compile", file(dir))}

	assert.NoError(t, requirement.New().Validate(t.Context(), targets, b))
}

func TestValidate_EnvironmentComesFromInvocation(t *testing.T) {
	t.Setenv("RIG_REQUIREMENT_PROCESS_ONLY", "1")
	b := domain.NewBuild(t.TempDir())

	targets := []*domain.ExecutableTarget{target("publish", env("RIG_REQUIREMENT_PROCESS_ONLY"))}

	err := requirement.New().Validate(t.Context(), targets, b)
	assert.Equal(t, []map[string]any{
		{"requirement": "env:RIG_REQUIREMENT_PROCESS_ONLY", "target": "publish"},
	}, unmet(t, err))
}
