package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestBuildContext(t *testing.T) {
	_, ok := domain.BuildFrom(context.Background())
	assert.False(t, ok)

	b := domain.NewBuild("/work")
	ctx := domain.WithBuild(context.Background(), b)

	got, ok := domain.BuildFrom(ctx)
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestSelectTarget(t *testing.T) {
	b := domain.NewBuild("/work")
	require.NoError(t, b.Targets.AddTarget(newTarget("compile")))

	name, err := domain.SelectTarget("compile")(b)
	require.NoError(t, err)
	assert.Equal(t, "compile", name.String())

	_, err = domain.SelectTarget("deploy")(b)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "deploy", zErr.Metadata()["target"])
}

func TestSelectDeclaredDefault(t *testing.T) {
	b := domain.NewBuild("/work")
	require.NoError(t, b.Targets.AddTarget(newTarget("compile")))

	_, err := domain.SelectDeclaredDefault()(b)
	assert.ErrorIs(t, err, domain.ErrNoDefaultTarget)

	b.DeclaredDefault = domain.NewInternedString("compile")
	name, err := domain.SelectDeclaredDefault()(b)
	require.NoError(t, err)
	assert.Equal(t, "compile", name.String())
}

func TestBuild_IsSkipped(t *testing.T) {
	b := domain.NewBuild("/work")
	b.SkippedTargets = domain.InternStrings([]string{"lint"})

	assert.True(t, b.IsSkipped(domain.NewInternedString("lint")))
	assert.False(t, b.IsSkipped(domain.NewInternedString("compile")))
}

func TestInvocationGetenv(t *testing.T) {
	inv := domain.Invocation{Environ: []string{"A=1", "B=", "A=2", "broken"}}

	v, ok := inv.Getenv("A")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = inv.Getenv("B")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = inv.Getenv("broken")
	assert.False(t, ok)
}

func TestEnvVar(t *testing.T) {
	tests := map[string]string{
		"ApiKey":        "RIG_API_KEY",
		"Configuration": "RIG_CONFIGURATION",
		"nuget-source":  "RIG_NUGET_SOURCE",
		"Target2Name":   "RIG_TARGET2_NAME",
		"URL":           "RIG_URL",
	}

	for in, want := range tests {
		assert.Equal(t, want, domain.EnvVar(in), in)
	}
}

func TestBuildEnviron(t *testing.T) {
	b := domain.NewBuild("/work")
	b.Values["Configuration"] = "Release"
	b.Values["ApiKey"] = "secret"

	assert.Equal(t, []string{"RIG_API_KEY=secret", "RIG_CONFIGURATION=Release"}, b.Environ())
}
