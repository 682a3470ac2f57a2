package render_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/render"
	"go.trai.ch/rig/internal/core/domain"
)

func addTarget(t *testing.T, b *domain.Build, name, description string, deps ...string) {
	t.Helper()
	require.NoError(t, b.Targets.AddTarget(&domain.Target{
		Name:         domain.NewInternedString(name),
		Description:  description,
		Dependencies: domain.InternStrings(deps),
	}))
}

func sampleBuild(t *testing.T) *domain.Build {
	t.Helper()
	b := domain.NewBuild("/work")
	addTarget(t, b, "restore", "Restore modules")
	addTarget(t, b, "compile", "Compile the sources", "restore")
	addTarget(t, b, "test", "", "compile")
	addTarget(t, b, "publish", "Publish packages", "compile", "test")
	b.DeclaredDefault = domain.NewInternedString("compile")
	b.Parameters = []domain.Parameter{
		{Name: "ApiKey", Required: true, Secret: true, Default: "abc"},
		{Name: "Configuration", Description: "Build configuration", Default: "Debug"},
		{Name: "Verbosity"},
	}
	return b
}

func TestHelp_TargetsText(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "targets", []byte(render.NewHelp().TargetsText(sampleBuild(t))))
}

func TestHelp_ParametersText(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "parameters", []byte(render.NewHelp().ParametersText(sampleBuild(t))))
}

func TestHelp_Empty(t *testing.T) {
	b := domain.NewBuild("/work")

	assert.Equal(t, "No targets declared.", render.NewHelp().TargetsText(b))
	assert.Equal(t, "No parameters declared.", render.NewHelp().ParametersText(b))
	assert.Equal(t, "No targets declared.", render.NewGraph().Graph(b))
}

func TestGraph(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "graph", []byte(render.NewGraph().Graph(sampleBuild(t))))
}

func TestGraph_Cycle(t *testing.T) {
	b := domain.NewBuild("/work")
	addTarget(t, b, "a", "", "b")
	addTarget(t, b, "b", "", "a")

	g := goldie.New(t)
	g.Assert(t, "graph_cycle", []byte(render.NewGraph().Graph(b)))
}
