package wiring_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/adapters/host"
	"go.trai.ch/rig/internal/adapters/inject"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/rig/internal/adapters/metrics"
	"go.trai.ch/rig/internal/adapters/output"
	"go.trai.ch/rig/internal/adapters/render"
	"go.trai.ch/rig/internal/adapters/shell"
	"go.trai.ch/rig/internal/adapters/telemetry"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/executor"
	"go.trai.ch/rig/internal/engine/requirement"
	"go.trai.ch/rig/internal/engine/resolver"
	_ "go.trai.ch/rig/internal/wiring"
)

func TestRegistry_EveryNodeRegistered(t *testing.T) {
	registry := graft.Registry()

	for _, id := range []graft.ID{
		config.NodeID,
		host.NodeID,
		inject.NodeID,
		logger.NodeID,
		metrics.NodeID,
		output.NodeID,
		render.HelpNodeID,
		render.GraphNodeID,
		shell.NodeID,
		telemetry.TracerNodeID,
		progrock.NodeID,
		resolver.NodeID,
		requirement.NodeID,
		executor.NodeID,
		app.ControllerNodeID,
		app.AppNodeID,
		app.ComponentsNodeID,
	} {
		_, ok := registry[id]
		assert.True(t, ok, "node %s is not registered", id)
	}
}

func TestRegistry_GraphIsComplete(t *testing.T) {
	// PrintGraph fails on dependencies that are not registered and on cycles.
	var buf bytes.Buffer
	require.NoError(t, graft.PrintGraph(&buf))
	assert.Contains(t, buf.String(), string(app.ControllerNodeID))
}

func TestRegistry_ControllerDependsOnEngine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graft.PrintMermaid(&buf))

	for _, dep := range []graft.ID{resolver.NodeID, requirement.NodeID, executor.NodeID, inject.NodeID, config.NodeID} {
		assert.Contains(t, buf.String(), string(dep)+" --> "+string(app.ControllerNodeID))
	}
}

func TestRegistry_ResolvesEngineNodes(t *testing.T) {
	ctx := context.Background()

	r, _, err := graft.ExecuteFor[ports.TargetResolver](ctx)
	require.NoError(t, err)
	assert.IsType(t, &resolver.Resolver{}, r)

	v, _, err := graft.ExecuteFor[ports.RequirementValidator](ctx)
	require.NoError(t, err)
	assert.IsType(t, &requirement.Validator{}, v)
}
