package app

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rig/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/host"               //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/inject"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/output"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/render"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/executor"
	"go.trai.ch/rig/internal/engine/lifecycle"
	"go.trai.ch/rig/internal/engine/requirement"
	"go.trai.ch/rig/internal/engine/resolver"
)

const (
	// ControllerNodeID is the unique identifier for the lifecycle controller Graft node.
	ControllerNodeID graft.ID = "app.controller"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Controller Node
	graft.Register(graft.Node[*lifecycle.Controller]{
		ID:        ControllerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			inject.NodeID,
			resolver.NodeID,
			requirement.NodeID,
			executor.NodeID,
			output.NodeID,
			render.HelpNodeID,
			render.GraphNodeID,
			host.NodeID,
			logger.NodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runControllerNode,
	})

	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ControllerNodeID,
			progrock.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			controller, err := graft.Dep[*lifecycle.Controller](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			tracing, err := graft.Dep[*sdktrace.TracerProvider](ctx)
			if err != nil {
				return nil, err
			}

			return New(controller, recorder, tracing), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runControllerNode(ctx context.Context) (*lifecycle.Controller, error) {
	var (
		c   lifecycle.Collaborators
		err error
	)

	if c.Factory, err = graft.Dep[ports.BuildFactory](ctx); err != nil {
		return nil, err
	}
	if c.Injector, err = graft.Dep[ports.Injector](ctx); err != nil {
		return nil, err
	}
	if c.Resolver, err = graft.Dep[ports.TargetResolver](ctx); err != nil {
		return nil, err
	}
	if c.Validator, err = graft.Dep[ports.RequirementValidator](ctx); err != nil {
		return nil, err
	}
	if c.Executor, err = graft.Dep[ports.TargetExecutor](ctx); err != nil {
		return nil, err
	}
	if c.Sink, err = graft.Dep[ports.OutputSink](ctx); err != nil {
		return nil, err
	}
	if c.Help, err = graft.Dep[ports.HelpRenderer](ctx); err != nil {
		return nil, err
	}
	if c.Graph, err = graft.Dep[ports.GraphRenderer](ctx); err != nil {
		return nil, err
	}
	if c.Host, err = graft.Dep[ports.HostDetector](ctx); err != nil {
		return nil, err
	}
	if c.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if c.Metrics, err = graft.Dep[ports.RunMetrics](ctx); err != nil {
		return nil, err
	}

	tracing, err := graft.Dep[*sdktrace.TracerProvider](ctx)
	if err != nil {
		return nil, err
	}

	return lifecycle.New(c).WithTracer(tracing.Tracer(lifecycle.ToolName)), nil
}
