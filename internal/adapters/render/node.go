package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

const (
	// HelpNodeID is the unique identifier for the help renderer Graft node.
	HelpNodeID graft.ID = "adapter.render.help"
	// GraphNodeID is the unique identifier for the graph renderer Graft node.
	GraphNodeID graft.ID = "adapter.render.graph"
)

func init() {
	graft.Register(graft.Node[ports.HelpRenderer]{
		ID:        HelpNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HelpRenderer, error) {
			return NewHelp(), nil
		},
	})

	graft.Register(graft.Node[ports.GraphRenderer]{
		ID:        GraphNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphRenderer, error) {
			return NewGraph(), nil
		},
	})
}
