package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the target resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.TargetResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetResolver, error) {
			return New(), nil
		},
	})
}
