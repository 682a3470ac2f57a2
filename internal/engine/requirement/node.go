package requirement

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the requirement validator Graft node.
const NodeID graft.ID = "engine.requirement"

func init() {
	graft.Register(graft.Node[ports.RequirementValidator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequirementValidator, error) {
			return New(), nil
		},
	})
}
