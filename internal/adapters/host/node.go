package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the host detector Graft node.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.HostDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostDetector, error) {
			return NewDetector(), nil
		},
	})
}
