package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the output sink Graft node.
const NodeID graft.ID = "adapter.output"

func init() {
	graft.Register(graft.Node[ports.OutputSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputSink, error) {
			return NewSink(nil, nil), nil
		},
	})
}
