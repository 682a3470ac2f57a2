package metrics

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the run metrics Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.RunMetrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunMetrics, error) {
			return NewRecorder(os.Getenv(FileEnv)), nil
		},
	})
}
