package ports

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of target work.
type Telemetry interface {
	// Record starts recording a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is the recording of one unit of work.
type Vertex interface {
	// Stdout returns a writer to capture standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer to capture error output stream.
	Stderr() io.Writer
	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)
}

// RunMetrics receives measurements of a build run.
type RunMetrics interface {
	// ObservePhase records how long a lifecycle phase took and whether it failed.
	ObservePhase(phase string, duration time.Duration, failed bool)
	// ObserveTarget records the terminal status of an executable target.
	ObserveTarget(name, status string, duration time.Duration)
	// ObserveOutcome records the exit code of the run.
	ObserveOutcome(code int)
	// Flush persists the collected measurements.
	Flush() error
}
