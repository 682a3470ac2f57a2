package ports

import "go.trai.ch/rig/internal/core/domain"

// OutputSink renders the errors and the final summary of a run.
//
//go:generate mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type OutputSink interface {
	// Error renders one error record.
	Error(message, detail string)
	// WriteSummary renders the per-target status of the executable target set.
	WriteSummary(targets []*domain.ExecutableTarget)
}

// HelpRenderer produces the help text shown by the help early exit.
type HelpRenderer interface {
	TargetsText(build *domain.Build) string
	ParametersText(build *domain.Build) string
}

// GraphRenderer produces the dependency graph shown by the graph early exit.
type GraphRenderer interface {
	Graph(build *domain.Build) string
}

// HostDetector identifies the environment the tool runs in, for the banner.
type HostDetector interface {
	Host() string
}
