package host

// NewDetectorWith creates a Detector with the given environment and terminal probe.
func NewDetectorWith(getenv func(string) string, isTerminal func() bool) *Detector {
	return &Detector{getenv: getenv, isTerminal: isTerminal}
}
