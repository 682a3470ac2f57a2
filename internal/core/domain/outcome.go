package domain

import "github.com/cespare/xxhash/v2"

// ExitCodeZeroHash is the reserved exit code used when a failure message
// hashes to zero, so that 0 keeps meaning success.
const ExitCodeZeroHash = 1

// Outcome is the result of one invocation.
type Outcome struct {
	// Code is 0 on success, otherwise ExitCode of the top-level failure message.
	Code int
	// Targets is the executable target set, when resolution completed.
	Targets []*ExecutableTarget
	// Resolved reports whether the executable target set was computed.
	Resolved bool
	// Terminated reports an informational early exit (help or graph);
	// the caller should stop immediately with Code.
	Terminated bool
	// Failure is the top-level failure of the run, nil on success.
	Failure *Failure
}

// Succeeded reports whether the run completed without failure.
func (o Outcome) Succeeded() bool {
	return o.Code == 0 && o.Failure == nil
}

// ExitCode derives the deterministic, non-zero exit code of a failure message.
func ExitCode(message string) int {
	return exitCodeFromHash(int32(uint32(xxhash.Sum64String(message)))) //nolint:gosec // truncation is intended
}

func exitCodeFromHash(h int32) int {
	if h == 0 {
		return ExitCodeZeroHash
	}
	return -int(h)
}

// ProcessStatus converts an outcome code into an operating system exit status.
// POSIX keeps only the low byte of the status, so a non-zero code whose low
// byte is zero is reported as 1 instead of silently becoming success.
func ProcessStatus(code int) int {
	if code != 0 && code&0xff == 0 {
		return 1
	}
	return code
}
