package domain

import (
	"sync"
	"time"
)

// TargetStatus represents the lifecycle state of an executable target within a run.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting for its dependencies.
	StatusPending TargetStatus = "pending"
	// StatusRunning indicates the target's work is executing.
	StatusRunning TargetStatus = "running"
	// StatusSucceeded indicates the target's work finished successfully.
	StatusSucceeded TargetStatus = "succeeded"
	// StatusFailed indicates the target's work failed.
	StatusFailed TargetStatus = "failed"
	// StatusSkipped indicates the target did not run, either on request or because a dependency failed.
	StatusSkipped TargetStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Succeeded, Failed, Skipped).
func (s TargetStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// ExecutableTarget is a declared target selected to run in this invocation,
// together with its run-time status. Status updates are safe for concurrent use.
type ExecutableTarget struct {
	Target Target
	// Invoked reports whether the caller requested this target directly.
	Invoked bool

	mu       sync.RWMutex
	status   TargetStatus
	started  time.Time
	duration time.Duration
	reason   string
	err      error
}

// NewExecutableTarget creates a pending executable target.
func NewExecutableTarget(t Target, invoked bool) *ExecutableTarget {
	return &ExecutableTarget{
		Target:  t,
		Invoked: invoked,
		status:  StatusPending,
	}
}

// Name returns the target name.
func (e *ExecutableTarget) Name() InternedString {
	return e.Target.Name
}

// Status returns the current status.
func (e *ExecutableTarget) Status() TargetStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// Duration returns how long the target's work ran.
func (e *ExecutableTarget) Duration() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.duration
}

// Err returns the failure of the target's work, if it failed.
func (e *ExecutableTarget) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err
}

// SkipReason returns why the target was skipped.
func (e *ExecutableTarget) SkipReason() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reason
}

// MarkRunning records that the target's work started at now.
func (e *ExecutableTarget) MarkRunning(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = StatusRunning
	e.started = now
}

// MarkFinished records the end of the target's work. A nil err means success.
func (e *ExecutableTarget) MarkFinished(now time.Time, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = now.Sub(e.started)
	e.err = err
	if err != nil {
		e.status = StatusFailed
		return
	}
	e.status = StatusSucceeded
}

// MarkSkipped records that the target will not run.
func (e *ExecutableTarget) MarkSkipped(reason string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = StatusSkipped
	e.reason = reason
}
