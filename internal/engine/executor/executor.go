// Package executor runs an executable target set in dependency order.
package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.TargetExecutor.
type Executor struct {
	runner    ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new Executor that runs target work with runner.
func New(runner ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Executor {
	return &Executor{
		runner:    runner,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute runs every target of the set to a terminal status.
//
// Independent targets run concurrently, bounded by the parallelism of the
// current build. A failed target marks its transitive dependents skipped
// while unrelated targets keep running. Running targets are never cancelled.
func (e *Executor) Execute(ctx context.Context, targets []*domain.ExecutableTarget) error {
	if len(targets) == 0 {
		return nil
	}

	state := e.newRunState(ctx, targets)
	state.runExecutionLoop()

	var errs []error
	for _, et := range targets {
		if et.Status() == domain.StatusFailed {
			errs = append(errs, &domain.InvocationError{Target: et.Name(), Err: et.Err()})
		}
	}
	return errors.Join(errs...)
}

type result struct {
	target domain.InternedString
	err    error
}

type runState struct {
	e           *Executor
	ctx         context.Context
	targets     map[domain.InternedString]*domain.ExecutableTarget
	dependents  map[domain.InternedString][]domain.InternedString
	inDegree    map[domain.InternedString]int
	ready       []domain.InternedString
	active      int
	parallelism int
	dir         string
	env         []string
	group       *errgroup.Group
	resultsCh   chan result
}

func (e *Executor) newRunState(ctx context.Context, targets []*domain.ExecutableTarget) *runState {
	parallelism := runtime.NumCPU()
	var dir string
	var env []string
	if b, ok := domain.BuildFrom(ctx); ok {
		if b.Parallelism > 0 {
			parallelism = b.Parallelism
		}
		dir = b.Root
		env = b.Environ()
	}

	byName := make(map[domain.InternedString]*domain.ExecutableTarget, len(targets))
	for _, et := range targets {
		byName[et.Name()] = et
	}

	dependents := make(map[domain.InternedString][]domain.InternedString)
	inDegree := make(map[domain.InternedString]int, len(targets))
	var ready []domain.InternedString
	for _, et := range targets {
		degree := 0
		for _, dep := range et.Target.Dependencies {
			if _, ok := byName[dep]; ok {
				degree++
				dependents[dep] = append(dependents[dep], et.Name())
			}
		}
		inDegree[et.Name()] = degree
		if degree == 0 {
			ready = append(ready, et.Name())
		}
	}

	group := &errgroup.Group{}
	group.SetLimit(parallelism)

	return &runState{
		e:           e,
		ctx:         ctx,
		targets:     byName,
		dependents:  dependents,
		inDegree:    inDegree,
		ready:       ready,
		parallelism: parallelism,
		dir:         dir,
		env:         env,
		group:       group,
		resultsCh:   make(chan result, parallelism),
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) runExecutionLoop() {
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		state.handleResult(<-state.resultsCh)
	}

	_ = state.group.Wait()
	state.skipUnreached()
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism {
		name := state.ready[0]
		state.ready = state.ready[1:]

		et := state.targets[name]
		if et.Status() == domain.StatusSkipped {
			state.release(name)
			continue
		}

		state.active++
		et.MarkRunning(state.e.now())

		state.group.Go(func() error {
			state.resultsCh <- result{target: name, err: state.executeTarget(et)}
			return nil
		})
	}
}

// executeTarget runs the work of one target. A panic in the work becomes the
// target's failure.
func (state *runState) executeTarget(et *domain.ExecutableTarget) (err error) {
	name := et.Name().String()
	state.e.logger.Info("Running target " + name)

	ctx, vertex := state.e.telemetry.Record(state.ctx, name)
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrPhasePanicked, "panic", fmt.Sprint(r))
		}
		err = zerr.With(err, "target", name)
		vertex.Complete(err)
	}()

	return state.e.runner.Execute(ctx, &et.Target, state.dir, state.env, vertex.Stdout(), vertex.Stderr())
}

func (state *runState) handleResult(res result) {
	state.active--

	et := state.targets[res.target]
	et.MarkFinished(state.e.now(), res.err)
	if res.err != nil {
		state.skipDependents(res.target)
		return
	}
	state.release(res.target)
}

// release unblocks the dependents of a target that will not block them any longer.
func (state *runState) release(name domain.InternedString) {
	for _, dep := range state.dependents[name] {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

// skipDependents marks every pending transitive dependent of a failed target as skipped.
func (state *runState) skipDependents(failed domain.InternedString) {
	reason := "dependency " + failed.String() + " failed"

	queue := append([]domain.InternedString(nil), state.dependents[failed]...)
	visited := make(map[domain.InternedString]bool)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		if et := state.targets[current]; et.Status() == domain.StatusPending {
			et.MarkSkipped(reason)
		}
		queue = append(queue, state.dependents[current]...)
	}
}

// skipUnreached marks targets that never became ready as skipped.
func (state *runState) skipUnreached() {
	for _, et := range state.targets {
		if et.Status() == domain.StatusPending {
			et.MarkSkipped("dependency not completed")
		}
	}
}
