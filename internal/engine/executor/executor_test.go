package executor_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.trai.ch/rig/internal/engine/executor"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	runner *mocks.MockExecutor
	exec   *executor.Executor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := mocks.NewMockExecutor(ctrl)
	return &fixture{
		runner: runner,
		exec:   executor.New(runner, telemetry, log),
	}
}

func newTarget(name string, deps ...string) *domain.ExecutableTarget {
	return domain.NewExecutableTarget(domain.Target{
		Name:         domain.NewInternedString(name),
		Dependencies: domain.InternStrings(deps),
	}, false)
}

func withParallelism(ctx context.Context, n int) context.Context {
	b := domain.NewBuild("/work")
	b.Parallelism = n
	return domain.WithBuild(ctx, b)
}

func statuses(targets []*domain.ExecutableTarget) map[string]domain.TargetStatus {
	out := make(map[string]domain.TargetStatus, len(targets))
	for _, et := range targets {
		out[et.Name().String()] = et.Status()
	}
	return out
}

func TestExecute_Diamond(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		// D <- B, D <- C, B <- A, C <- A
		targets := []*domain.ExecutableTarget{
			newTarget("D"),
			newTarget("B", "D"),
			newTarget("C", "D"),
			newTarget("A", "B", "C"),
		}

		dStarted := make(chan struct{})
		dProceed := make(chan struct{})
		bStarted := make(chan struct{})
		cStarted := make(chan struct{})
		proceed := make(chan struct{})

		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				switch target.Name.String() {
				case "D":
					close(dStarted)
					<-dProceed
					return nil
				case "B":
					close(bStarted)
					<-proceed
					return errors.New("B failed")
				case "C":
					close(cStarted)
					<-proceed
					return nil
				default:
					t.Errorf("unexpected target %s", target.Name)
					return nil
				}
			}).Times(3)

		errCh := make(chan error)
		go func() {
			errCh <- f.exec.Execute(withParallelism(t.Context(), 2), targets)
		}()

		synctest.Wait()
		select {
		case <-dStarted:
		default:
			t.Fatal("D did not start")
		}
		assert.Equal(t, domain.StatusRunning, targets[0].Status())
		assert.Equal(t, domain.StatusPending, targets[1].Status())

		close(dProceed)
		<-bStarted
		<-cStarted
		close(proceed)

		err := <-errCh
		require.Error(t, err)

		leaves := domain.Flatten(err)
		require.Len(t, leaves, 1)
		assert.Equal(t, "B failed", leaves[0].Error())

		var invErr *domain.InvocationError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, "B", invErr.Target.String())

		assert.Equal(t, map[string]domain.TargetStatus{
			"D": domain.StatusSucceeded,
			"B": domain.StatusFailed,
			"C": domain.StatusSucceeded,
			"A": domain.StatusSkipped,
		}, statuses(targets))
		assert.Equal(t, "dependency B failed", targets[3].SkipReason())
	})
}

func TestExecute_UnrelatedBranchesKeepRunning(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		targets := []*domain.ExecutableTarget{
			newTarget("compile"),
			newTarget("lint"),
			newTarget("test", "compile"),
			newTarget("publish", "test"),
			newTarget("docs", "lint"),
		}

		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				if target.Name.String() == "compile" {
					return errors.New("compile failed")
				}
				return nil
			}).Times(3)

		err := f.exec.Execute(withParallelism(t.Context(), 1), targets)
		require.Error(t, err)

		assert.Equal(t, map[string]domain.TargetStatus{
			"compile": domain.StatusFailed,
			"lint":    domain.StatusSucceeded,
			"test":    domain.StatusSkipped,
			"publish": domain.StatusSkipped,
			"docs":    domain.StatusSucceeded,
		}, statuses(targets))
		assert.Equal(t, "dependency compile failed", targets[3].SkipReason())
	})
}

func TestExecute_EveryFailureReported(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		targets := []*domain.ExecutableTarget{
			newTarget("a"),
			newTarget("b"),
			newTarget("c"),
		}

		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				if target.Name.String() == "b" {
					return nil
				}
				return errors.New(target.Name.String() + " failed")
			}).Times(3)

		err := f.exec.Execute(withParallelism(t.Context(), 3), targets)
		require.Error(t, err)

		leaves := domain.Flatten(err)
		require.Len(t, leaves, 2)
		assert.Equal(t, "a failed", leaves[0].Error())
		assert.Equal(t, "c failed", leaves[1].Error())
		assert.Equal(t, "a failed\nc failed", err.Error())
	})
}

func TestExecute_PanickingWorkFailsTarget(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		targets := []*domain.ExecutableTarget{
			newTarget("compile"),
			newTarget("test", "compile"),
			newTarget("docs"),
		}

		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				if target.Name.String() == "compile" {
					panic("boom")
				}
				return nil
			}).Times(2)

		err := f.exec.Execute(withParallelism(t.Context(), 2), targets)
		require.Error(t, err)

		leaves := domain.Flatten(err)
		require.Len(t, leaves, 1)
		assert.Equal(t, domain.ErrPhasePanicked.Error(), leaves[0].Error())
		assert.Equal(t, "panic: boom\ntarget: compile", domain.Detail(leaves[0]))

		assert.Equal(t, map[string]domain.TargetStatus{
			"compile": domain.StatusFailed,
			"test":    domain.StatusSkipped,
			"docs":    domain.StatusSucceeded,
		}, statuses(targets))
	})
}

func TestExecute_FailureNamesTarget(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("exit status 1"))

		err := f.exec.Execute(withParallelism(t.Context(), 1), []*domain.ExecutableTarget{newTarget("lint")})
		require.Error(t, err)

		leaves := domain.Flatten(err)
		require.Len(t, leaves, 1)
		assert.Equal(t, "exit status 1", leaves[0].Error())
		assert.Equal(t, "target: lint", domain.Detail(leaves[0]))
	})
}

func TestExecute_BoundedParallelism(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		targets := []*domain.ExecutableTarget{
			newTarget("a"),
			newTarget("b"),
			newTarget("c"),
			newTarget("d"),
			newTarget("e"),
		}

		var mu sync.Mutex
		running, peak := 0, 0
		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				mu.Lock()
				running++
				peak = max(peak, running)
				mu.Unlock()

				time.Sleep(time.Second)

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			}).Times(5)

		start := time.Now()
		require.NoError(t, f.exec.Execute(withParallelism(t.Context(), 2), targets))

		assert.Equal(t, 2, peak)
		assert.Equal(t, 3*time.Second, time.Since(start))
		for _, et := range targets {
			assert.Equal(t, domain.StatusSucceeded, et.Status())
			assert.Equal(t, time.Second, et.Duration())
		}
	})
}

func TestExecute_SkippedTargetsReleaseDependents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		lint := newTarget("lint")
		lint.MarkSkipped("skipped by request")
		targets := []*domain.ExecutableTarget{
			newTarget("compile"),
			lint,
			newTarget("publish", "compile", "lint"),
		}

		var ran []string
		f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, target *domain.Target, _ string, _ []string, _, _ io.Writer) error {
				ran = append(ran, target.Name.String())
				return nil
			}).Times(2)

		require.NoError(t, f.exec.Execute(withParallelism(t.Context(), 1), targets))

		assert.Equal(t, []string{"compile", "publish"}, ran)
		assert.Equal(t, domain.StatusSkipped, lint.Status())
		assert.Equal(t, "skipped by request", lint.SkipReason())
		assert.Equal(t, domain.StatusSucceeded, targets[2].Status())
	})
}

func TestExecute_PassesBuildRootAndParameters(t *testing.T) {
	f := newFixture(t)

	b := domain.NewBuild("/work")
	b.Values["Configuration"] = "Release"
	ctx := domain.WithBuild(t.Context(), b)

	f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), "/work", []string{"RIG_CONFIGURATION=Release"}, gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, f.exec.Execute(ctx, []*domain.ExecutableTarget{newTarget("compile")}))
}

func TestExecute_WithoutBuild(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().Execute(gomock.Any(), gomock.Any(), "", gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, f.exec.Execute(t.Context(), []*domain.ExecutableTarget{newTarget("compile")}))
}

func TestExecute_EmptySet(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, f.exec.Execute(t.Context(), nil))
}
