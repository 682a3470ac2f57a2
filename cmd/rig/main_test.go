package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.trai.ch/rig/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"rig": func() { os.Exit(rigMain()) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("CI", "true")
			return nil
		},
	})
}

type fixture struct {
	factory   *mocks.MockBuildFactory
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	sink      *mocks.MockOutputSink
	provider  ComponentProvider
}

type noopTracing struct{}

func (noopTracing) Shutdown(context.Context) error { return nil }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		factory:   mocks.NewMockBuildFactory(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		sink:      mocks.NewMockOutputSink(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	hostDetector := mocks.NewMockHostDetector(ctrl)
	hostDetector.EXPECT().Host().Return("local").AnyTimes()

	controller := lifecycle.New(lifecycle.Collaborators{
		Factory:   f.factory,
		Injector:  mocks.NewMockInjector(ctrl),
		Resolver:  mocks.NewMockTargetResolver(ctrl),
		Validator: mocks.NewMockRequirementValidator(ctrl),
		Executor:  mocks.NewMockTargetExecutor(ctrl),
		Sink:      f.sink,
		Help:      mocks.NewMockHelpRenderer(ctrl),
		Graph:     mocks.NewMockGraphRenderer(ctrl),
		Host:      hostDetector,
		Logger:    f.logger,
	})
	application := app.New(controller, f.telemetry, noopTracing{})

	f.provider = func(context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: f.logger}, nil
	}
	return f
}

// TestRun_Version verifies that run returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	f := newFixture(t)
	f.telemetry.EXPECT().Close().Return(nil)

	stdout := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, domain.Invocation{}, stdout, new(bytes.Buffer), f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "rig version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, domain.Invocation{}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_BuildFailure verifies that the exit status is derived from the failure message.
func TestRun_BuildFailure(t *testing.T) {
	f := newFixture(t)
	f.telemetry.EXPECT().Close().Return(nil)

	base := domain.Invocation{WorkDir: "/work"}
	f.factory.EXPECT().Create(gomock.Any(), domain.Invocation{Args: []string{"compile"}, WorkDir: "/work"}, gomock.Any()).
		Return(nil, errors.New("could not find rig.yaml"))
	f.sink.EXPECT().Error("could not find rig.yaml", gomock.Any())

	exitCode := run(t.Context(), []string{"compile"}, base, new(bytes.Buffer), new(bytes.Buffer), f.provider)

	assert.Equal(t, domain.ProcessStatus(domain.ExitCode("could not find rig.yaml")), exitCode)
	assert.NotEqual(t, 0, exitCode)
}

// TestRun_CloseFailure verifies that a failing telemetry shutdown is only logged.
func TestRun_CloseFailure(t *testing.T) {
	f := newFixture(t)
	f.telemetry.EXPECT().Close().Return(errors.New("flush failed"))
	f.logger.EXPECT().Warn("failed to close telemetry: flush failed")

	exitCode := run(t.Context(), []string{"version"}, domain.Invocation{}, new(bytes.Buffer), new(bytes.Buffer), f.provider)

	assert.Equal(t, 0, exitCode)
}
