// Package lifecycle implements the invocation lifecycle controller: it drives
// one build run through construction, injection, the informational early
// exits, resolution, validation and execution, and collapses whatever fails
// along the way into a single deterministic outcome.
package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// ToolName is the name printed in the banner.
const ToolName = "rig"

const (
	phaseConstruct = "construct"
	phaseInject    = "inject"
	phaseEarlyExit = "early-exit"
	phaseResolve   = "resolve"
	phaseValidate  = "validate"
	phaseExecute   = "execute"
)

// Collaborators groups the services a Controller composes.
type Collaborators struct {
	Factory   ports.BuildFactory
	Injector  ports.Injector
	Resolver  ports.TargetResolver
	Validator ports.RequirementValidator
	Executor  ports.TargetExecutor
	Sink      ports.OutputSink
	Help      ports.HelpRenderer
	Graph     ports.GraphRenderer
	Host      ports.HostDetector
	Logger    ports.Logger
	// Metrics is optional.
	Metrics ports.RunMetrics
}

// Controller runs build invocations.
type Controller struct {
	c      Collaborators
	out    io.Writer
	tracer trace.Tracer
	now    func() time.Time
}

// New creates a Controller that prints informational output to stdout.
func New(c Collaborators) *Controller {
	if c.Metrics == nil {
		c.Metrics = noopMetrics{}
	}
	return &Controller{
		c:      c,
		out:    os.Stdout,
		tracer: otel.Tracer(ToolName),
		now:    time.Now,
	}
}

// WithOutput sets the writer help and graph text is printed to.
func (c *Controller) WithOutput(w io.Writer) *Controller {
	c.out = w
	return c
}

// WithTracer sets the tracer lifecycle phase spans are started with.
func (c *Controller) WithTracer(t trace.Tracer) *Controller {
	c.tracer = t
	return c
}

// Execute runs one invocation and returns its outcome.
//
// The summary is written exactly once when the executable target set was
// resolved, whatever happens afterwards. An informational early exit returns
// a Terminated outcome with code 0 and writes no summary.
func (c *Controller) Execute(ctx context.Context, inv domain.Invocation, selector domain.TargetSelector) domain.Outcome {
	c.banner()

	outcome, failure := c.run(ctx, inv, selector)
	if outcome.Terminated {
		return outcome
	}

	if failure != nil {
		c.report(failure)
		outcome.Failure = failure
		outcome.Code = domain.ExitCode(failure.Error())
	}

	if outcome.Resolved {
		c.c.Sink.WriteSummary(outcome.Targets)
	}

	c.observe(outcome)
	return outcome
}

func (c *Controller) banner() {
	c.c.Logger.Info(ToolName)
	c.c.Logger.Info(fmt.Sprintf("Version: %s (commit: %s)", build.Version, build.Commit))
	c.c.Logger.Info("Host: " + c.c.Host.Host())
}

func (c *Controller) run(
	ctx context.Context,
	inv domain.Invocation,
	selector domain.TargetSelector,
) (domain.Outcome, *domain.Failure) {
	var b *domain.Build
	if f := c.phase(ctx, phaseConstruct, domain.FailureConstruction, func(ctx context.Context) error {
		var err error
		b, err = c.c.Factory.Create(ctx, inv, selector)
		if err == nil && b == nil {
			err = domain.ErrNoBuildDefinition
		}
		return err
	}); f != nil {
		return domain.Outcome{}, f
	}

	// Every collaborator from here on sees the current build through ctx.
	ctx = domain.WithBuild(ctx, b)

	if f := c.phase(ctx, phaseInject, domain.FailureInjection, func(ctx context.Context) error {
		return c.c.Injector.Inject(ctx, b, inv)
	}); f != nil {
		return domain.Outcome{}, f
	}

	if b.Help || b.Graph {
		// Rendering failures are tagged as injection failures.
		if f := c.phase(ctx, phaseEarlyExit, domain.FailureInjection, func(context.Context) error {
			c.handleEarlyExits(b)
			return nil
		}); f != nil {
			return domain.Outcome{}, f
		}
		return domain.Outcome{Code: 0, Terminated: true}, nil
	}

	var targets []*domain.ExecutableTarget
	if f := c.phase(ctx, phaseResolve, domain.FailureResolution, func(ctx context.Context) error {
		var err error
		targets, err = c.c.Resolver.Resolve(ctx, b, b.InvokedTargets)
		return err
	}); f != nil {
		return domain.Outcome{}, f
	}

	outcome := domain.Outcome{Targets: targets, Resolved: true}
	if len(targets) == 0 {
		return outcome, nil
	}

	if f := c.phase(ctx, phaseValidate, domain.FailureValidation, func(ctx context.Context) error {
		return c.c.Validator.Validate(ctx, targets, b)
	}); f != nil {
		return outcome, f
	}

	if f := c.phase(ctx, phaseExecute, domain.FailureExecution, func(ctx context.Context) error {
		return c.c.Executor.Execute(ctx, targets)
	}); f != nil {
		return outcome, f
	}

	return outcome, nil
}

// phase runs fn inside a span and tags its error with kind.
// A panic inside fn becomes a failure of the same kind.
func (c *Controller) phase(
	ctx context.Context,
	name string,
	kind domain.FailureKind,
	fn func(ctx context.Context) error,
) (failure *domain.Failure) {
	ctx, span := c.tracer.Start(ctx, name)
	start := c.now()

	defer func() {
		if r := recover(); r != nil {
			failure = domain.NewFailure(kind, zerr.With(domain.ErrPhasePanicked, "panic", fmt.Sprint(r)))
		}
		if failure != nil {
			span.RecordError(failure)
			span.SetStatus(codes.Error, failure.Error())
		}
		c.c.Metrics.ObservePhase(name, c.now().Sub(start), failure != nil)
		span.End()
	}()

	return domain.NewFailure(kind, fn(ctx))
}

// handleEarlyExits prints the informational output the build asked for.
func (c *Controller) handleEarlyExits(b *domain.Build) {
	if b.Help {
		_, _ = fmt.Fprintln(c.out, c.c.Help.TargetsText(b))
		_, _ = fmt.Fprintln(c.out, c.c.Help.ParametersText(b))
	}

	if b.Graph {
		_, _ = fmt.Fprintln(c.out, c.c.Graph.Graph(b))
	}
}

// report renders one error record per leaf failure.
func (c *Controller) report(failure *domain.Failure) {
	for _, leaf := range domain.Flatten(failure) {
		c.c.Sink.Error(leaf.Error(), domain.Detail(leaf))
	}
}

func (c *Controller) observe(outcome domain.Outcome) {
	for _, t := range outcome.Targets {
		c.c.Metrics.ObserveTarget(t.Name().String(), string(t.Status()), t.Duration())
	}
	c.c.Metrics.ObserveOutcome(outcome.Code)
	if err := c.c.Metrics.Flush(); err != nil {
		c.c.Logger.Warn(fmt.Sprintf("failed to flush run metrics: %v", err))
	}
}

type noopMetrics struct{}

func (noopMetrics) ObservePhase(string, time.Duration, bool)    {}
func (noopMetrics) ObserveTarget(string, string, time.Duration) {}
func (noopMetrics) ObserveOutcome(int)                          {}
func (noopMetrics) Flush() error                                { return nil }
