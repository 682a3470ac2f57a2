// Package telemetry configures OpenTelemetry tracing of the build lifecycle.
package telemetry

import (
	"os"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rig/internal/core/ports"
)

// TraceEnv enables logging of lifecycle phase spans when set to a non-empty value.
const TraceEnv = "RIG_TRACE"

// NewTracerProvider creates the tracer provider of a run. Spans are logged
// through logger when TraceEnv is set and dropped otherwise.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	var opts []sdktrace.TracerProviderOption
	if os.Getenv(TraceEnv) != "" {
		opts = append(opts, sdktrace.WithSpanProcessor(NewLogBridge(logger)))
	}
	return sdktrace.NewTracerProvider(opts...)
}
