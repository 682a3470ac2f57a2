// Package metrics records run measurements as Prometheus metrics and writes
// them to a node-exporter textfile at the end of the run.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileEnv names the textfile the metrics of a run are written to.
const FileEnv = "RIG_METRICS_FILE"

const namespace = "rig"

// Recorder implements ports.RunMetrics using Prometheus metrics.
type Recorder struct {
	path string
	reg  *prom.Registry

	phaseDuration  *prom.HistogramVec
	phaseResults   *prom.CounterVec
	targetDuration *prom.HistogramVec
	targetResults  *prom.CounterVec
	exitCode       prom.Gauge
	lastRun        prom.Gauge
}

// NewRecorder creates a Recorder with its own registry. When path is empty
// Flush does nothing.
func NewRecorder(path string) *Recorder {
	r := &Recorder{
		path: path,
		reg:  prom.NewRegistry(),
		phaseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of lifecycle phases",
			Buckets:   prom.DefBuckets,
		}, []string{"phase"}),
		phaseResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "phase_results_total",
			Help:      "Lifecycle phase results by outcome",
		}, []string{"phase", "result"}),
		targetDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "target_duration_seconds",
			Help:      "Duration of target work",
			Buckets:   prom.DefBuckets,
		}, []string{"target"}),
		targetResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "target_results_total",
			Help:      "Targets by terminal status",
		}, []string{"target", "status"}),
		exitCode: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "exit_code",
			Help:      "Exit code of the last run",
		}),
		lastRun: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished",
		}),
	}

	r.reg.MustRegister(r.phaseDuration, r.phaseResults, r.targetDuration, r.targetResults, r.exitCode, r.lastRun)
	return r
}

// Registry returns the registry the metrics are registered with.
func (r *Recorder) Registry() *prom.Registry {
	return r.reg
}

// ObservePhase records how long a lifecycle phase took and whether it failed.
func (r *Recorder) ObservePhase(phase string, d time.Duration, failed bool) {
	r.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
	r.phaseResults.WithLabelValues(phase, result(failed)).Inc()
}

// ObserveTarget records the terminal status of a target.
func (r *Recorder) ObserveTarget(name, status string, d time.Duration) {
	if status == string(domain.StatusSucceeded) || status == string(domain.StatusFailed) {
		r.targetDuration.WithLabelValues(name).Observe(d.Seconds())
	}
	r.targetResults.WithLabelValues(name, status).Inc()
}

// ObserveOutcome records the exit code of the run.
func (r *Recorder) ObserveOutcome(code int) {
	r.exitCode.Set(float64(code))
	r.lastRun.SetToCurrentTime()
}

// Flush writes the metrics to the configured textfile.
func (r *Recorder) Flush() error {
	if r.path == "" {
		return nil
	}
	if err := prom.WriteToTextfile(r.path, r.reg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", r.path)
	}
	return nil
}

func result(failed bool) string {
	if failed {
		return "failed"
	}
	return "success"
}

