package output_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/adapters/output"
	"go.trai.ch/rig/internal/core/domain"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func finished(name string, d time.Duration, err error) *domain.ExecutableTarget {
	t := domain.NewExecutableTarget(domain.Target{Name: domain.NewInternedString(name)}, true)
	t.MarkRunning(epoch)
	t.MarkFinished(epoch.Add(d), err)
	return t
}

func TestSink_WriteSummary(t *testing.T) {
	skipped := domain.NewExecutableTarget(domain.Target{Name: domain.NewInternedString("publish")}, true)
	skipped.MarkSkipped("dependency compile failed")
	pending := domain.NewExecutableTarget(domain.Target{Name: domain.NewInternedString("lint")}, false)

	tests := []struct {
		name    string
		targets []*domain.ExecutableTarget
	}{
		{
			name: "summary_failed",
			targets: []*domain.ExecutableTarget{
				finished("restore", 200*time.Millisecond, nil),
				finished("compile", 65*time.Second, errors.New("exit status 1")),
				skipped,
				pending,
			},
		},
		{
			name:    "summary_succeeded",
			targets: []*domain.ExecutableTarget{finished("compile", 2*time.Second, nil)},
		},
		{
			name:    "summary_empty",
			targets: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			var stdout, stderr bytes.Buffer

			output.NewSink(&stdout, &stderr).WriteSummary(tt.targets)

			g := goldie.New(t)
			g.Assert(t, tt.name, stdout.Bytes())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestSink_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	sink := output.NewSink(&stdout, &stderr)

	sink.Error("missing parameter ApiKey", "")
	sink.Error("command failed: exit status 2", "exit_code: 2\ntarget: test\n")

	assert.Equal(t, "✗ missing parameter ApiKey\n"+
		"✗ command failed: exit status 2\n"+
		"    exit_code: 2\n"+
		"    target: test\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "< 1sec"},
		{d: 999 * time.Millisecond, want: "< 1sec"},
		{d: time.Second, want: "0:01"},
		{d: 59*time.Second + 600*time.Millisecond, want: "1:00"},
		{d: 125 * time.Second, want: "2:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, output.FormatDuration(tt.d), tt.d.String())
	}
}
