// Package output renders error records and the run summary to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/ui/output"
	"go.trai.ch/rig/internal/ui/style"
)

const (
	statusWidth   = 12
	durationWidth = 10
)

// Sink implements ports.OutputSink. Errors go to stderr, the summary to stdout.
type Sink struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	outR   *lipgloss.Renderer
	errR   *lipgloss.Renderer
}

// NewSink creates a Sink. Nil writers default to the process streams.
func NewSink(stdout, stderr io.Writer) *Sink {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Sink{
		stdout: stdout,
		stderr: stderr,
		outR:   output.NewRenderer(stdout),
		errR:   output.NewRenderer(stderr),
	}
}

// Error prints one error record. A non-empty detail is printed indented below the message.
func (s *Sink) Error(message, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintln(s.stderr, output.Paint(s.errR, style.Cross+" "+message, style.Red))

	detail = strings.TrimRight(detail, "\n")
	if detail == "" {
		return
	}
	for _, line := range strings.Split(detail, "\n") {
		_, _ = fmt.Fprintln(s.stderr, output.Paint(s.errR, "    "+line, style.Muted))
	}
}

// WriteSummary prints the status and duration of every target of the run.
func (s *Sink) WriteSummary(targets []*domain.ExecutableTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nameWidth := len("Target")
	for _, t := range targets {
		nameWidth = max(nameWidth, len(t.Name().String()))
	}
	nameWidth += 4

	rule := strings.Repeat("─", nameWidth+statusWidth+durationWidth)
	w := s.stdout

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, strings.Repeat("═", nameWidth+statusWidth+durationWidth))
	_, _ = fmt.Fprintf(w, "%-*s%-*s%*s\n", nameWidth, "Target", statusWidth, "Status", durationWidth, "Duration")
	_, _ = fmt.Fprintln(w, rule)

	var total time.Duration
	succeeded := true
	for _, t := range targets {
		status := t.Status()
		total += t.Duration()

		label, color := statusLabel(status)
		duration := ""
		if status == domain.StatusSucceeded || status == domain.StatusFailed {
			duration = FormatDuration(t.Duration())
		}

		row := fmt.Sprintf("%-*s%-*s%*s", nameWidth, t.Name().String(), statusWidth, label, durationWidth, duration)
		if reason := t.SkipReason(); status == domain.StatusSkipped && reason != "" {
			row += "   // " + reason
		}
		_, _ = fmt.Fprintln(w, output.Paint(s.outR, row, color))

		if status != domain.StatusSucceeded && status != domain.StatusSkipped {
			succeeded = false
		}
	}

	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintf(w, "%-*s%*s\n", nameWidth+statusWidth, "Total", durationWidth, FormatDuration(total))
	_, _ = fmt.Fprintln(w, strings.Repeat("═", nameWidth+statusWidth+durationWidth))
	_, _ = fmt.Fprintln(w)

	if succeeded {
		_, _ = fmt.Fprintln(w, output.Paint(s.outR, style.Check+" Build succeeded", style.Green))
		return
	}
	_, _ = fmt.Fprintln(w, output.Paint(s.outR, style.Cross+" Build failed", style.Red))
}

func statusLabel(status domain.TargetStatus) (string, lipgloss.Color) {
	switch status {
	case domain.StatusSucceeded:
		return "Succeeded", style.Green
	case domain.StatusFailed:
		return "Failed", style.Red
	case domain.StatusSkipped:
		return "Skipped", style.Muted
	case domain.StatusRunning:
		return "Running", style.Yellow
	default:
		return "NotRun", style.Yellow
	}
}

// FormatDuration renders d as minutes and seconds, or "< 1sec" for short durations.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1sec"
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
