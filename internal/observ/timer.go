// Package observ records how long the steps of a CLI command take.
package observ

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Step is one timed step of a command.
type Step struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the steps of one command run. The zero value is not usable;
// call NewTimer.
type Timer struct {
	steps []Step
	now   func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{steps: make([]Step, 0, 4), now: time.Now}
}

// Begin starts a new step and returns its index.
func (t *Timer) Begin(name string) int {
	t.steps = append(t.steps, Step{Name: name, Start: t.now()})
	return len(t.steps) - 1
}

// End finishes a step by its index. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.steps) {
		return
	}
	s := &t.steps[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// Total is the sum of all step durations.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, s := range t.steps {
		total += s.Dur
	}
	return total
}

// Summary returns a human-readable table of all steps.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range t.steps {
		fmt.Fprintf(&sb, "  %-12s %7.2f ms", s.Name, millis(s.Dur))
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", millis(t.Total()))
	return sb.String()
}

// Fields renders the steps as zap fields, one duration per step.
func (t *Timer) Fields() []zap.Field {
	fields := make([]zap.Field, 0, len(t.steps)+1)
	for _, s := range t.steps {
		fields = append(fields, zap.Duration(s.Name, s.Dur))
	}
	return append(fields, zap.Duration("total", t.Total()))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
