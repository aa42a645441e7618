// Package observ collects per-phase wall-clock timings for a decaf run.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is the accumulated time spent in one named pipeline phase.
type Phase struct {
	Name  string
	Dur   time.Duration
	Count int // how many times the phase ran
	Note  string
}

// Timer accumulates phase durations. Phases with the same name are summed,
// so per-file tokenize/parse/check times add up across a directory run.
// Safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	index  map[string]int
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{index: make(map[string]int, 8)}
}

// Begin starts timing name and returns the function that stops it.
func (t *Timer) Begin(name string) (end func(note string)) {
	if t == nil {
		return func(string) {}
	}
	start := time.Now()
	return func(note string) {
		t.Add(name, time.Since(start), note)
	}
}

// Add records d against name. A non-empty note replaces the previous one.
func (t *Timer) Add(name string, d time.Duration, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[name]
	if !ok {
		i = len(t.phases)
		t.index[name] = i
		t.phases = append(t.phases, Phase{Name: name})
	}
	p := &t.phases[i]
	p.Dur += d
	p.Count++
	if note != "" {
		p.Note = note
	}
}

// PhaseReport is the serialisable form of one phase.
type PhaseReport struct {
	Name       string  `json:"name" yaml:"name"`
	DurationMS float64 `json:"duration_ms" yaml:"duration_ms"`
	Count      int     `json:"count" yaml:"count"`
	Note       string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// Report aggregates all phases in first-seen order.
type Report struct {
	TotalMS float64       `json:"total_ms" yaml:"total_ms"`
	Phases  []PhaseReport `json:"phases" yaml:"phases"`
}

// Report snapshots the timer.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Count:      p.Count,
			Note:       p.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Summary renders the report as an aligned text table.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %8.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&sb, "  x%d", p.Count)
		}
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "  %-12s %8.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
