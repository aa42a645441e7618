package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 4096

// RingTracer backs --trace-level=error: it holds the most recent events
// and writes them out only when a check fails.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	next   int
	filled bool
	level  Level
}

// NewRingTracer keeps the last size events; a non-positive size uses the default.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{events: make([]Event, size), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events[t.next] = *ev
	t.events[t.next].Seq = NextSeq()
	t.next++
	if t.next == len(t.events) {
		t.next, t.filled = 0, true
	}
}

// Snapshot copies the held events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.filled {
		return append([]Event(nil), t.events[:t.next]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.next:]...)
	return append(out, t.events[:t.next]...)
}

// Dump writes the snapshot to w in format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

func (t *RingTracer) Close() error { return nil }

func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
