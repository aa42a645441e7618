package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq numbers events in the order a tracer stored them.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID hands out span IDs shared by every tracer in the process,
// so files checked on different workers never collide.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span covers one stage of a decaf run: the command, a pass, a file, a
// class or method, or a single node. A disabled span is safe to use.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	started  time.Time
	extra    map[string]string
}

func records(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// Begin opens a span under parent (0 for the command root).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !records(t, scope) {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parent,
		scope:    scope,
		name:     name,
		started:  time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started, ""))
	return s
}

// End closes the span with a verdict such as "ok" or "3 errors" and
// returns how long the stage took.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now, detail)
	ev.Elapsed = now.Sub(s.started)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return ev.Elapsed
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Detail:   detail,
	}
}

// WithExtra attaches a counter like errors=2 or tokens=41 to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID is 0 for a disabled span, which children treat as no parent.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point records a one-off fact, e.g. a cache hit or dropped duplicates.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !records(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		SpanID:   NextSpanID(),
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
