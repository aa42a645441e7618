package diag

import "decaf/internal/source"

type reportKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// DedupReporter forwards each distinct (code, severity, span, message) once.
type DedupReporter struct {
	next       Reporter
	seen       map[reportKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	key := reportKey{code: code, sev: sev, span: primary, msg: msg}
	if _, dup := r.seen[key]; dup {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}

// Suppressed returns how many reports were dropped as repeats.
func (r *DedupReporter) Suppressed() int {
	return r.suppressed
}
