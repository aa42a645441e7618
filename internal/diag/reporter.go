package diag

import "decaf/internal/source"

// Reporter receives diagnostics from the lexer, parser and checker.
// BagReporter collects them; DedupReporter filters repeats in front of it.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// ReportBuilder lets a phase attach notes before the diagnostic goes out.
// Emit is idempotent.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

func newReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: New(sev, code, primary, msg)}
}

// ReportError starts a type, syntax or lexical error.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return newReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning starts a warning, e.g. a redefinition in the same scope.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return newReportBuilder(r, SevWarning, code, primary, msg)
}

// WithNote points at a related span, such as the earlier declaration.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.diag = b.diag.WithNote(sp, msg)
	}
	return b
}

func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	b.emitted = true
	if b.reporter == nil {
		return
	}
	d := b.diag
	b.reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

// BagReporter appends to Bag; a nil Bag discards.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag != nil {
		r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
	}
}
