package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"decaf/internal/diag"
	"decaf/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes diagnostics for humans. Each one gets a header line
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with the primary span underlined by ^~~~,
// then its notes. Items are printed in bag order, which is discovery order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i, d := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeHeader(w, p, fs, d, opts.PathMode)
		writeSnippet(w, p, fs, d.Primary, opts.Context)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note"), location(fs, n.Span, opts.PathMode), n.Msg)
		}
	}
	if omitted := bag.Len() - len(items); omitted > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", omitted)
	}
}

// Short writes one line per diagnostic with no source excerpt.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	p := newPalette(false)
	for _, d := range bag.Items() {
		writeHeader(w, p, fs, d, mode)
	}
}

func writeHeader(w io.Writer, p palette, fs *source.FileSet, d diag.Diagnostic, mode PathMode) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		location(fs, d.Primary, mode),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	)
}

func location(fs *source.FileSet, span source.Span, mode PathMode) string {
	path := displayPath(fs, span, mode)
	if !hasFile(fs, span) {
		return path
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// writeSnippet prints up to context preceding lines and the primary line,
// then a caret line sized by display width so wide runes stay aligned.
func writeSnippet(w io.Writer, p palette, fs *source.FileSet, span source.Span, context int) {
	// An empty span at offset 0 marks a whole-file diagnostic.
	if !hasFile(fs, span) || (span.Empty() && span.Start == 0) {
		return
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	first := start.Line
	if context > 0 {
		first = uint32(max(1, int(start.Line)-context))
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	from := clampCol(line, start.Col)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(line, end.Col)
	}
	pad := runewidth.StringWidth(expandTabs(line[:from]))
	width := max(runewidth.StringWidth(expandTabs(line[from:max(from, to)])), 1)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
}

// clampCol turns a 1-based byte column into a safe 0-based index into line.
func clampCol(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col)-1, len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
