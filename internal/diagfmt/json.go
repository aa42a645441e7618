package diagfmt

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"decaf/internal/diag"
	"decaf/internal/source"
)

// LocationJSON is a file position in machine-readable output.
type LocationJSON struct {
	File      string `json:"file" yaml:"file"`
	StartByte uint32 `json:"start_byte" yaml:"start_byte"`
	EndByte   uint32 `json:"end_byte" yaml:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" yaml:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" yaml:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" yaml:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message" yaml:"message"`
	Location LocationJSON `json:"location" yaml:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity" yaml:"severity"`
	Code     string       `json:"code" yaml:"code"`
	Message  string       `json:"message" yaml:"message"`
	Location LocationJSON `json:"location" yaml:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DiagnosticsOutput is the root object of JSON and YAML output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics" yaml:"diagnostics"`
	Count       int              `json:"count" yaml:"count"`
	Errors      int              `json:"errors" yaml:"errors"`
	Warnings    int              `json:"warnings" yaml:"warnings"`
}

func makeLocation(span source.Span, fs *source.FileSet, mode PathMode, positions bool) LocationJSON {
	loc := LocationJSON{
		File:      displayPath(fs, span, mode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if positions && hasFile(fs, span) {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput builds the output structure without serialising it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Errors:      bag.Count(diag.SevError),
		Warnings:    bag.Count(diag.SevWarning),
	}
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Message:  n.Msg,
					Location: makeLocation(n.Span, fs, opts.PathMode, opts.IncludePositions),
				})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes diagnostics as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// YAML writes the same document as JSON in YAML form.
func YAML(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildDiagnosticsOutput(bag, fs, opts)); err != nil {
		return err
	}
	return enc.Close()
}
