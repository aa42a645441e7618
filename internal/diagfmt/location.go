package diagfmt

import (
	"decaf/internal/source"
)

func hasFile(fs *source.FileSet, span source.Span) bool {
	return fs != nil && int(span.File) < fs.Len()
}

func displayPath(fs *source.FileSet, span source.Span, mode PathMode) string {
	if !hasFile(fs, span) {
		return "<unknown>"
	}
	f := fs.Get(span.File)
	if mode == PathModeRelative {
		return f.FormatPath(mode.String(), fs.BaseDir())
	}
	return f.FormatPath(mode.String(), "")
}
