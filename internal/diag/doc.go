// Package diag defines the diagnostic model shared by the lexer, parser and
// type checker.
//
// Diagnostic is the central record: Severity, Code (numeric with a stable
// string ID such as SEM3001), Message, Primary span and optional Notes.
//
// Phases emit through a Reporter so they stay decoupled from storage.
// BagReporter collects into a Bag, which supports limits, sorting,
// deduplication and merging. The type checker keeps its Message strings
// stable because callers compare them verbatim.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
