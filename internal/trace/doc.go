// Package trace records what the decaf front end is doing while it runs.
//
// Each pipeline stage (tokenize, parse, check) opens a span with Begin and
// closes it with End. Spans nest through parent IDs, so the output reads
// as a tree of driver, pass, file and node events.
//
// Enable tracing from the command line:
//
//	decaf check --trace=- --trace-level=detail main.dcf
//
// Levels:
//
//   - LevelOff: no tracing
//   - LevelError: keep events in memory, dump them only on failure
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file and per-declaration events
//   - LevelDebug: everything, including per-node events
//
// Every tracer built by New stamps its events with a session ID so that
// traces from concurrent runs written to the same sink can be told apart.
package trace
