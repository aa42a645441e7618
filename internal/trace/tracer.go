package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Tracer receives events from every stage of a decaf run. Directory
// checks call Emit from several workers at once.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// StorageMode picks between writing events as they happen (--trace-mode=stream),
// holding them for a dump on failure (ring), or both.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // immediate write
	ModeRing                          // circular buffer
	ModeBoth                          // stream + ring
)

func (m StorageMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to StorageMode.
func ParseMode(s string) (StorageMode, error) {
	switch strings.ToLower(s) {
	case "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeRing, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
	}
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Mode       StorageMode
	Format     Format
	Output     io.Writer // for stream mode; OutputPath is used when nil
	OutputPath string    // "-" or "" means stderr
	RingSize   int       // defaultRingSize when not positive
	Session    string    // generated when empty
}

// New creates a Tracer based on cfg. A LevelOff config yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.RingSize <= 0 {
		cfg.RingSize = defaultRingSize
	}
	if cfg.Session == "" {
		cfg.Session = uuid.NewString()
	}
	if cfg.Format == FormatAuto {
		cfg.Format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") || strings.HasSuffix(cfg.OutputPath, ".jsonl") {
			cfg.Format = FormatNDJSON
		}
	}
	if cfg.Mode == 0 {
		cfg.Mode = ModeStream
		if cfg.Level == LevelError {
			cfg.Mode = ModeRing
		}
	}

	var inner Tracer
	switch cfg.Mode {
	case ModeStream:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		inner = NewStreamTracer(w, cfg.Level, cfg.Format)
	case ModeRing:
		inner = NewRingTracer(cfg.RingSize, cfg.Level)
	case ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		inner = NewMultiTracer(cfg.Level,
			NewStreamTracer(w, cfg.Level, cfg.Format),
			NewRingTracer(cfg.RingSize, cfg.Level),
		)
	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}
	return &sessionTracer{Tracer: inner, session: cfg.Session}, nil
}

// Session returns the session ID stamped by a tracer built with New.
func Session(t Tracer) string {
	if st, ok := t.(*sessionTracer); ok {
		return st.session
	}
	return ""
}

// Ring returns the in-memory ring behind t, if any.
func Ring(t Tracer) *RingTracer {
	switch tt := t.(type) {
	case *RingTracer:
		return tt
	case *sessionTracer:
		return Ring(tt.Tracer)
	case *MultiTracer:
		for _, inner := range tt.tracers {
			if r := Ring(inner); r != nil {
				return r
			}
		}
	}
	return nil
}

type sessionTracer struct {
	Tracer
	session string
}

func (t *sessionTracer) Emit(ev *Event) {
	ev.Session = t.session
	t.Tracer.Emit(ev)
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}
