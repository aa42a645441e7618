package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // span start
	KindSpanEnd                   // span end
	KindPoint                     // instant event
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // whole command
	ScopePass                    // tokenize, parse, check
	ScopeModule                  // one file or one declaration
	ScopeNode                    // single AST node
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeModule:
		return "module"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global sequence number
	Session  string // tracer session ID
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string // e.g. "parse", "check", "file:main.dcf"
	Detail   string
	Elapsed  time.Duration // set on KindSpanEnd
	Extra    map[string]string
}
