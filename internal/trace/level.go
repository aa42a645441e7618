package trace

import (
	"fmt"
	"strings"
)

// Level selects how much of a decaf run is recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // kept in a ring, written out only when a check fails
	LevelPhase        // the command and each tokenize/parse/check pass
	LevelDetail       // plus one span per file and per class or method
	LevelDebug        // plus statement and expression nodes
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel reads a --trace-level value. Empty means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for l, name := range levelNames {
		if s == name {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether an event at scope is recorded at this level.
// LevelError takes everything so a failed check dumps the full picture.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelError, LevelDebug:
		return true
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeModule
	default:
		return false
	}
}
