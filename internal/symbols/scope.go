package symbols

import (
	"decaf/internal/ast"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // program level; classes and their methods live here
	ScopeFunction           // parameters of one method
	ScopeBlock              // a braced block
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope maps names to symbols at one nesting level.
type Scope struct {
	Kind  ScopeKind
	Owner ast.NodeID
	names map[string]*Symbol
	order []string
}

func newScope(kind ScopeKind, owner ast.NodeID) *Scope {
	return &Scope{
		Kind:  kind,
		Owner: owner,
		names: make(map[string]*Symbol),
	}
}

// Lookup finds name in this scope only.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.names[name]
	return sym, ok
}

// Names lists the names in first-declaration order.
func (s *Scope) Names() []string {
	return s.order
}

func (s *Scope) define(sym *Symbol) *Symbol {
	prev, ok := s.names[sym.Name]
	if !ok {
		s.order = append(s.order, sym.Name)
	}
	s.names[sym.Name] = sym
	return prev
}
