package symbols

import (
	"decaf/internal/ast"
)

// ScopeStack is the chain of open scopes, innermost last. It always holds the
// global scope.
type ScopeStack struct {
	scopes []*Scope
}

// NewScopeStack returns a stack holding only the global scope.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes: []*Scope{newScope(ScopeGlobal, ast.NoNodeID)},
	}
}

// Enter pushes a new empty scope.
func (s *ScopeStack) Enter(kind ScopeKind, owner ast.NodeID) *Scope {
	sc := newScope(kind, owner)
	s.scopes = append(s.scopes, sc)
	return sc
}

// Exit pops the innermost scope. Popping the global scope is a usage error
// and panics.
func (s *ScopeStack) Exit() {
	if len(s.scopes) <= 1 {
		panic("symbols: cannot exit global scope")
	}
	s.scopes[len(s.scopes)-1] = nil
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Define binds sym in the innermost scope. A same-named symbol in that scope
// is replaced and returned.
func (s *ScopeStack) Define(sym *Symbol) (prev *Symbol) {
	return s.Current().define(sym)
}

// Lookup searches from the innermost scope outwards.
func (s *ScopeStack) Lookup(name string) (*Symbol, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i].Lookup(name); ok {
			return sym, true
		}
	}
	return nil, false
}

// Current returns the innermost scope.
func (s *ScopeStack) Current() *Scope {
	return s.scopes[len(s.scopes)-1]
}

// Global returns the outermost scope.
func (s *ScopeStack) Global() *Scope {
	return s.scopes[0]
}

// Depth is the number of open scopes, at least 1.
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}
