package symbols

import (
	"testing"

	"decaf/internal/types"
)

func TestLookupInnermostFirst(t *testing.T) {
	s := NewScopeStack()
	s.Define(&Symbol{Kind: SymbolVariable, Name: "x", Type: types.Int})
	s.Enter(ScopeBlock, 0)
	s.Define(&Symbol{Kind: SymbolVariable, Name: "x", Type: types.String})

	sym, ok := s.Lookup("x")
	if !ok || sym.Type != types.String {
		t.Fatalf("expected inner x:string, got %+v", sym)
	}
	s.Exit()
	sym, ok = s.Lookup("x")
	if !ok || sym.Type != types.Int {
		t.Fatalf("expected outer x:int after exit, got %+v", sym)
	}
}

func TestBlockNamesDisappearOnExit(t *testing.T) {
	s := NewScopeStack()
	s.Enter(ScopeFunction, 0)
	s.Enter(ScopeBlock, 0)
	s.Define(&Symbol{Kind: SymbolVariable, Name: "tmp", Type: types.Bool})
	if s.Depth() != 3 {
		t.Fatalf("depth = %d", s.Depth())
	}
	s.Exit()
	if _, ok := s.Lookup("tmp"); ok {
		t.Fatalf("tmp visible after its block closed")
	}
}

func TestDefineReplacesInSameScope(t *testing.T) {
	s := NewScopeStack()
	first := &Symbol{Kind: SymbolMethod, Name: "compute", Type: types.Int}
	if prev := s.Define(first); prev != nil {
		t.Fatalf("unexpected previous symbol %+v", prev)
	}
	second := &Symbol{Kind: SymbolMethod, Name: "compute", Type: types.Bool}
	if prev := s.Define(second); prev != first {
		t.Fatalf("expected first definition to be returned")
	}
	sym, _ := s.Lookup("compute")
	if sym != second {
		t.Fatalf("later definition should win")
	}
	if names := s.Global().Names(); len(names) != 1 || names[0] != "compute" {
		t.Fatalf("names = %v", names)
	}
}

func TestExitGlobalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when exiting the global scope")
		}
	}()
	NewScopeStack().Exit()
}

func TestValueType(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want types.Type
	}{
		{Symbol{Kind: SymbolVariable, Name: "v", Type: types.String}, types.String},
		{Symbol{Kind: SymbolMethod, Name: "m", Type: types.Int}, types.Function},
		{Symbol{Kind: SymbolClass, Name: "Main"}, types.Type("Main")},
		{Symbol{}, types.None},
	}
	for _, tt := range tests {
		if got := tt.sym.ValueType(); got != tt.want {
			t.Errorf("%s %q: ValueType() = %s, want %s", tt.sym.Kind, tt.sym.Name, got, tt.want)
		}
	}
}
