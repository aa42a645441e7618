package diag

import (
	"testing"

	"decaf/internal/source"
)

func TestBagLimitAndCounts(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemaTypeMismatch, source.Span{Start: 4, End: 5}, "a")) {
		t.Fatalf("first add rejected")
	}
	b.Add(New(SevWarning, SemaRedefinition, source.Span{Start: 1, End: 2}, "b"))
	if b.Add(NewError(SemaTypeMismatch, source.Span{}, "c")) {
		t.Fatalf("expected limit to reject third diagnostic")
	}
	if b.Len() != 2 || b.Count(SevError) != 1 || b.Count(SevWarning) != 1 {
		t.Fatalf("unexpected counts: len=%d errors=%d warnings=%d", b.Len(), b.Count(SevError), b.Count(SevWarning))
	}
}

func TestBagMergeRespectsLimit(t *testing.T) {
	tests := []struct {
		name        string
		limit       int
		incoming    int
		wantLen     int
		wantDropped int
	}{
		{"fits", 10, 3, 4, 0},
		{"truncated", 3, 5, 3, 3},
		{"already full", 1, 2, 1, 2},
		{"zero limit keeps all", 0, 5, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBag(tt.limit)
			b.Add(NewError(SemaUndefinedVariable, source.Span{Start: 9, End: 10}, "Undefined variable: 'y'"))
			other := NewBag(tt.incoming)
			for i := 0; i < tt.incoming; i++ {
				other.Add(New(SevWarning, SemaRedefinition, source.Span{Start: uint32(i)}, "w"))
			}
			dropped := b.Merge(other)
			if b.Len() != tt.wantLen || dropped != tt.wantDropped {
				t.Fatalf("len=%d dropped=%d, want len=%d dropped=%d", b.Len(), dropped, tt.wantLen, tt.wantDropped)
			}
			if b.Items()[0].Code != SemaUndefinedVariable {
				t.Fatalf("existing diagnostic displaced: %v", b.Items()[0].Code)
			}
		})
	}
	if n := NewBag(1).Merge(nil); n != 0 {
		t.Fatalf("merging nil dropped %d", n)
	}
}

func TestNonPositiveLimitIsUnbounded(t *testing.T) {
	for _, limit := range []int{0, -1} {
		b := NewBag(limit)
		for i := 0; i < 100; i++ {
			if !b.Add(NewError(SemaTypeMismatch, source.Span{}, "e")) {
				t.Fatalf("NewBag(%d) rejected diagnostic %d", limit, i)
			}
		}
		if b.Len() != 100 {
			t.Fatalf("NewBag(%d) len = %d", limit, b.Len())
		}
	}
}

func TestCodeIDs(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynUnexpectedToken:  "SYN2001",
		SemaTypeMismatch:    "SEM3001",
		IOLoadFileError:     "IO4001",
		ProjInvalidManifest: "PRJ5001",
		UnknownCode:         "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if SemaArityMismatch.Title() == UnknownCode.Title() {
		t.Errorf("SemaArityMismatch has no title")
	}
}

func TestDedupReporterAndBuilder(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	ReportError(r, SemaUndefinedMethod, sp, "Undefined method: 'f'").Emit()
	ReportError(r, SemaUndefinedMethod, sp, "Undefined method: 'f'").Emit()
	b := ReportWarning(r, SemaRedefinition, sp, "w").WithNote(source.Span{}, "previous declaration")
	b.Emit()
	b.Emit()
	if bag.Len() != 2 || r.Suppressed() != 1 {
		t.Fatalf("expected 2 diagnostics and 1 suppressed, got %d and %d", bag.Len(), r.Suppressed())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Fatalf("note lost")
	}
}
