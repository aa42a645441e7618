package driver

import (
	"context"
	"path/filepath"
	"testing"

	"decaf/internal/project"
)

func TestDiagnoseDirDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "c.dcf", project.SampleProgram)
	writeSource(t, dir, "a.dcf", badProgram)
	writeSource(t, dir, "sub/b.dcf", "int x = 1;\n")
	writeSource(t, dir, "notes.txt", "ignored")

	for _, jobs := range []int{1, 4, 0} {
		events := make(chan Event, 64)
		_, results, err := DiagnoseDir(context.Background(), dir, DiagnoseOptions{Sink: ChannelSink{Ch: events}}, jobs)
		if err != nil {
			t.Fatal(err)
		}
		close(events)

		var names []string
		for _, r := range results {
			rel, err := filepath.Rel(dir, filepath.FromSlash(r.Path))
			if err != nil {
				t.Fatal(err)
			}
			names = append(names, filepath.ToSlash(rel))
		}
		if !equalStrings(names, []string{"a.dcf", "c.dcf", "sub/b.dcf"}) {
			t.Fatalf("jobs=%d order = %v", jobs, names)
		}
		if results[0].OK || !equalStrings(results[0].Errors, badErrors) {
			t.Fatalf("a.dcf errors = %q", results[0].Errors)
		}
		if !results[1].OK || !results[2].OK {
			t.Fatalf("clean files failed: %q %q", results[1].Errors, results[2].Errors)
		}

		queued, done := 0, 0
		for e := range events {
			switch {
			case e.Status == StatusQueued:
				queued++
			case e.Stage == StageCheck && e.Status != StatusWorking:
				done++
			}
		}
		if queued != 3 || done != 3 {
			t.Fatalf("queued=%d finished=%d", queued, done)
		}

		if n := Merge(results, 0).Len(); n != len(badErrors) {
			t.Fatalf("merged = %d diagnostics", n)
		}
		if n := Merge(results, 1).Len(); n != 1 {
			t.Fatalf("capped merge = %d diagnostics", n)
		}
	}
}

func TestDiagnoseDirEmpty(t *testing.T) {
	fs, results, err := DiagnoseDir(context.Background(), t.TempDir(), DiagnoseOptions{}, 2)
	if err != nil || fs == nil || len(results) != 0 {
		t.Fatalf("fs=%v results=%v err=%v", fs, results, err)
	}
}

func TestDiagnoseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.dcf", project.SampleProgram)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := DiagnoseDir(ctx, dir, DiagnoseOptions{}, 1); err == nil {
		t.Fatal("expected cancellation error")
	}
}
