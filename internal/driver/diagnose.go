package driver

import (
	"context"
	"fmt"
	"time"

	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/observ"
	"decaf/internal/project"
	"decaf/internal/sema"
	"decaf/internal/source"
	"decaf/internal/token"
	"decaf/internal/trace"
)

// DiagnoseOptions controls a diagnose run.
type DiagnoseOptions struct {
	// Stage is the last phase to run; empty means StageCheck.
	Stage          Stage
	MaxDiagnostics int
	Timer          *observ.Timer
	// Cache, when set, short-circuits files whose content was seen before.
	Cache *DiskCache
	Sink  ProgressSink
}

// DiagnoseResult is the outcome for one file.
type DiagnoseResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	// Tree is nil when parsing failed, was not requested, or the result came from the cache.
	Tree  *ast.Tree
	Bag   *diag.Bag
	Check *sema.Result
	// Errors lists error messages in discovery order: the single lexical or
	// syntax failure, or every type error.
	Errors []string
	OK     bool
	Cached bool
}

// Diagnose loads path and runs the pipeline up to opts.Stage.
func Diagnose(ctx context.Context, path string, opts DiagnoseOptions) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return diagnoseFile(ctx, fs, fs.Get(fileID), opts)
}

// DiagnoseSource runs the pipeline over in-memory content.
func DiagnoseSource(ctx context.Context, name string, src []byte, opts DiagnoseOptions) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return diagnoseFile(ctx, fs, fs.Get(fileID), opts)
}

func diagnoseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts DiagnoseOptions) (*DiagnoseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stage, ok := ParseStage(string(opts.Stage))
	if !ok {
		return nil, fmt.Errorf("unknown stage %q", opts.Stage)
	}

	res := &DiagnoseResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeModule, "diagnose", trace.ParentFrom(ctx)).
		WithExtra("file", file.Path)
	ctx = trace.WithSpan(ctx, span)

	var cacheNotes []diag.Diagnostic
	key := CacheKey(project.Digest(file.Hash), stage)
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			cacheNotes = append(cacheNotes, cacheWarning(file, "read", err))
		case hit:
			payload.restore(res, file.ID)
			res.Cached = true
			emit(opts.Sink, Event{File: file.Path, Stage: stage, Status: statusFor(res.OK)})
			span.WithExtra("cached", "true").End(verdict(res.OK))
			return res, nil
		}
	}

	res.run(ctx, stage, opts)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toPayload(stage, res)); err != nil {
			cacheNotes = append(cacheNotes, cacheWarning(file, "write", err))
		}
	}
	for _, d := range cacheNotes {
		res.Bag.Add(d)
	}
	span.End(verdict(res.OK))
	return res, nil
}

// run executes the phases in order and stops at the first fatal one.
func (res *DiagnoseResult) run(ctx context.Context, stage Stage, opts DiagnoseOptions) {
	defer func() { res.OK = len(res.Errors) == 0 }()

	var toks []token.Token
	err := res.phase(StageTokenize, opts, func() (err error) {
		toks, err = tokenizeFile(ctx, res.File, res.Bag)
		return err
	})
	if err != nil {
		res.Errors = []string{err.Error()}
		return
	}
	if !stage.includes(StageParse) {
		return
	}

	err = res.phase(StageParse, opts, func() (err error) {
		res.Tree, err = parseTokens(ctx, toks, res.Bag, false)
		return err
	})
	if err != nil {
		res.Errors = []string{err.Error()}
		return
	}
	if !stage.includes(StageCheck) {
		return
	}

	_ = res.phase(StageCheck, opts, func() error {
		reporter := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})
		check := sema.Check(res.Tree, sema.Options{
			Reporter:   reporter,
			Tracer:     trace.FromContext(ctx),
			ParentSpan: trace.ParentFrom(ctx),
		})
		if n := reporter.Suppressed(); n > 0 {
			trace.Point(trace.FromContext(ctx), trace.ScopePass, "dedup", itoa(n)+" repeated diagnostics dropped", trace.ParentFrom(ctx))
		}
		res.Check = &check
		res.Errors = check.Errors
		if !check.OK {
			return fmt.Errorf("%d type errors", len(check.Errors))
		}
		return nil
	})
}

// phase times fn and reports it to the timer and progress sink.
func (res *DiagnoseResult) phase(s Stage, opts DiagnoseOptions, fn func() error) error {
	emit(opts.Sink, Event{File: res.Path, Stage: s, Status: StatusWorking})
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	opts.Timer.Add(string(s), elapsed, "")
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	emit(opts.Sink, Event{File: res.Path, Stage: s, Status: status, Err: err, Elapsed: elapsed})
	return err
}

func cacheWarning(file *source.File, op string, err error) diag.Diagnostic {
	sp := source.Span{File: file.ID}
	return diag.New(diag.SevWarning, diag.IOCacheError, sp, fmt.Sprintf("cache %s failed: %v", op, err))
}

func statusFor(ok bool) Status {
	if ok {
		return StatusDone
	}
	return StatusError
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "errors"
}
