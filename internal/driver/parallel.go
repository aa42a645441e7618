package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"decaf/internal/diag"
	"decaf/internal/project"
	"decaf/internal/source"
	"decaf/internal/trace"
)

// ListSourceFiles returns every *.dcf file under dir, sorted.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, project.SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// DiagnoseDir checks every source file under dir with at most jobs workers.
// Results follow ListSourceFiles order regardless of completion order. A file
// that fails to load yields a result carrying an IOLoadFileError diagnostic.
func DiagnoseDir(ctx context.Context, dir string, opts DiagnoseOptions, jobs int) (*source.FileSet, []*DiagnoseResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet is not safe for concurrent writes; load everything up front.
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// An empty stand-in keeps the failure attributed to its path.
			loadErrors[path] = err
			fileID = fileSet.AddVirtual(path, nil)
		}
		emit(opts.Sink, Event{File: fileSet.Get(fileID).Path, Stage: StageTokenize, Status: StatusQueued})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "diagnose_dir", trace.ParentFrom(ctx)).
		WithExtra("files", itoa(len(files)))
	ctx = trace.WithSpan(ctx, span)
	defer span.End("")

	// Each goroutine owns its index.
	results := make([]*DiagnoseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileID, ok := fileSet.GetLatest(path)
			if !ok {
				return fmt.Errorf("%s was not loaded", path)
			}
			file := fileSet.Get(fileID)
			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				msg := "failed to load file: " + loadErr.Error()
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID}, msg))
				results[i] = &DiagnoseResult{Path: file.Path, FileSet: fileSet, File: file, Bag: bag, Errors: []string{msg}}
				emit(opts.Sink, Event{File: file.Path, Stage: StageTokenize, Status: StatusError, Err: loadErr})
				return nil
			}

			res, err := diagnoseFile(gctx, fileSet, file, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// Merge concatenates the bags of results into one, in result order.
// A non-positive maxDiagnostics keeps everything.
func Merge(results []*DiagnoseResult, maxDiagnostics int) *diag.Bag {
	out := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r != nil {
			out.Merge(r.Bag)
		}
	}
	return out
}
