package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"typeset/internal/diag"
	"typeset/internal/format"
	"typeset/internal/observ"
	"typeset/internal/source"
	"typeset/internal/trace"
	"typeset/internal/version"
)

// ErrNoSourceFiles is returned when the given paths contain nothing to format.
var ErrNoSourceFiles = errors.New("format: no source files found")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	Jobs           int
	MaxDiagnostics int
	Options        format.Options
	Extensions     []string
	Exclude        []string

	// Cache, if set, skips files whose content was recorded as already formatted.
	Cache *DiskCache
	// Progress receives per-file events.
	Progress ProgressSink
	// Timer accumulates per-pass durations across files.
	Timer *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	// FileSet and Bag hold the file and its lexer diagnostics, if it got that far.
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// FormatPaths formats provided files or directories (recursively collecting source files).
// When opts.Check is true, files are not modified; Changed indicates whether formatting
// would update the file contents. When opts.Stdout is true, formatted content is returned
// in the results without touching files on disk.
//
// Files are processed by up to opts.Jobs workers. The first failing file cancels the run:
// FormatPaths returns that error together with the results of files that were started,
// and files still queued are left untouched.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(ctx, paths, opts.Extensions, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles formats an already collected list of files. See FormatPaths.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]FormatResult, error) {
	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeDriver, "fmt", trace.ParentFrom(ctx))
	runSpan.WithExtra("files", strconv.Itoa(len(files)))
	ctx = trace.WithParent(ctx, runSpan)

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	started := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started[i] = true
			start := time.Now()
			results[i] = formatOne(gctx, path, opts)
			res := &results[i]
			switch {
			case res.Err != nil:
				emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusError, Err: res.Err, Elapsed: time.Since(start)})
				return res.Err
			case res.Cached:
				emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusSkipped, Elapsed: time.Since(start)})
			default:
				emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusDone, Elapsed: time.Since(start)})
			}
			return nil
		})
	}

	err := g.Wait()

	done := make([]FormatResult, 0, len(files))
	for i := range results {
		if started[i] {
			done = append(done, results[i])
		}
	}
	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	runSpan.End(detail)
	return done, err
}

func formatOne(ctx context.Context, path string, opts FormatOptions) FormatResult {
	tracer := trace.FromContext(ctx)
	fileSpan := trace.Begin(tracer, trace.ScopeFile, path, trace.ParentFrom(ctx))
	result := FormatResult{Path: path}
	defer func() {
		if result.Err != nil {
			fileSpan.End(result.Err.Error())
			return
		}
		fileSpan.WithExtra("changed", strconv.FormatBool(result.Changed)).End("")
	}()

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	// #nosec G304 -- path comes from CollectSourceFiles
	raw, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	key := cacheKey(raw, opts.Options.Rewrap)
	if opts.Cache != nil && !opts.Stdout && opts.Cache.Has(key) {
		trace.Point(tracer, trace.ScopeFile, "cache-hit", path, fileSpan.ID())
		result.Cached = true
		return result
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.AddBytes(path, raw)
	if err != nil {
		result.Err = err
		return result
	}
	sf := fileSet.Get(fileID)

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	result.FileSet = fileSet
	result.Bag = bag

	fopts := opts.Options
	fopts.Reporter = &diag.BagReporter{Bag: bag}
	fopts.Hook = passHook(tracer, opts.Timer, fileSpan.ID())

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	formatted, err := format.FormatFile(sf, fopts)
	if err != nil {
		result.Err = err
		return result
	}
	result.Changed = !bytes.Equal(raw, formatted)

	switch {
	case opts.Stdout:
		result.Formatted = formatted
	case opts.Check:
	case result.Changed:
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writeFile(path, formatted); err != nil {
			result.Err = err
			return result
		}
	}

	if opts.Cache != nil && !result.Changed {
		payload := &DiskPayload{Path: path, Size: len(raw), Rewrap: opts.Options.Rewrap, Version: version.Plain(), Stored: time.Now().Unix()}
		if err := opts.Cache.Put(key, payload); err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache-put-failed", err.Error(), fileSpan.ID())
		}
	}
	return result
}

// passHook opens a trace span and a timer entry around each pipeline pass.
func passHook(tracer trace.Tracer, timer *observ.Timer, parent uint64) func(string) func() {
	if !tracer.Enabled() && timer == nil {
		return nil
	}
	return func(pass string) func() {
		span := trace.Begin(tracer, trace.ScopePass, pass, parent)
		var stop func()
		if timer != nil {
			stop = timer.Track(pass)
		}
		return func() {
			if stop != nil {
				stop()
			}
			span.End("")
		}
	}
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, data, mode.Perm()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
