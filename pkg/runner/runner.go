package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdtags/internal/logging"
	"github.com/yaklabco/mdtags/pkg/fsutil"
	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// StdinPath names content read from standard input.
const StdinPath = "-"

// Runner extracts tags from files with a bounded worker pool.
type Runner struct {
	// ReadFile loads file content. Defaults to fsutil.ReadFile.
	ReadFile func(ctx context.Context, path string) ([]byte, error)
}

// New creates a Runner that reads from the local filesystem.
func New() *Runner {
	return &Runner{ReadFile: fsutil.ReadFile}
}

// Run discovers files under opts.Paths and extracts their tags
// concurrently. Outcomes are returned in path order regardless of the
// order workers finish in.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// Process extracts tags from content already in memory.
func (r *Runner) Process(ctx context.Context, path string, content []byte, opts Options) FileOutcome {
	started := time.Now()
	tags := tagfinder.FindTagsWithOptions(content, opts.finderOptions())

	outcome := FileOutcome{
		Path:     path,
		Content:  content,
		Tags:     tags,
		Duration: time.Since(started),
	}

	logging.FromContext(ctx).Debug("extracted tags",
		logging.FieldPath, path,
		logging.FieldTags, len(tags),
		logging.FieldBytes, len(content),
		logging.FieldDuration, outcome.Duration,
	)
	return outcome
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = fsutil.ReadFile
	}

	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		var outcome FileOutcome
		content, err := readFile(ctx, path)
		if err != nil {
			logging.FromContext(ctx).Warn("cannot read file", logging.FieldPath, path, logging.FieldError, err)
			outcome = FileOutcome{Path: path, Error: err}
		} else {
			outcome = r.Process(ctx, path, content, opts)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
