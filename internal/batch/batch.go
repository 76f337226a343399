// Package batch runs the profile engine over sets of trace files.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/cwbudde/algo-tprofile/profile"
	"github.com/cwbudde/algo-tprofile/profile/datfile"
	"github.com/cwbudde/algo-tprofile/stats/residual"
)

// ErrNoEngine is returned by NewRunner when Options.Engine is nil.
var ErrNoEngine = errors.New("batch: no engine")

// Options configures a Runner.
type Options struct {
	Inputs      []string // glob patterns
	OutputDir   string
	Suffix      string
	HasHeader   bool
	WriteHeader bool
	Compress    string // codec name, "" for plain text
	Workers     int
	Engine      *profile.Engine
}

// Result is the outcome for one input file.
type Result struct {
	Input   string
	Output  string
	Rows    int
	Skipped bool // content unchanged since the last successful run
	Err     error

	// Residuals of the raw trace against each curve, set on success.
	Fit, Smooth residual.Stats
}

// Summary collects the results of one Run in input order.
type Summary struct {
	RunID     string
	Results   []Result
	Processed int
	Skipped   int
	Failed    int
}

// AllFailed reports whether there was at least one input and none of them
// succeeded or was skipped.
func (s Summary) AllFailed() bool {
	return len(s.Results) > 0 && s.Failed == len(s.Results)
}

// Runner processes files with a fixed Options set. A Runner remembers the
// content hash of every file it processed successfully and skips files
// whose content has not changed.
type Runner struct {
	opts Options

	mu   sync.Mutex
	seen map[string]uint64
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Engine == nil {
		return nil, ErrNoEngine
	}
	if err := opts.Engine.Validate(); err != nil {
		return nil, err
	}
	if opts.Compress != "" {
		if _, ok := datfile.CodecByName(opts.Compress); !ok {
			return nil, fmt.Errorf("batch: unknown codec %q", opts.Compress)
		}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{opts: opts, seen: make(map[string]uint64)}, nil
}

// Discover expands the input patterns into a sorted list of unique files.
func (r *Runner) Discover() ([]string, error) {
	set := make(map[string]struct{})
	for _, pattern := range r.opts.Inputs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("batch: pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			set[filepath.Clean(m)] = struct{}{}
		}
	}

	files := make([]string, 0, len(set))
	for f := range set {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath names the result file for input: the base name up to its
// first dot, then suffix, ".dat" and the codec extension.
func OutputPath(input, outputDir, suffix, compress string) string {
	stem := filepath.Base(input)
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	name := stem + suffix + ".dat"
	if c, ok := datfile.CodecByName(compress); ok {
		name += c.Extension
	}
	return filepath.Join(outputDir, name)
}

// Run processes every discovered file on a pool of workers. A failing
// file is logged and recorded in its Result; it never stops the batch.
// Files not yet started when ctx is cancelled fail with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	files, err := r.Discover()
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		log.Printf("batch: run %s: no input files match %v", summary.RunID, r.opts.Inputs)
		return summary, nil
	}

	results := make([]Result, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range min(r.opts.Workers, len(files)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = Result{Input: files[i], Err: err}
					continue
				}
				results[i] = r.ProcessFile(files[i])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary.Results = results
	for _, res := range results {
		switch {
		case res.Err != nil:
			summary.Failed++
		case res.Skipped:
			summary.Skipped++
		default:
			summary.Processed++
		}
	}

	log.Printf("batch: run %s: %d processed, %d skipped, %d failed",
		summary.RunID, summary.Processed, summary.Skipped, summary.Failed)

	return summary, ctx.Err()
}

// ProcessFile reads, processes and writes one file.
func (r *Runner) ProcessFile(input string) Result {
	res := Result{
		Input:  input,
		Output: OutputPath(input, r.opts.OutputDir, r.opts.Suffix, r.opts.Compress),
	}

	log.Printf("batch: Process >> %s", input)

	rows, skipped, err := r.process(input, res.Output, &res)
	if err != nil {
		log.Printf("batch: Cannot process >> %s: %v", input, err)
		res.Err = err
		return res
	}
	if skipped {
		log.Printf("batch: %s unchanged, skipped", input)
		res.Skipped = true
		return res
	}

	log.Printf("batch: Wrote %s (%d rows, fit rms %.3g, smooth rms %.3g)",
		res.Output, rows, res.Fit.RMS, res.Smooth.RMS)
	res.Rows = rows
	return res
}

func (r *Runner) process(input, output string, res *Result) (int, bool, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return 0, false, err
	}

	sum := xxhash.Sum64(data)
	r.mu.Lock()
	prev, ok := r.seen[input]
	r.mu.Unlock()
	if ok && prev == sum {
		if _, err := os.Stat(output); err == nil {
			return 0, true, nil
		}
	}

	rc, err := datfile.NewReader(bytes.NewReader(data), input)
	if err != nil {
		return 0, false, err
	}
	defer rc.Close()

	table, err := datfile.Read(rc, r.opts.HasHeader)
	if err != nil {
		return 0, false, err
	}
	series, err := datfile.ToSeries(table)
	if err != nil {
		return 0, false, err
	}
	rows, err := r.opts.Engine.Process(series)
	if err != nil {
		return 0, false, err
	}
	res.Fit, res.Smooth = residual.FromRows(rows)

	var header []string
	if r.opts.WriteHeader {
		header = datfile.Header
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return 0, false, err
	}
	if err := datfile.WriteFile(output, header, datfile.FromRows(rows)); err != nil {
		return 0, false, err
	}

	r.mu.Lock()
	r.seen[input] = sum
	r.mu.Unlock()

	return len(rows), false, nil
}
