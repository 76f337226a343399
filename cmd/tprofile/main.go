// Command tprofile fits and smooths temperature profile traces.
//
// Usage:
//
//	tprofile [flags] [input-glob ...]
//
// Every matching tab-delimited trace (altitude, temperature) is written to
// the output directory with three added columns: the sample index, a
// degree-5 least-squares polynomial and a Savitzky-Golay smoothed curve.
// Settings come from TPROFILE_* environment variables (or a .env file)
// and are overridden by flags.
//
// Examples:
//
//	tprofile
//	tprofile -output ./smoothed 'input/*.dat' 'archive/*.dat.gz'
//	tprofile -window 21 -order 2 -mode mirror -compress zstd
//	tprofile -watch 1m
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-tprofile/internal/batch"
	"github.com/cwbudde/algo-tprofile/internal/config"
	"github.com/cwbudde/algo-tprofile/profile"
)

const (
	exitOK        = 0
	exitConfig    = 1
	exitAllFailed = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}

	fs := flag.NewFlagSet("tprofile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.InputGlob, "input", cfg.InputGlob, "input glob (positional arguments replace it)")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "output directory")
	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "suffix appended to output file stems")
	fs.IntVar(&cfg.Degree, "degree", cfg.Degree, "polynomial fit degree")
	fs.IntVar(&cfg.Window, "window", cfg.Window, "smoothing window length (odd)")
	fs.IntVar(&cfg.PolyOrder, "order", cfg.PolyOrder, "smoothing polynomial order")
	fs.StringVar(&cfg.Boundary, "mode", cfg.Boundary, "smoothing boundary mode: nearest, mirror, constant, wrap")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "files processed in parallel")
	fs.StringVar(&cfg.Compress, "compress", cfg.Compress, "output compression: gzip, zstd, s2, lz4 (empty for none)")
	fs.DurationVar(&cfg.Watch, "watch", cfg.Watch, "re-run on this interval until interrupted (0 runs once)")
	noHeader := fs.Bool("no-header", !cfg.HasHeader, "inputs have no header line")
	quiet := fs.Bool("quiet", false, "suppress progress logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tprofile [flags] [input-glob ...]\n\n")
		fmt.Fprintf(stderr, "Fits and smooths temperature profile traces.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	cfg.HasHeader = !*noHeader
	if *quiet {
		log.SetOutput(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}

	inputs := []string{cfg.InputGlob}
	if fs.NArg() > 0 {
		inputs = fs.Args()
	}

	runner, err := batch.NewRunner(batch.Options{
		Inputs:      inputs,
		OutputDir:   cfg.OutputDir,
		Suffix:      cfg.Suffix,
		HasHeader:   cfg.HasHeader,
		WriteHeader: cfg.WriteHeader,
		Compress:    cfg.Compress,
		Workers:     cfg.Workers,
		Engine:      profile.NewEngine(engineOpts...),
	})
	if err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch > 0 {
		return watch(ctx, runner, cfg, stderr)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}
	if summary.AllFailed() {
		return exitAllFailed
	}
	return exitOK
}

func watch(ctx context.Context, runner *batch.Runner, cfg *config.Config, stderr io.Writer) int {
	w := batch.NewWatcher(runner, cfg.Watch, nil)
	if err := w.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "tprofile: %v\n", err)
		return exitConfig
	}
	log.Printf("tprofile: watching every %s", cfg.Watch)

	<-ctx.Done()
	w.Stop()
	log.Println("tprofile: stopped")
	return exitOK
}
