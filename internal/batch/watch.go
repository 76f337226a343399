package batch

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// ErrInterval is returned by Watcher.Start for a non-positive interval.
var ErrInterval = errors.New("batch: watch interval must be positive")

// Watcher re-runs a Runner on a fixed interval. Runs never overlap.
type Watcher struct {
	scheduler *gocron.Scheduler
	runner    *Runner
	interval  time.Duration
	onRun     func(Summary, error)
}

// NewWatcher creates a Watcher. onRun, if non-nil, is called after every
// run from the scheduler goroutine.
func NewWatcher(runner *Runner, interval time.Duration, onRun func(Summary, error)) *Watcher {
	return &Watcher{
		scheduler: gocron.NewScheduler(time.UTC),
		runner:    runner,
		interval:  interval,
		onRun:     onRun,
	}
}

// Start schedules the first run immediately and the following ones every
// interval. Runs started after ctx is cancelled return at once.
func (w *Watcher) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return ErrInterval
	}

	w.scheduler.SingletonModeAll()
	_, err := w.scheduler.Every(w.interval).Do(func() {
		if ctx.Err() != nil {
			return
		}
		log.Println("batch: watch run starting")
		summary, err := w.runner.Run(ctx)
		if err != nil {
			log.Printf("batch: watch run failed: %v", err)
		}
		if w.onRun != nil {
			w.onRun(summary, err)
		}
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (w *Watcher) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
