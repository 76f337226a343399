package profile

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-tprofile/dsp/filter/savgol"
)

// Observer receives the computed curves after a successful Process call.
// It runs synchronously on the calling goroutine and must not retain or
// modify the slices.
type Observer func(series Series, fitted FittedSeries, smoothed SmoothedSeries)

// Option configures an Engine.
type Option func(*Engine)

// WithDegree sets the polynomial fit degree.
func WithDegree(d int) Option {
	return func(e *Engine) { e.degree = d }
}

// WithWindow sets the smoothing window length.
func WithWindow(w int) Option {
	return func(e *Engine) { e.window = w }
}

// WithPolyOrder sets the smoothing polynomial order.
func WithPolyOrder(p int) Option {
	return func(e *Engine) { e.polyOrder = p }
}

// WithBoundary sets the smoothing boundary mode.
func WithBoundary(m savgol.Mode) Option {
	return func(e *Engine) { e.boundary = m }
}

// WithObserver registers a callback for computed curves.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// Engine runs the fit, the smoothing and the merge with one parameter set.
// An Engine holds no mutable state and may be shared between goroutines.
type Engine struct {
	degree    int
	window    int
	polyOrder int
	boundary  savgol.Mode
	observer  Observer
}

// NewEngine returns an Engine with the defaults (degree 5, window 11,
// order 3, nearest boundary) overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		degree:    DefaultDegree,
		window:    DefaultWindow,
		polyOrder: DefaultPolyOrder,
		boundary:  savgol.ModeNearest,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Degree returns the configured polynomial degree.
func (e *Engine) Degree() int { return e.degree }

// Window returns the configured smoothing window.
func (e *Engine) Window() int { return e.window }

// PolyOrder returns the configured smoothing order.
func (e *Engine) PolyOrder() int { return e.polyOrder }

// Boundary returns the configured boundary mode.
func (e *Engine) Boundary() savgol.Mode { return e.boundary }

// MinSamples returns the shortest series Process accepts.
func (e *Engine) MinSamples() int {
	return max(e.degree+1, e.window)
}

// Validate reports a parameter error without touching any data.
func (e *Engine) Validate() error {
	if e.degree < 0 {
		return fmt.Errorf("%w: polynomial degree %d", ErrInvalidParameter, e.degree)
	}
	if err := validateSmoothing(e.window, e.polyOrder); err != nil {
		return err
	}
	if _, err := savgol.New(e.window, e.polyOrder, savgol.WithMode(e.boundary)); err != nil {
		return classifySmoothError(err)
	}
	return nil
}

// Process fits and smooths series concurrently and merges the results.
// When both computations fail the fit error is returned.
func (e *Engine) Process(series Series) ([]OutputRow, error) {
	var (
		wg                sync.WaitGroup
		fitted            FittedSeries
		smoothed          SmoothedSeries
		fitErr, smoothErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fitted, fitErr = Fit(series, e.degree)
	}()
	go func() {
		defer wg.Done()
		smoothed, smoothErr = Smooth(series, e.window, e.polyOrder, e.boundary)
	}()
	wg.Wait()

	if fitErr != nil {
		return nil, fitErr
	}
	if smoothErr != nil {
		return nil, smoothErr
	}

	rows, err := Merge(series, fitted, smoothed)
	if err != nil {
		return nil, err
	}

	if e.observer != nil {
		e.observer(series, fitted, smoothed)
	}

	return rows, nil
}
