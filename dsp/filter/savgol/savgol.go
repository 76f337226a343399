package savgol

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-tprofile/dsp/conv"
	"github.com/cwbudde/algo-tprofile/dsp/polyfit"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by New, Coefficients and Apply.
var (
	ErrInvalidWindow     = errors.New("savgol: window length must be a positive odd integer")
	ErrInvalidOrder      = errors.New("savgol: polynomial order must be >= 0 and less than the window length")
	ErrInvalidDerivative = errors.New("savgol: derivative must be between 0 and the polynomial order")
	ErrInvalidDelta      = errors.New("savgol: sample spacing must be positive and finite")
	ErrInvalidMode       = errors.New("savgol: unknown boundary mode")
	ErrShortInput        = errors.New("savgol: input shorter than window")
)

// Option configures a Filter.
type Option func(*config)

type config struct {
	deriv int
	delta float64
	mode  Mode
	cval  float64
}

func defaultConfig() config {
	return config{delta: 1, mode: ModeNearest}
}

// WithMode sets the boundary mode. The default is ModeNearest.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithDerivative makes the filter return the d-th derivative of the local
// fit instead of its value.
func WithDerivative(d int) Option {
	return func(c *config) {
		c.deriv = d
	}
}

// WithDelta sets the sample spacing used to scale derivatives.
func WithDelta(dx float64) Option {
	return func(c *config) {
		c.delta = dx
	}
}

// WithCval sets the padding value for ModeConstant.
func WithCval(v float64) Option {
	return func(c *config) {
		c.cval = v
	}
}

// Filter is a configured Savitzky-Golay filter.
type Filter struct {
	window int
	order  int
	cfg    config

	coeffs []float64 // y[i] = sum_m coeffs[m] * x[i+m-half]
	kernel []float64 // coeffs reversed, for convolution
}

// New creates a filter with the given odd window length and polynomial
// order.
func New(window, order int, opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, cfg.mode)
	}

	coeffs, err := Coefficients(window, order, cfg.deriv, cfg.delta)
	if err != nil {
		return nil, err
	}

	kernel := make([]float64, len(coeffs))
	for i, c := range coeffs {
		kernel[len(coeffs)-1-i] = c
	}

	return &Filter{
		window: window,
		order:  order,
		cfg:    cfg,
		coeffs: coeffs,
		kernel: kernel,
	}, nil
}

// Window returns the window length.
func (f *Filter) Window() int { return f.window }

// Order returns the polynomial order.
func (f *Filter) Order() int { return f.order }

// Derivative returns the derivative order.
func (f *Filter) Derivative() int { return f.cfg.deriv }

// Mode returns the boundary mode.
func (f *Filter) Mode() Mode { return f.cfg.mode }

// Coefficients returns a copy of the filter taps in window order.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.coeffs...)
}

// Apply filters x and returns a new slice of the same length. x must hold
// at least Window samples.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	if len(x) < f.window {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrShortInput, len(x), f.window)
	}

	ext := extend(x, f.window/2, f.cfg.mode, f.cfg.cval)

	y, err := conv.ConvolveMode(ext, f.kernel, conv.ModeValid)
	if err != nil {
		return nil, fmt.Errorf("savgol: %w", err)
	}

	return y, nil
}

// Coefficients returns the Savitzky-Golay taps for a centred window, in the
// order they multiply x[i-half..i+half]. deriv selects the derivative of the
// local fit (0 smooths) and delta is the sample spacing.
func Coefficients(window, order, deriv int, delta float64) ([]float64, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if order < 0 || order >= window {
		return nil, fmt.Errorf("%w: order %d, window %d", ErrInvalidOrder, order, window)
	}
	if deriv < 0 || deriv > order {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrInvalidDerivative, deriv, order)
	}
	if !(delta > 0) || math.IsInf(delta, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelta, delta)
	}

	// Offsets are scaled to [-1, 1]; the derivative scale below undoes it.
	half := float64(window / 2)
	unit := 1.0
	if half > 0 {
		unit = half
	}
	offsets := polyfit.Linspace(-half/unit, half/unit, window)
	a := polyfit.Vandermonde(offsets, order)

	identity := mat.NewDense(window, window, nil)
	for i := range window {
		identity.Set(i, i, 1)
	}

	// Rows of the pseudo-inverse map a window of samples to the local
	// polynomial coefficients.
	var qr mat.QR
	qr.Factorize(a)
	pinv := mat.NewDense(order+1, window, nil)
	if err := qr.SolveTo(pinv, false, identity); err != nil {
		return nil, fmt.Errorf("savgol: solving window design: %w", err)
	}

	scale := factorial(deriv) / math.Pow(delta*unit, float64(deriv))
	coeffs := make([]float64, window)
	for m := range coeffs {
		coeffs[m] = pinv.At(deriv, m) * scale
	}

	return coeffs, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
