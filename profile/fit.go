package profile

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tprofile/dsp/polyfit"
)

// DefaultDegree is the polynomial degree used when none is configured.
const DefaultDegree = 5

// Fit fits a degree-d least-squares polynomial to temperature as a function
// of sample index and evaluates it on N evenly spaced points over [0, N-1].
// The series must hold more than degree samples.
func Fit(series Series, degree int) (FittedSeries, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: polynomial degree %d", ErrInvalidParameter, degree)
	}
	n := len(series)
	if n <= degree {
		return nil, fmt.Errorf("%w: %d samples, degree %d needs at least %d", ErrInsufficientData, n, degree, degree+1)
	}

	x := polyfit.Linspace(0, float64(n-1), n)
	p, err := polyfit.Fit(x, series.Temperatures(), degree)
	if err != nil {
		return nil, classifyFitError(err)
	}

	// Evaluation grid, independent of the sample abscissae.
	grid := polyfit.Linspace(0, float64(n-1), n)
	out := make(FittedSeries, len(grid))
	for i, pos := range grid {
		out[i] = FittedPoint{Position: pos, Value: p.Eval(pos)}
	}

	return out, nil
}

func classifyFitError(err error) error {
	switch {
	case errors.Is(err, polyfit.ErrInsufficientData):
		return fmt.Errorf("%w: %w", ErrInsufficientData, err)
	case errors.Is(err, polyfit.ErrInvalidDegree):
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	default:
		return fmt.Errorf("profile: polynomial fit: %w", err)
	}
}
