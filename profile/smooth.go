package profile

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tprofile/dsp/filter/savgol"
)

// Smoothing defaults.
const (
	DefaultWindow    = 11
	DefaultPolyOrder = 3
)

// Smooth applies a Savitzky-Golay filter with the given odd window length,
// polynomial order and boundary mode to the temperatures of series. The
// result has exactly one value per sample.
func Smooth(series Series, window, polyOrder int, mode savgol.Mode) (SmoothedSeries, error) {
	if err := validateSmoothing(window, polyOrder); err != nil {
		return nil, err
	}
	if len(series) < window {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrInsufficientData, len(series), window)
	}

	f, err := savgol.New(window, polyOrder, savgol.WithMode(mode))
	if err != nil {
		return nil, classifySmoothError(err)
	}

	y, err := f.Apply(series.Temperatures())
	if err != nil {
		return nil, classifySmoothError(err)
	}

	return SmoothedSeries(y), nil
}

func validateSmoothing(window, polyOrder int) error {
	if window < 1 || window%2 == 0 {
		return fmt.Errorf("%w: window length %d must be odd and positive", ErrInvalidParameter, window)
	}
	if polyOrder < 0 {
		return fmt.Errorf("%w: polynomial order %d", ErrInvalidParameter, polyOrder)
	}
	if window < polyOrder+1 {
		return fmt.Errorf("%w: window length %d must be at least polynomial order + 1 (%d)", ErrInvalidParameter, window, polyOrder+1)
	}
	return nil
}

func classifySmoothError(err error) error {
	switch {
	case errors.Is(err, savgol.ErrShortInput):
		return fmt.Errorf("%w: %w", ErrInsufficientData, err)
	case errors.Is(err, savgol.ErrInvalidWindow),
		errors.Is(err, savgol.ErrInvalidOrder),
		errors.Is(err, savgol.ErrInvalidMode),
		errors.Is(err, savgol.ErrInvalidDerivative),
		errors.Is(err, savgol.ErrInvalidDelta):
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	default:
		return fmt.Errorf("profile: smoothing: %w", err)
	}
}
