package profile

import "errors"

// Error kinds reported by the fitting pipeline and its loaders.
var (
	// ErrInsufficientData means the series is too short for the requested
	// polynomial degree or smoothing window.
	ErrInsufficientData = errors.New("profile: insufficient data")
	// ErrInvalidParameter means a degree, window, order or boundary mode is
	// out of range.
	ErrInvalidParameter = errors.New("profile: invalid parameter")
	// ErrAlignment means the series handed to Merge differ in length.
	ErrAlignment = errors.New("profile: series length mismatch")
	// ErrDecode means input text is neither UTF-8 nor UTF-16.
	ErrDecode = errors.New("profile: cannot decode input")
	// ErrMalformedRow means a row lacks altitude/temperature fields or a
	// field is not a number.
	ErrMalformedRow = errors.New("profile: malformed row")
)
