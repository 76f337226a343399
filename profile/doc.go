// Package profile turns an ordered altitude/temperature trace into a fitted
// and a smoothed temperature curve.
//
// Samples are indexed by position 0..N-1; the index, not the altitude, is
// the independent variable for both computations:
//
//   - [Fit] computes a global least-squares polynomial (degree 5 by default)
//     and evaluates it on N evenly spaced points over [0, N-1].
//   - [Smooth] runs a Savitzky-Golay filter (window 11, order 3, edge
//     replication by default) over the raw temperatures.
//   - [Merge] joins raw, fitted and smoothed values into one [OutputRow]
//     per index.
//
// [Engine] bundles the three steps with a fixed parameter set:
//
//	e := profile.NewEngine(profile.WithWindow(21))
//	rows, err := e.Process(series)
//
// All functions are pure. Errors wrap one of the package sentinels
// ([ErrInsufficientData], [ErrInvalidParameter], [ErrAlignment],
// [ErrDecode], [ErrMalformedRow]) and are matched with errors.Is.
package profile
