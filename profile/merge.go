package profile

import "fmt"

// Merge pairs raw samples with fitted and smoothed values by index. All
// three inputs must have the same length.
func Merge(series Series, fitted FittedSeries, smoothed SmoothedSeries) ([]OutputRow, error) {
	if len(fitted) != len(series) {
		return nil, alignmentError("samples", len(series), "fitted", len(fitted))
	}
	if len(smoothed) != len(series) {
		return nil, alignmentError("samples", len(series), "smoothed", len(smoothed))
	}

	rows := make([]OutputRow, len(series))
	for i, smp := range series {
		rows[i] = OutputRow{
			Position: fitted[i].Position,
			Altitude: smp.Altitude,
			Raw:      smp.Temperature,
			Fitted:   fitted[i].Value,
			Smoothed: smoothed[i],
		}
	}

	return rows, nil
}

func alignmentError(a string, na int, b string, nb int) error {
	return fmt.Errorf("%w: %d %s vs %d %s", ErrAlignment, na, a, nb, b)
}
