// Package residual summarises the deviation of a fitted or smoothed curve
// from the raw trace.
package residual

import (
	"math"

	"github.com/cwbudde/algo-tprofile/profile"
)

// Stats describes one residual series (raw minus model).
type Stats struct {
	Length      int
	Mean        float64 // bias
	RMS         float64
	Peak        float64 // max |residual|
	PeakPos     int
	Variance    float64
	SignChanges int // few sign changes indicate an underfitted model
}

// Calculate computes residual statistics of raw against model in a single
// pass. Mean and variance use Welford's update. Only the common prefix of
// raw and model is used.
func Calculate(raw, model []float64) Stats {
	n := min(len(raw), len(model))
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2 float64
		sumSq    float64
		peak     float64
		peakPos  int
		changes  int
		prev     float64
	)

	for i := range n {
		r := raw[i] - model[i]

		delta := r - mean
		mean += delta / float64(i+1)
		m2 += delta * (r - mean)

		sumSq += r * r

		if a := math.Abs(r); a > peak {
			peak = a
			peakPos = i
		}

		if i > 0 && prev*r < 0 {
			changes++
		}
		if r != 0 {
			prev = r
		}
	}

	nf := float64(n)

	return Stats{
		Length:      n,
		Mean:        mean,
		RMS:         math.Sqrt(sumSq / nf),
		Peak:        peak,
		PeakPos:     peakPos,
		Variance:    m2 / nf,
		SignChanges: changes,
	}
}

// FromRows returns the residual statistics of the fitted and the smoothed
// column of merged rows.
func FromRows(rows []profile.OutputRow) (fit, smooth Stats) {
	raw := make([]float64, len(rows))
	fitted := make([]float64, len(rows))
	smoothed := make([]float64, len(rows))
	for i, r := range rows {
		raw[i] = r.Raw
		fitted[i] = r.Fitted
		smoothed[i] = r.Smoothed
	}
	return Calculate(raw, fitted), Calculate(raw, smoothed)
}
