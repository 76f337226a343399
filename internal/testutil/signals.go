package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Polynomial evaluates c[0] + c[1]*i + c[2]*i^2 + ... at i = 0..length-1.
func Polynomial(coeffs []float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		var y float64
		for k := len(coeffs) - 1; k >= 0; k-- {
			y = y*x + coeffs[k]
		}
		out[i] = y
	}
	return out
}

// Altitudes returns a climb from start in fixed steps, one entry per sample.
func Altitudes(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// LapseProfile generates a noisy standard-atmosphere style temperature trace:
// surfaceTemp decreasing by lapse per sample with a small inversion bump near
// the middle, plus seeded noise of the given amplitude.
func LapseProfile(seed int64, surfaceTemp, lapse, noise float64, length int) []float64 {
	out := DeterministicNoise(seed, noise, length)
	mid := float64(length) / 2
	width := math.Max(float64(length)/10, 1)
	for i := range out {
		x := float64(i)
		bump := 1.5 * math.Exp(-((x-mid)*(x-mid))/(2*width*width))
		out[i] += surfaceTemp - lapse*x + bump
	}
	return out
}
