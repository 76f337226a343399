// Package conv provides the linear convolution backends used by the
// smoothing filters.
//
// Two strategies are available:
//
//   - [Direct]: O(N*M) time-domain convolution, best for short kernels
//   - [OverlapAdd]: FFT-based block convolution for long kernels
//
// [Convolve] picks between them by kernel length, and [ConvolveMode] trims
// the full result to the "same" or "valid" region:
//
//	y, err := conv.ConvolveMode(extended, kernel, conv.ModeValid)
//
// Savitzky-Golay kernels are usually short (tens of taps) and take the
// direct path. Kernels longer than 64 taps go through the FFT.
package conv
