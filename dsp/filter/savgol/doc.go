// Package savgol implements Savitzky-Golay smoothing and differentiation
// filters.
//
// A Savitzky-Golay filter fits a polynomial of order p by least squares to
// each window of w consecutive samples and replaces the centre sample with
// the value (or a derivative) of that local fit. Because the fit is linear
// in the samples, the whole operation reduces to a convolution with a fixed
// kernel, which [Coefficients] computes once per (w, p, deriv) triple.
//
// Windows that would reach past either end of the input are completed by a
// boundary [Mode]. [ModeNearest] replicates the edge samples and is the
// default:
//
//	f, err := savgol.New(11, 3)
//	if err != nil {
//		return err
//	}
//	smoothed, err := f.Apply(samples)
//
// A [Filter] is immutable after construction and safe for concurrent use.
package savgol
