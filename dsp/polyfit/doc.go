// Package polyfit provides least-squares polynomial regression.
//
// [Fit] solves the overdetermined Vandermonde system with a Householder QR
// factorisation rather than the normal equations, which keeps moderate
// degrees (5 and up) usable on long traces. The abscissa is mapped to
// [-1, 1] before the matrix is built; [Poly] remembers the mapping and
// evaluates in the same domain, so callers work in their original units:
//
//	x := polyfit.Linspace(0, float64(n-1), n)
//	p, err := polyfit.Fit(x, y, 5)
//	if err != nil {
//		return err
//	}
//	fitted := p.EvalAll(x)
//
// [Poly.Coefficients] expands the polynomial back into ascending powers of
// the original x for reporting.
package polyfit
