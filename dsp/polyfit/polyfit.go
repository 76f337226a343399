package polyfit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by Fit.
var (
	ErrInvalidDegree     = errors.New("polyfit: degree must be >= 0")
	ErrLengthMismatch    = errors.New("polyfit: x and y must have the same length")
	ErrInsufficientData  = errors.New("polyfit: not enough points for degree")
	ErrIllConditioned    = errors.New("polyfit: design matrix is rank deficient")
	ErrNonFiniteAbscissa = errors.New("polyfit: x contains NaN or Inf")
)

// Poly is a fitted polynomial. Coefficients are stored for the normalised
// variable u = (x - shift) * scale.
type Poly struct {
	coeffs []float64
	shift  float64
	scale  float64
}

// Fit returns the degree-d polynomial minimising the sum of squared
// residuals sum_i (y[i] - p(x[i]))^2. At least degree+1 points are
// required. Duplicate abscissae are allowed as long as at least degree+1 of
// them are distinct.
func Fit(x, y []float64, degree int) (*Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("%w: %d points for degree %d", ErrInsufficientData, len(x), degree)
	}

	shift, scale, err := normalisation(x)
	if err != nil {
		return nil, err
	}

	u := make([]float64, len(x))
	for i, v := range x {
		u[i] = (v - shift) * scale
	}

	a := Vandermonde(u, degree)
	b := mat.NewDense(len(y), 1, append([]float64(nil), y...))
	c := mat.NewDense(degree+1, 1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllConditioned, err)
	}

	coeffs := make([]float64, degree+1)
	for k := range coeffs {
		coeffs[k] = c.At(k, 0)
	}

	return &Poly{coeffs: coeffs, shift: shift, scale: scale}, nil
}

// Vandermonde returns the len(x) x (degree+1) matrix with entries x[i]^k,
// k ascending along each row. Columns are built by repeated element-wise
// multiplication.
func Vandermonde(x []float64, degree int) *mat.Dense {
	n := len(x)
	cols := degree + 1

	prev := make([]float64, n)
	for i := range prev {
		prev[i] = 1
	}

	data := make([]float64, n*cols)
	next := make([]float64, n)
	for k := range cols {
		for i, v := range prev {
			data[i*cols+k] = v
		}
		if k == cols-1 {
			break
		}
		vecmath.MulBlock(next, prev, x)
		prev, next = next, prev
	}

	return mat.NewDense(n, cols, data)
}

// Degree returns the polynomial degree.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p *Poly) Eval(x float64) float64 {
	u := (x - p.shift) * p.scale
	var y float64
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		y = y*u + p.coeffs[k]
	}
	return y
}

// EvalAll evaluates the polynomial at every element of xs.
func (p *Poly) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}
	return out
}

// Coefficients returns c[0..degree] such that p(x) = sum_k c[k] * x^k in the
// caller's original x units.
func (p *Poly) Coefficients() []float64 {
	d := len(p.coeffs) - 1
	// Horner in polynomial arithmetic: out = out*(scale*x - scale*shift) + c[k].
	out := []float64{p.coeffs[d]}
	a, b := p.scale, -p.scale*p.shift
	for k := d - 1; k >= 0; k-- {
		next := make([]float64, len(out)+1)
		for i, c := range out {
			next[i] += b * c
			next[i+1] += a * c
		}
		next[0] += p.coeffs[k]
		out = next
	}
	return out
}

// normalisation maps [min(x), max(x)] onto [-1, 1].
func normalisation(x []float64) (shift, scale float64, err error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, ErrNonFiniteAbscissa
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	half := (hi - lo) / 2
	if half == 0 {
		return lo, 1, nil
	}
	return lo + half, 1 / half, nil
}
