package polyfit

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tprofile/internal/testutil"
)

func indices(n int) []float64 {
	return Linspace(0, float64(n-1), n)
}

func TestFitRecoversPolynomials(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		degree int
		n      int
	}{
		{name: "constant", coeffs: []float64{4.2}, degree: 0, n: 3},
		{name: "line", coeffs: []float64{-1, 0.5}, degree: 1, n: 10},
		{name: "quadratic in quintic", coeffs: []float64{0, 0, 1}, degree: 5, n: 6},
		{name: "quintic", coeffs: []float64{1, -2, 0.5, 0.1, -0.01, 0.0005}, degree: 5, n: 20},
		{name: "cubic long trace", coeffs: []float64{20, -0.05, 1e-4, -1e-7}, degree: 3, n: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := indices(tt.n)
			y := testutil.Polynomial(tt.coeffs, tt.n)

			p, err := Fit(x, y, tt.degree)
			if err != nil {
				t.Fatalf("Fit: %v", err)
			}
			if p.Degree() != tt.degree {
				t.Fatalf("Degree = %d, want %d", p.Degree(), tt.degree)
			}

			testutil.RequireRelNearlyEqual(t, p.EvalAll(x), y, 1e-8)
		})
	}
}

func TestFitConstantIsConstant(t *testing.T) {
	for _, n := range []int{6, 7, 50, 500} {
		x := indices(n)
		y := testutil.DC(-12.75, n)

		p, err := Fit(x, y, 5)
		if err != nil {
			t.Fatalf("n=%d: Fit: %v", n, err)
		}
		testutil.RequireRelNearlyEqual(t, p.EvalAll(x), y, 1e-9)
	}
}

func TestFitLeastSquaresResidualOrthogonal(t *testing.T) {
	// The least-squares residual is orthogonal to every basis column.
	n := 60
	x := indices(n)
	y := testutil.LapseProfile(11, 15, 0.2, 0.5, n)

	p, err := Fit(x, y, 2)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	u := make([]float64, n)
	for i := range x {
		u[i] = (x[i] - p.shift) * p.scale
	}
	for k := 0; k <= 2; k++ {
		var dot float64
		for i := range x {
			dot += (y[i] - p.Eval(x[i])) * math.Pow(u[i], float64(k))
		}
		if math.Abs(dot) > 1e-9 {
			t.Fatalf("residual not orthogonal to column %d: %v", k, dot)
		}
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		degree int
		want   error
	}{
		{name: "negative degree", x: []float64{0, 1}, y: []float64{0, 1}, degree: -1, want: ErrInvalidDegree},
		{name: "length mismatch", x: []float64{0, 1}, y: []float64{0}, degree: 0, want: ErrLengthMismatch},
		{name: "five points degree five", x: indices(5), y: testutil.DC(1, 5), degree: 5, want: ErrInsufficientData},
		{name: "empty", x: nil, y: nil, degree: 0, want: ErrInsufficientData},
		{name: "repeated abscissa", x: []float64{2, 2, 2}, y: []float64{1, 2, 3}, degree: 1, want: ErrIllConditioned},
		{name: "nan abscissa", x: []float64{0, math.NaN()}, y: []float64{1, 2}, degree: 0, want: ErrNonFiniteAbscissa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.x, tt.y, tt.degree)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Fit error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFitSinglePoint(t *testing.T) {
	p, err := Fit([]float64{0}, []float64{3}, 0)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if got := p.Eval(0); math.Abs(got-3) > 1e-12 {
		t.Fatalf("Eval(0) = %v, want 3", got)
	}
}

func TestFitDoesNotMutateInputs(t *testing.T) {
	x := indices(8)
	y := testutil.Polynomial([]float64{1, 1, 1}, 8)
	xCopy := append([]float64(nil), x...)
	yCopy := append([]float64(nil), y...)

	if _, err := Fit(x, y, 2); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, xCopy, 0)
	testutil.RequireSliceNearlyEqual(t, y, yCopy, 0)
}

func TestCoefficientsOriginalDomain(t *testing.T) {
	want := []float64{3, -2, 0.5}
	x := Linspace(10, 30, 21)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = want[0] + want[1]*v + want[2]*v*v
	}

	p, err := Fit(x, y, 2)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, p.Coefficients(), want, 1e-8)
}

func TestVandermonde(t *testing.T) {
	v := Vandermonde([]float64{1, 2, 3}, 2)
	r, c := v.Dims()
	if r != 3 || c != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", r, c)
	}
	want := [][]float64{{1, 1, 1}, {1, 2, 4}, {1, 3, 9}}
	for i := range want {
		for j := range want[i] {
			if v.At(i, j) != want[i][j] {
				t.Fatalf("V[%d][%d] = %v, want %v", i, j, v.At(i, j), want[i][j])
			}
		}
	}
}

func TestLinspace(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Linspace(0, 5, 6), []float64{0, 1, 2, 3, 4, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, Linspace(0, 0, 1), []float64{0}, 0)
	testutil.RequireSliceNearlyEqual(t, Linspace(1, 2, 5), []float64{1, 1.25, 1.5, 1.75, 2}, 1e-15)
	if Linspace(0, 1, 0) != nil {
		t.Fatal("Linspace with n=0 should be nil")
	}
}
