package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tprofile/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 100)
	}
	kernel := []float64{0.25, 0.5, 0.25}

	want, err := Direct(signal, kernel)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}

	got, err := OverlapAddConvolve(signal, kernel)
	if err != nil {
		t.Fatalf("overlap-add convolution failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-10)
}

func TestOverlapAddSmallBlocks(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 300)
	kernel := testutil.DeterministicNoise(4, 1, 17)

	oa, err := NewOverlapAdd(kernel, 32)
	if err != nil {
		t.Fatalf("NewOverlapAdd: %v", err)
	}
	if oa.BlockSize() != 32 {
		t.Fatalf("BlockSize = %d, want 32", oa.BlockSize())
	}
	if oa.FFTSize() < 32+17-1 {
		t.Fatalf("FFTSize = %d too small", oa.FFTSize())
	}

	got, err := oa.Process(signal)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want, _ := Direct(signal, kernel)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestOverlapAddErrors(t *testing.T) {
	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}

	oa, err := NewOverlapAdd([]float64{1}, 0)
	if err != nil {
		t.Fatalf("NewOverlapAdd: %v", err)
	}
	if _, err := oa.Process(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	shortKernel := []float64{1, 2, 1}
	got, err := Convolve(signal, shortKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	want, _ := Direct(signal, shortKernel)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	longKernel := make([]float64, 101)
	for i := range longKernel {
		longKernel[i] = math.Exp(-float64(i) / 20)
	}

	got, err = Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	want, _ = Direct(signal, longKernel)

	maxDiff, err := testutil.MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if maxDiff > 1e-8 {
		t.Errorf("long kernel max difference %v exceeds tolerance", maxDiff)
	}
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, _ := ConvolveMode(a, b, ModeFull)
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, expected %d", len(full), len(a)+len(b)-1)
	}

	same, _ := ConvolveMode(a, b, ModeSame)
	if len(same) != len(a) {
		t.Errorf("same mode length: got %d, expected %d", len(same), len(a))
	}

	valid, _ := ConvolveMode(a, b, ModeValid)
	testutil.RequireSliceNearlyEqual(t, valid, []float64{10, 16, 22}, 1e-12)
}

func TestConvolveCommutative(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5}

	ab, _ := Convolve(a, b)
	ba, _ := Convolve(b, a)

	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}
