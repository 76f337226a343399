package profile

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-tprofile/internal/testutil"
)

func seriesOf(temps []float64) Series {
	s := make(Series, len(temps))
	alt := testutil.Altitudes(100, 10, len(temps))
	for i, v := range temps {
		s[i] = Sample{Altitude: alt[i], Temperature: v}
	}
	return s
}

func TestFitQuadraticEndToEnd(t *testing.T) {
	series := Series{
		{Altitude: 100, Temperature: 0},
		{Altitude: 110, Temperature: 1},
		{Altitude: 120, Temperature: 4},
		{Altitude: 130, Temperature: 9},
		{Altitude: 140, Temperature: 16},
		{Altitude: 150, Temperature: 25},
	}

	fitted, err := Fit(series, 5)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(fitted) != 6 {
		t.Fatalf("len = %d, want 6", len(fitted))
	}

	testutil.RequireSliceNearlyEqual(t, fitted.Values(), series.Temperatures(), 1e-6)
	for i, p := range fitted {
		if p.Position != float64(i) {
			t.Fatalf("position[%d] = %v, want %d", i, p.Position, i)
		}
	}
}

func TestFitConstantTemperature(t *testing.T) {
	for _, n := range []int{6, 7, 12, 100, 1000} {
		series := seriesOf(testutil.DC(-41.25, n))
		fitted, err := Fit(series, DefaultDegree)
		if err != nil {
			t.Fatalf("n=%d: Fit: %v", n, err)
		}
		testutil.RequireRelNearlyEqual(t, fitted.Values(), series.Temperatures(), 1e-9)
	}
}

func TestFitDegreeBoundary(t *testing.T) {
	_, err := Fit(seriesOf(testutil.DC(1, 5)), 5)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("N=5: expected ErrInsufficientData, got %v", err)
	}

	fitted, err := Fit(seriesOf([]float64{3, 1, 4, 1, 5, 9}), 5)
	if err != nil {
		t.Fatalf("N=6: Fit: %v", err)
	}
	if len(fitted) != 6 {
		t.Fatalf("N=6: len = %d, want 6", len(fitted))
	}
}

func TestFitErrors(t *testing.T) {
	if _, err := Fit(nil, 0); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("empty series: expected ErrInsufficientData, got %v", err)
	}
	if _, err := Fit(seriesOf([]float64{1, 2}), -1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("negative degree: expected ErrInvalidParameter, got %v", err)
	}
}

func TestFitSingleSample(t *testing.T) {
	fitted, err := Fit(seriesOf([]float64{7.5}), 0)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(fitted) != 1 || fitted[0].Position != 0 {
		t.Fatalf("unexpected grid: %+v", fitted)
	}
	testutil.RequireSliceNearlyEqual(t, fitted.Values(), []float64{7.5}, 1e-12)
}

func TestFitIdempotent(t *testing.T) {
	series := seriesOf(testutil.LapseProfile(3, 18, 0.07, 0.6, 250))
	a, err := Fit(series, 5)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	b, _ := Fit(series, 5)
	testutil.RequireSliceNearlyEqual(t, a.Values(), b.Values(), 0)
}
