package stats

import (
	"errors"
	"math"
	"testing"
)

func TestPearson_PerfectCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	r, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("pearson: %v", err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("r = %v, want 1", r)
	}
	for i := range y {
		y[i] = -y[i]
	}
	r, _ = Pearson(x, y)
	if math.Abs(r+1) > 1e-12 {
		t.Errorf("r = %v, want -1", r)
	}
}

func TestPearson_KnownValue(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 1, 4, 3}
	r, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("pearson: %v", err)
	}
	if math.Abs(r-0.6) > 1e-12 {
		t.Errorf("r = %v, want 0.6", r)
	}
}

func TestPearson_TwoPointsFromDerivedScenario(t *testing.T) {
	// Derived from CPI [100,102,101] and gold [1000,1010,1050]: inflation
	// falls while the return rises, so two points give exactly -1.
	infl := []float64{2.0, (101.0 - 102.0) / 102.0 * 100}
	ret := []float64{1.0, (1050.0 - 1010.0) / 1010.0 * 100}
	r, err := Pearson(infl, ret)
	if err != nil {
		t.Fatalf("pearson: %v", err)
	}
	if math.Abs(r+1) > 1e-9 {
		t.Errorf("r = %v, want -1", r)
	}
}

func TestPearson_InsufficientData(t *testing.T) {
	_, err := Pearson([]float64{1}, []float64{2})
	var ierr *InsufficientDataError
	if !errors.As(err, &ierr) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
	if ierr.Min != 2 {
		t.Errorf("min = %d, want 2", ierr.Min)
	}
}

func TestPearson_ZeroVariance(t *testing.T) {
	r, err := Pearson([]float64{3, 3, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("pearson: %v", err)
	}
	if r != 0 {
		t.Errorf("r = %v, want 0 for zero-variance input", r)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.N != 8 {
		t.Fatalf("n = %d", s.N)
	}
	if math.Abs(s.Mean-5) > 1e-12 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	// Sample std with N-1: sum of squared deviations is 32, 32/7.
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(s.Std-want) > 1e-12 {
		t.Errorf("std = %v, want %v", s.Std, want)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("min/max = %v/%v", s.Min, s.Max)
	}
}
