package stats

import (
	"errors"
	"math"
	"testing"
)

func TestFitOLS_KnownValues(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 1, 4, 3}
	reg, err := FitOLS(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	// Closed form: Sxx=5, Sxy=3, slope=0.6, intercept=1.0, SSE=3.2,
	// R²=0.36, t=0.6/sqrt(0.32)≈1.06066, df=2 → two-sided p = 0.4 exactly.
	if math.Abs(reg.Slope-0.6) > 1e-12 {
		t.Errorf("slope = %v, want 0.6", reg.Slope)
	}
	if math.Abs(reg.Intercept-1.0) > 1e-12 {
		t.Errorf("intercept = %v, want 1.0", reg.Intercept)
	}
	if math.Abs(reg.RSquared-0.36) > 1e-12 {
		t.Errorf("r² = %v, want 0.36", reg.RSquared)
	}
	if math.Abs(reg.PValue-0.4) > 1e-9 {
		t.Errorf("p = %v, want 0.4", reg.PValue)
	}
	if reg.N != 4 {
		t.Errorf("n = %d, want 4", reg.N)
	}
}

func TestFitOLS_PerfectFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 - 2*v
	}
	reg, err := FitOLS(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if math.Abs(reg.Slope+2) > 1e-12 || math.Abs(reg.Intercept-3) > 1e-12 {
		t.Errorf("fit = %v + %v·x", reg.Intercept, reg.Slope)
	}
	if reg.RSquared != 1 {
		t.Errorf("r² = %v, want 1", reg.RSquared)
	}
	if reg.PValue != 0 {
		t.Errorf("p = %v, want 0 for an exact fit", reg.PValue)
	}
}

func TestFitOLS_SlopeSignMatchesCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{9, 7, 8, 5, 4, 2}
	reg, err := FitOLS(x, y)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	var meanX, meanY, cov float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(len(x))
	meanY /= float64(len(y))
	for i := range x {
		cov += (x[i] - meanX) * (y[i] - meanY)
	}
	if (reg.Slope < 0) != (cov < 0) {
		t.Errorf("slope %v disagrees in sign with covariance %v", reg.Slope, cov)
	}
	if reg.RSquared < 0 || reg.RSquared > 1 {
		t.Errorf("r² = %v outside [0,1]", reg.RSquared)
	}
}

func TestFitOLS_RequiresThreeObservations(t *testing.T) {
	_, err := FitOLS([]float64{1, 2}, []float64{3, 4})
	var ierr *InsufficientDataError
	if !errors.As(err, &ierr) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
	if ierr.Min != 3 {
		t.Errorf("min = %d, want 3", ierr.Min)
	}
}

func TestFitOLS_ZeroVarianceRegressor(t *testing.T) {
	if _, err := FitOLS([]float64{2, 2, 2}, []float64{1, 2, 3}); err == nil {
		t.Fatal("want error for constant regressor")
	}
}

func TestStudentTPValue(t *testing.T) {
	cases := []struct {
		t, df, want float64
	}{
		// df=1 is the Cauchy distribution: P(|T| >= 1) = 0.5.
		{1, 1, 0.5},
		// df=2 has the closed form CDF 1/2 + t/(2*sqrt(2+t²)):
		// P(|T| >= sqrt(2)) = 1 - 1/sqrt(2).
		{math.Sqrt2, 2, 1 - 1/math.Sqrt2},
		{0, 5, 1},
	}
	for _, c := range cases {
		got := studentTPValue(c.t, c.df)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("p(t=%v, df=%v) = %v, want %v", c.t, c.df, got, c.want)
		}
	}
	if p := studentTPValue(math.Inf(1), 3); p != 0 {
		t.Errorf("p(inf) = %v, want 0", p)
	}
	// Symmetry: the sign of t must not matter.
	if a, b := studentTPValue(2.5, 7), studentTPValue(-2.5, 7); math.Abs(a-b) > 1e-12 {
		t.Errorf("asymmetric p-values: %v vs %v", a, b)
	}
}
