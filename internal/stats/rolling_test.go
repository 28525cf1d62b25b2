package stats

import (
	"math"
	"testing"
)

func waveFixture(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = math.Sin(float64(i)/3) + float64(i)*0.01
		y[i] = math.Cos(float64(i)/5) - float64(i)*0.02
	}
	return x, y
}

func TestRollingCorrelation_Boundary(t *testing.T) {
	x, y := waveFixture(30)
	const w = 12
	r := RollingCorrelation(x, y, w)
	if len(r.Values) != 30 {
		t.Fatalf("len = %d, want 30", len(r.Values))
	}
	for i := 0; i < w-1; i++ {
		if r.Defined(i) {
			t.Errorf("index %d has no full window but is defined", i)
		}
	}
	for i := w - 1; i < len(r.Values); i++ {
		if !r.Defined(i) {
			t.Errorf("index %d has a full window but is undefined", i)
		}
	}
}

func TestRollingCorrelation_MatchesClosedWindow(t *testing.T) {
	x, y := waveFixture(40)
	const w = 12
	r := RollingCorrelation(x, y, w)
	for _, i := range []int{w - 1, 20, 39} {
		want, err := Pearson(x[i-w+1:i+1], y[i-w+1:i+1])
		if err != nil {
			t.Fatalf("pearson: %v", err)
		}
		if math.Abs(r.Values[i]-want) > 1e-12 {
			t.Errorf("rolling[%d] = %v, want %v", i, r.Values[i], want)
		}
	}
}

func TestRollingBeta_MatchesClosedWindow(t *testing.T) {
	x, y := waveFixture(40)
	const w = 12
	r := RollingBeta(x, y, w)
	for i := 0; i < w-1; i++ {
		if r.Defined(i) {
			t.Errorf("index %d defined before a full window", i)
		}
	}
	for _, i := range []int{w - 1, 25, 39} {
		reg, err := FitOLS(x[i-w+1:i+1], y[i-w+1:i+1])
		if err != nil {
			t.Fatalf("fit: %v", err)
		}
		if math.Abs(r.Values[i]-reg.Slope) > 1e-12 {
			t.Errorf("rolling beta[%d] = %v, want %v", i, r.Values[i], reg.Slope)
		}
	}
}

func TestRollingBeta_ZeroVarianceWindowUndefined(t *testing.T) {
	x := []float64{1, 1, 1, 2, 3, 4}
	y := []float64{5, 6, 7, 8, 9, 10}
	r := RollingBeta(x, y, 3)
	if r.Defined(2) {
		t.Error("window over constant regressor should be undefined")
	}
	if !r.Defined(5) {
		t.Error("window with variance should be defined")
	}
}

func TestRollingRange(t *testing.T) {
	x, y := waveFixture(30)
	r := RollingCorrelation(x, y, 12)
	lo, hi, ok := r.Range()
	if !ok {
		t.Fatal("range should be defined")
	}
	if lo > hi || lo < -1 || hi > 1 {
		t.Errorf("range = [%v, %v]", lo, hi)
	}

	short := RollingCorrelation(x[:5], y[:5], 12)
	if _, _, ok := short.Range(); ok {
		t.Error("range over an all-undefined sequence should report !ok")
	}
}
