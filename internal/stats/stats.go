package stats

import "math"

// Pearson computes the product-moment correlation between x and y.
// Requires at least 2 observations. A zero-variance input yields r = 0.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, &InsufficientDataError{Op: "correlation", N: min(len(x), len(y)), Min: 2}
	}
	n := float64(len(x))
	if len(x) < 2 {
		return 0, &InsufficientDataError{Op: "correlation", N: len(x), Min: 2}
	}
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
		sumXY += x[i] * y[i]
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0, nil
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, nil
}

// Summary holds per-column descriptive statistics for the text report.
type Summary struct {
	Mean float64
	Std  float64 // sample standard deviation, N-1
	Min  float64
	Max  float64
	N    int
}

// Describe computes descriptive statistics over one derived column.
func Describe(v []float64) Summary {
	s := Summary{N: len(v)}
	if len(v) == 0 {
		return s
	}
	s.Min, s.Max = v[0], v[0]
	for _, x := range v {
		s.Mean += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Mean /= float64(len(v))
	if len(v) > 1 {
		var m2 float64
		for _, x := range v {
			d := x - s.Mean
			m2 += d * d
		}
		s.Std = math.Sqrt(m2 / float64(len(v)-1))
	}
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
