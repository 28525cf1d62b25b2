package stats

import "math"

// Rolling is a trailing-window statistic aligned to the derived table.
// Values[i] covers derived rows [i-Window+1, i]; indices below Window-1 have
// no full trailing window and are NaN, never zero.
type Rolling struct {
	Window int
	Values []float64
}

// Defined reports whether index i has a full trailing window.
func (r *Rolling) Defined(i int) bool {
	return i >= 0 && i < len(r.Values) && !math.IsNaN(r.Values[i])
}

// Range returns the min and max over the defined entries, and whether any
// entry is defined at all.
func (r *Rolling) Range() (lo, hi float64, ok bool) {
	for _, v := range r.Values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// RollingCorrelation computes the Pearson correlation over each trailing
// window of size w. Each window is computed independently from its own
// observations; nothing is carried between windows.
func RollingCorrelation(x, y []float64, w int) *Rolling {
	out := newRolling(len(x), w)
	if w < 2 || len(x) != len(y) {
		return out
	}
	for i := w - 1; i < len(x); i++ {
		r, err := Pearson(x[i-w+1:i+1], y[i-w+1:i+1])
		if err != nil {
			continue
		}
		out.Values[i] = r
	}
	return out
}

// RollingBeta computes the OLS slope of y on x over each trailing window of
// size w. A zero-variance window leaves the entry undefined.
func RollingBeta(x, y []float64, w int) *Rolling {
	out := newRolling(len(x), w)
	if w < 2 || len(x) != len(y) {
		return out
	}
	for i := w - 1; i < len(x); i++ {
		b, ok := slope(x[i-w+1:i+1], y[i-w+1:i+1])
		if !ok {
			continue
		}
		out.Values[i] = b
	}
	return out
}

func newRolling(n, w int) *Rolling {
	out := &Rolling{Window: w, Values: make([]float64, n)}
	for i := range out.Values {
		out.Values[i] = math.NaN()
	}
	return out
}

func slope(x, y []float64) (float64, bool) {
	n := float64(len(x))
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n
	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}
	if sxx == 0 {
		return 0, false
	}
	return sxy / sxx, true
}
