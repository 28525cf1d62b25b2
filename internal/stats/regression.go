package stats

import (
	"fmt"
	"math"
)

// Regression is the closed-form least-squares fit of gold return on inflation
// rate, with the standard two-sided t-test on the slope.
type Regression struct {
	Intercept float64
	Slope     float64 // beta, the hedge ratio
	PValue    float64 // two-sided, slope != 0, df = N-2
	RSquared  float64
	N         int
}

// FitOLS fits y = intercept + slope*x by ordinary least squares.
// Requires N >= 3 so the t-test has at least one degree of freedom.
func FitOLS(x, y []float64) (*Regression, error) {
	if len(x) != len(y) || len(x) < 3 {
		return nil, &InsufficientDataError{Op: "regression", N: min(len(x), len(y)), Min: 3}
	}
	n := float64(len(x))
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var sxx, sxy, syy float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return nil, fmt.Errorf("regression: zero variance in regressor")
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	var sse float64
	for i := range x {
		resid := y[i] - intercept - slope*x[i]
		sse += resid * resid
	}
	r2 := 0.0
	if syy > 0 {
		r2 = 1 - sse/syy
		if r2 < 0 {
			r2 = 0
		} else if r2 > 1 {
			r2 = 1
		}
	}

	df := n - 2
	var p float64
	switch {
	case sse <= 0:
		// Perfect fit: zero residual variance, the slope is exact.
		p = 0
	default:
		se := math.Sqrt(sse / df / sxx)
		t := slope / se
		p = studentTPValue(t, df)
	}

	return &Regression{
		Intercept: intercept,
		Slope:     slope,
		PValue:    p,
		RSquared:  r2,
		N:         len(x),
	}, nil
}

// studentTPValue returns the two-sided p-value of a t statistic with df
// degrees of freedom: P(|T| >= |t|) = I_{df/(df+t^2)}(df/2, 1/2).
func studentTPValue(t, df float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}
	x := df / (df + t*t)
	return regularizedIncompleteBeta(df/2, 0.5, x)
}

// regularizedIncompleteBeta computes I_x(a, b) using the continued-fraction
// expansion, switching to the symmetric form when x is past the cut point so
// the fraction converges quickly.
func regularizedIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lgA, _ := math.Lgamma(a)
	lgB, _ := math.Lgamma(b)
	lgAB, _ := math.Lgamma(a + b)
	front := math.Exp(lgAB - lgA - lgB + a*math.Log(x) + b*math.Log(1-x))
	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

// betaCF evaluates the incomplete beta continued fraction by the modified
// Lentz method.
func betaCF(a, b, x float64) float64 {
	maxIter := 200
	eps := 1e-12
	fpmin := 1e-30

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < fpmin {
		d = fpmin
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIter; m++ {
		m2 := float64(2 * m)
		mf := float64(m)

		aa := mf * (b - mf) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		h *= d * c

		aa = -(a + mf) * (qab + mf) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = 1 + aa/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}
