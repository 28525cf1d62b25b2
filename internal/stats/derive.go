// Package stats derives the monthly inflation and gold-return series from the
// aligned levels and computes the correlation, regression, and rolling
// statistics over them.
package stats

import (
	"time"

	"github.com/KaramelBytes/goldhedge-cli/internal/series"
)

// Derived extends the aligned table with the two percentage-change columns.
// The first aligned row has no prior month and is dropped, so row i here
// corresponds to aligned row i+1.
type Derived struct {
	Dates      []time.Time
	CPI        []float64
	Gold       []float64
	Inflation  []float64 // month-over-month CPI change, percent
	GoldReturn []float64 // month-over-month gold price change, percent
}

// Len returns the number of derived rows.
func (d *Derived) Len() int { return len(d.Dates) }

// Derive computes the percentage-change columns over the aligned table.
// A zero level in the preceding month makes the change undefined and is a
// fatal DivisionByZeroError; nothing NaN or infinite ever enters the table.
func Derive(a *series.Aligned) (*Derived, error) {
	if a.Len() < 2 {
		return nil, &InsufficientDataError{Op: "percentage change", N: a.Len(), Min: 2}
	}
	n := a.Len() - 1
	out := &Derived{
		Dates:      make([]time.Time, n),
		CPI:        make([]float64, n),
		Gold:       make([]float64, n),
		Inflation:  make([]float64, n),
		GoldReturn: make([]float64, n),
	}
	for t := 1; t < a.Len(); t++ {
		if a.CPI[t-1] == 0 {
			return nil, &DivisionByZeroError{Column: "CPI", Date: a.Dates[t-1]}
		}
		if a.Gold[t-1] == 0 {
			return nil, &DivisionByZeroError{Column: "gold", Date: a.Dates[t-1]}
		}
		i := t - 1
		out.Dates[i] = a.Dates[t]
		out.CPI[i] = a.CPI[t]
		out.Gold[i] = a.Gold[t]
		out.Inflation[i] = (a.CPI[t] - a.CPI[t-1]) / a.CPI[t-1] * 100
		out.GoldReturn[i] = (a.Gold[t] - a.Gold[t-1]) / a.Gold[t-1] * 100
	}
	return out, nil
}
