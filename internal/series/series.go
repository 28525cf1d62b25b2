// Package series loads and normalizes the two monthly input series (CPI
// index levels and gold price levels) and aligns them on a common monthly
// calendar.
package series

import (
	"fmt"
	"time"
)

// Series is a month-keyed value series. Dates are normalized to the first
// calendar day of the month, UTC. Dates are strictly increasing and unique.
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.Values) }

// Validate checks the month-key invariants: every date a first-of-month UTC
// key, strictly increasing, no duplicates, one value per date.
func (s *Series) Validate() error {
	if len(s.Dates) != len(s.Values) {
		return fmt.Errorf("series %s: %d dates but %d values", s.Name, len(s.Dates), len(s.Values))
	}
	for i, d := range s.Dates {
		if d.Day() != 1 || d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
			return fmt.Errorf("series %s: date %s is not a month key", s.Name, d.Format("2006-01-02"))
		}
		if i > 0 && !s.Dates[i-1].Before(d) {
			return fmt.Errorf("series %s: dates not strictly increasing at %s", s.Name, d.Format("2006-01"))
		}
	}
	return nil
}

// Aligned is the inner join of the CPI and gold series: one row per month
// present in both sources, ordered ascending, no missing values.
type Aligned struct {
	Dates []time.Time
	CPI   []float64
	Gold  []float64
}

// Len returns the number of aligned rows.
func (a *Aligned) Len() int { return len(a.Dates) }

// Merge inner-joins two normalized series on the month key. Months outside
// the intersection are dropped, not filled, so the final sample size depends
// on the shorter of the two inputs. A join with zero rows is a fatal
// EmptyIntersectionError.
func Merge(cpi, gold *Series) (*Aligned, error) {
	if err := cpi.Validate(); err != nil {
		return nil, err
	}
	if err := gold.Validate(); err != nil {
		return nil, err
	}
	goldAt := make(map[time.Time]float64, gold.Len())
	for i, d := range gold.Dates {
		goldAt[d] = gold.Values[i]
	}
	out := &Aligned{}
	for i, d := range cpi.Dates {
		v, ok := goldAt[d]
		if !ok {
			continue
		}
		out.Dates = append(out.Dates, d)
		out.CPI = append(out.CPI, cpi.Values[i])
		out.Gold = append(out.Gold, v)
	}
	if out.Len() == 0 {
		return nil, &EmptyIntersectionError{A: cpi.Name, B: gold.Name}
	}
	return out, nil
}

// MonthKey truncates a timestamp to its month key: first of the month, UTC.
func MonthKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
