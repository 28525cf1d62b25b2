package stats

import (
	"fmt"
	"time"
)

// DivisionByZeroError indicates a percentage change is undefined because the
// preceding month's level is zero.
type DivisionByZeroError struct {
	Column string
	Date   time.Time
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s level is zero at %s; percentage change for the following month is undefined",
		e.Column, e.Date.Format("2006-01"))
}

// InsufficientDataError indicates too few observations for a statistic.
type InsufficientDataError struct {
	Op  string
	N   int
	Min int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s requires at least %d observations, got %d", e.Op, e.Min, e.N)
}
