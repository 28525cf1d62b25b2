package series

import "fmt"

// DateParseError indicates a date string matched none of the accepted layouts.
type DateParseError struct {
	Input string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q (accepted layouts: %s)", e.Input, layoutList())
}

// NumericParseError indicates a value field had residual non-numeric content
// after separator stripping.
type NumericParseError struct {
	Input string
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("unparseable numeric value %q", e.Input)
}

// DataQualityError indicates too many missing months in one source series to
// forward-fill silently.
type DataQualityError struct {
	Series    string
	Missing   int
	Expected  int
	Tolerance float64
}

func (e *DataQualityError) Rate() float64 {
	if e.Expected == 0 {
		return 0
	}
	return float64(e.Missing) / float64(e.Expected)
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("series %s: %d of %d expected months missing (%.1f%%, tolerance %.1f%%)",
		e.Series, e.Missing, e.Expected, e.Rate()*100, e.Tolerance*100)
}

// EmptyIntersectionError indicates the two series share no month keys.
type EmptyIntersectionError struct {
	A, B string
}

func (e *EmptyIntersectionError) Error() string {
	return fmt.Sprintf("series %s and %s have no overlapping months", e.A, e.B)
}
