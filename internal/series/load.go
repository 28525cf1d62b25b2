package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// LoadOptions controls CSV loading for one source series.
type LoadOptions struct {
	// Name labels the series in errors and reports.
	Name string
	// DateColumn and ValueColumn are matched case-insensitively against the
	// header. Empty values fall back to common header names.
	DateColumn  string
	ValueColumn string
	// GapTolerance is the maximum fraction of expected months that may be
	// missing and forward-filled. Above it the load fails.
	GapTolerance float64
}

var (
	defaultDateHeaders  = []string{"date", "month", "ds"}
	defaultValueHeaders = []string{"price", "value", "cpi", "cpi_combined", "index", "level", "y"}
)

// LoadCSV loads one month-keyed series from a CSV file. Extra columns
// (open/high/low/volume/% change in vendor gold exports) are ignored.
func LoadCSV(path string, opts LoadOptions) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	s, err := LoadCSVFromReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// LoadCSVFromReader is LoadCSV over an io.Reader, for tests and piped input.
func LoadCSVFromReader(r io.Reader, opts LoadOptions) (*Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("series %s: empty file", opts.Name)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	dateIdx, valueIdx := resolveColumns(header, opts)
	if dateIdx < 0 {
		return nil, fmt.Errorf("series %s: no date column in header %v", opts.Name, header)
	}
	if valueIdx < 0 {
		return nil, fmt.Errorf("series %s: no value column in header %v", opts.Name, header)
	}

	seen := make(map[time.Time]int)
	out := &Series{Name: opts.Name}
	row := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if dateIdx >= len(rec) || valueIdx >= len(rec) {
			return nil, fmt.Errorf("row %d: %d fields, need at least %d", row, len(rec), max(dateIdx, valueIdx)+1)
		}
		d, err := ParseMonth(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		v, err := ParseValue(rec[valueIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if prev, dup := seen[d]; dup {
			return nil, fmt.Errorf("row %d: duplicate month %s (first at row %d)", row, d.Format("2006-01"), prev)
		}
		seen[d] = row
		out.Dates = append(out.Dates, d)
		out.Values = append(out.Values, v)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("series %s: no data rows", opts.Name)
	}

	sortByDate(out)
	if err := fillGaps(out, opts.GapTolerance); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveColumns(header []string, opts LoadOptions) (dateIdx, valueIdx int) {
	dateIdx, valueIdx = -1, -1
	match := func(h string, want string, fallbacks []string) bool {
		h = strings.ToLower(strings.TrimSpace(strings.Trim(h, "\"")))
		if want != "" {
			return h == strings.ToLower(want)
		}
		for _, fb := range fallbacks {
			if h == fb {
				return true
			}
		}
		return false
	}
	for i, h := range header {
		if dateIdx < 0 && match(h, opts.DateColumn, defaultDateHeaders) {
			dateIdx = i
			continue
		}
		if valueIdx < 0 && match(h, opts.ValueColumn, defaultValueHeaders) {
			valueIdx = i
		}
	}
	return dateIdx, valueIdx
}

func sortByDate(s *Series) {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return s.Dates[idx[i]].Before(s.Dates[idx[j]]) })
	dates := make([]time.Time, s.Len())
	values := make([]float64, s.Len())
	for i, j := range idx {
		dates[i] = s.Dates[j]
		values[i] = s.Values[j]
	}
	s.Dates, s.Values = dates, values
}

// fillGaps carries the preceding month's value forward into missing months.
// The gap rate is measured against the expected month count between the first
// and last key inclusive; a rate above the tolerance is a fatal
// DataQualityError rather than something to paper over.
func fillGaps(s *Series, tolerance float64) error {
	if s.Len() < 2 {
		return nil
	}
	first, last := s.Dates[0], s.Dates[s.Len()-1]
	expected := monthsBetween(first, last) + 1
	missing := expected - s.Len()
	if missing <= 0 {
		return nil
	}
	if float64(missing)/float64(expected) > tolerance {
		return &DataQualityError{Series: s.Name, Missing: missing, Expected: expected, Tolerance: tolerance}
	}

	dates := make([]time.Time, 0, expected)
	values := make([]float64, 0, expected)
	j := 0
	for d := first; !d.After(last); d = d.AddDate(0, 1, 0) {
		if j < s.Len() && s.Dates[j].Equal(d) {
			dates = append(dates, d)
			values = append(values, s.Values[j])
			j++
			continue
		}
		dates = append(dates, d)
		values = append(values, values[len(values)-1])
	}
	s.Dates, s.Values = dates, values
	return nil
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
