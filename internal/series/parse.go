package series

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in priority order; the first layout that parses wins.
// Covers the CPI convention (ISO month-start dates) and the gold vendor
// conventions (abbreviated month with 2- or 4-digit year, day-first slashes).
var dateLayouts = []string{
	"Jan 2006",
	"Jan 06",
	"January 2006",
	"02/01/2006",
	"2006-01-02",
}

func layoutList() string { return strings.Join(dateLayouts, ", ") }

// ParseMonth parses a raw date string and normalizes it to a month key.
// Day-of-month is discarded so that month-start CPI dates and last-trading-day
// gold dates land on the same key.
func ParseMonth(raw string) (time.Time, error) {
	s := strings.TrimSpace(strings.Trim(raw, "\""))
	if s == "" {
		return time.Time{}, &DateParseError{Input: raw}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthKey(t), nil
		}
	}
	return time.Time{}, &DateParseError{Input: raw}
}

// ParseValue parses a raw numeric field, stripping thousands separators and
// surrounding quotes first. Vendor gold exports write prices like "1,234.50".
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(strings.Trim(raw, "\""))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, &NumericParseError{Input: raw}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &NumericParseError{Input: raw}
	}
	return f, nil
}
