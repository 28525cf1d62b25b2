// Package report serializes the derived table and the plain-text statistical
// summary. It consumes fully-computed results and performs no statistics of
// its own.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/goldhedge-cli/internal/stats"
)

// Inputs is everything the reporter consumes, computed and immutable.
type Inputs struct {
	RunID         string
	Derived       *stats.Derived
	Correlation   float64
	Regression    *stats.Regression
	RollCorrShort *stats.Rolling
	RollCorrLong  *stats.Rolling
	RollBeta      *stats.Rolling
}

// TableCSV renders the derived table: one row per derived entry with the
// level and percentage-change columns.
func TableCSV(d *stats.Derived) []byte {
	var b strings.Builder
	b.WriteString("date,cpi,gold,inflation_pct,gold_return_pct\n")
	for i := 0; i < d.Len(); i++ {
		b.WriteString(d.Dates[i].Format("2006-01-02"))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(d.CPI[i], 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(d.Gold[i], 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(d.Inflation[i], 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(d.GoldReturn[i], 'f', -1, 64))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Summary renders the key-value statistical summary.
func Summary(in Inputs) string {
	d := in.Derived
	reg := in.Regression
	infl := stats.Describe(d.Inflation)
	ret := stats.Describe(d.GoldReturn)

	var b strings.Builder
	rule := strings.Repeat("=", 70)
	b.WriteString(rule + "\n")
	b.WriteString("INFLATION VS. GOLD RETURNS: STATISTICAL SUMMARY\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(fmt.Sprintf("Run ID: %s\n", in.RunID))
	b.WriteString(fmt.Sprintf("Data Period: %s to %s\n",
		d.Dates[0].Format("January 2006"), d.Dates[d.Len()-1].Format("January 2006")))
	b.WriteString(fmt.Sprintf("Number of Observations: %d\n\n", d.Len()))

	b.WriteString("DESCRIPTIVE STATISTICS:\n")
	b.WriteString(fmt.Sprintf("  Inflation Rate: Mean = %.4f%%, Std = %.4f%%\n", infl.Mean, infl.Std))
	b.WriteString(fmt.Sprintf("  Gold Returns:   Mean = %.4f%%, Std = %.4f%%\n\n", ret.Mean, ret.Std))

	b.WriteString("KEY FINDINGS:\n")
	b.WriteString(fmt.Sprintf("1. Overall Correlation: %.4f (%s relationship)\n\n",
		in.Correlation, correlationStrength(in.Correlation)))

	b.WriteString("2. Regression (GoldReturn = alpha + beta * Inflation):\n")
	b.WriteString(fmt.Sprintf("   - Intercept (alpha): %.4f\n", reg.Intercept))
	b.WriteString(fmt.Sprintf("   - Beta (hedge ratio): %.4f\n", reg.Slope))
	b.WriteString(fmt.Sprintf("   - P-value:            %.4f %s\n", reg.PValue, significance(reg.PValue)))
	b.WriteString(fmt.Sprintf("   - R-squared:          %.4f\n", reg.RSquared))
	b.WriteString(fmt.Sprintf("   - Interpretation: for every 1%% rise in inflation, gold moves %.2f%% on average\n\n", reg.Slope))

	b.WriteString("3. Hedge Quality:\n")
	b.WriteString("   - " + hedgeQuality(reg.Slope) + "\n\n")

	b.WriteString("ROLLING CORRELATION:\n")
	writeRollingRange(&b, in.RollCorrShort)
	writeRollingRange(&b, in.RollCorrLong)
	b.WriteString("\nROLLING BETA:\n")
	writeRollingRange(&b, in.RollBeta)
	return b.String()
}

func writeRollingRange(b *strings.Builder, r *stats.Rolling) {
	lo, hi, ok := r.Range()
	if !ok {
		b.WriteString(fmt.Sprintf("  %d-Month Window: not enough observations\n", r.Window))
		return
	}
	b.WriteString(fmt.Sprintf("  %d-Month Window: min = %.4f, max = %.4f\n", r.Window, lo, hi))
}

func correlationStrength(r float64) string {
	switch a := math.Abs(r); {
	case a < 0.3:
		return "WEAK"
	case a < 0.6:
		return "MODERATE"
	default:
		return "STRONG"
	}
}

func significance(p float64) string {
	if p < 0.05 {
		return "(statistically significant at 5%)"
	}
	return "(NOT statistically significant)"
}

func hedgeQuality(beta float64) string {
	switch {
	case beta < 0.5:
		return fmt.Sprintf("WEAK HEDGE: gold captures only ~%.0f%% of inflation", beta*100)
	case beta < 1.0:
		return fmt.Sprintf("PARTIAL HEDGE: gold captures ~%.0f%% of inflation", beta*100)
	default:
		return "STRONG HEDGE: gold captures more than inflation (over-hedge)"
	}
}
