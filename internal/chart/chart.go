// Package chart renders the three output charts from the computed results.
// Chart content is derived solely from the table and statistics passed in;
// nothing here computes new values.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	charts "github.com/vicanso/go-charts/v2"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/goldhedge-cli/internal/stats"
)

// Options sizes the rendered images.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return o
}

// Levels renders the dual-axis level comparison: gold price on the left axis,
// CPI index on the right.
func Levels(d *stats.Derived, opt Options) ([]byte, error) {
	if d.Len() < 2 {
		return nil, errors.New("not enough rows to chart")
	}
	opt = opt.withDefaults()

	labels := make([]string, d.Len())
	for i, t := range d.Dates {
		labels[i] = t.Format("Jan '06")
	}
	goldMin, goldMax := padRange(d.Gold)
	cpiMin, cpiMax := padRange(d.CPI)

	seriesList := charts.NewSeriesListDataFromValues([][]float64{d.Gold, d.CPI}, charts.ChartTypeLine)
	seriesList[0].Name = "Gold Price"
	seriesList[0].AxisIndex = 0
	seriesList[1].Name = "CPI Index"
	seriesList[1].AxisIndex = 1

	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc("Gold Price vs. CPI Level",
			fmt.Sprintf("%s – %s", d.Dates[0].Format("Jan 2006"), d.Dates[d.Len()-1].Format("Jan 2006"))),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(
			charts.YAxisOption{Min: &goldMin, Max: &goldMax, DivideCount: 5},
			charts.YAxisOption{Min: &cpiMin, Max: &cpiMax, DivideCount: 5, Position: charts.PositionRight},
		),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Gold Price", "CPI Index"}}),
		charts.WidthOptionFunc(opt.Width),
		charts.HeightOptionFunc(opt.Height),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("render levels chart: %w", err)
	}
	return painter.Bytes()
}

// RollingStats renders the rolling correlations (left axis) and rolling beta
// (right axis). The series start at different months, so each carries its own
// time axis, with the overall values as dashed reference lines.
func RollingStats(d *stats.Derived, corrShort, corrLong, beta *stats.Rolling, overallCorr, overallBeta float64, opt Options) ([]byte, error) {
	opt = opt.withDefaults()

	mk := func(r *stats.Rolling) ([]time.Time, []float64) {
		var xs []time.Time
		var ys []float64
		for i, v := range r.Values {
			if math.IsNaN(v) {
				continue
			}
			xs = append(xs, d.Dates[i])
			ys = append(ys, v)
		}
		return xs, ys
	}
	xShort, yShort := mk(corrShort)
	xLong, yLong := mk(corrLong)
	xBeta, yBeta := mk(beta)
	if len(yShort) == 0 && len(yLong) == 0 && len(yBeta) == 0 {
		return nil, errors.New("no rolling observations to chart")
	}

	refLine := func(name string, v float64, axis gochart.YAxisType, c gochart.Style) gochart.Series {
		c.StrokeDashArray = []float64{5.0, 5.0}
		return gochart.TimeSeries{
			Name:    name,
			XValues: []time.Time{d.Dates[0], d.Dates[d.Len()-1]},
			YValues: []float64{v, v},
			YAxis:   axis,
			Style:   c,
		}
	}

	// Windows longer than the sample produce empty series, which must be
	// left out rather than handed to the renderer.
	var seriesList []gochart.Series
	if len(yShort) > 0 {
		seriesList = append(seriesList, gochart.TimeSeries{
			Name:    fmt.Sprintf("%dm Rolling Corr", corrShort.Window),
			XValues: xShort,
			YValues: yShort,
			Style:   gochart.Style{StrokeColor: gochart.ColorBlue, StrokeWidth: 2},
		})
	}
	if len(yLong) > 0 {
		seriesList = append(seriesList, gochart.TimeSeries{
			Name:    fmt.Sprintf("%dm Rolling Corr", corrLong.Window),
			XValues: xLong,
			YValues: yLong,
			Style:   gochart.Style{StrokeColor: gochart.ColorAlternateBlue, StrokeWidth: 2},
		})
	}
	if len(yBeta) > 0 {
		seriesList = append(seriesList, gochart.TimeSeries{
			Name:    fmt.Sprintf("%dm Rolling Beta", beta.Window),
			XValues: xBeta,
			YValues: yBeta,
			YAxis:   gochart.YAxisSecondary,
			Style:   gochart.Style{StrokeColor: gochart.ColorGreen, StrokeWidth: 2},
		})
	}
	seriesList = append(seriesList,
		refLine(fmt.Sprintf("Overall Corr %.3f", overallCorr), overallCorr, gochart.YAxisPrimary,
			gochart.Style{StrokeColor: gochart.ColorOrange, StrokeWidth: 1.5}),
		refLine("Zero", 0, gochart.YAxisPrimary,
			gochart.Style{StrokeColor: gochart.ColorRed, StrokeWidth: 1}),
		refLine(fmt.Sprintf("Overall Beta %.3f", overallBeta), overallBeta, gochart.YAxisSecondary,
			gochart.Style{StrokeColor: gochart.ColorAlternateGreen, StrokeWidth: 1.5}),
		refLine("Perfect Hedge (Beta=1.0)", 1, gochart.YAxisSecondary,
			gochart.Style{StrokeColor: gochart.ColorLightGray, StrokeWidth: 1}),
	)

	graph := gochart.Chart{
		Title:  "Rolling Correlation and Hedge Ratio",
		Width:  opt.Width,
		Height: opt.Height,
		YAxis: gochart.YAxis{
			Name:  "Correlation",
			Range: &gochart.ContinuousRange{Min: -1, Max: 1},
		},
		YAxisSecondary: gochart.YAxis{Name: "Beta"},
		Series:         seriesList,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render rolling chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RegressionScatter renders the inflation/return scatter with the fitted
// regression line.
func RegressionScatter(d *stats.Derived, corr float64, reg *stats.Regression, opt Options) ([]byte, error) {
	if d.Len() < 2 {
		return nil, errors.New("not enough rows to chart")
	}
	opt = opt.withDefaults()

	xMin, xMax := d.Inflation[0], d.Inflation[0]
	for _, v := range d.Inflation {
		if v < xMin {
			xMin = v
		}
		if v > xMax {
			xMax = v
		}
	}

	graph := gochart.Chart{
		Title:  fmt.Sprintf("Gold Returns vs. Inflation (r = %.3f, R² = %.4f)", corr, reg.RSquared),
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  gochart.XAxis{Name: "Monthly Inflation Rate (%)"},
		YAxis:  gochart.YAxis{Name: "Monthly Gold Return (%)"},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Observations",
				XValues: d.Inflation,
				YValues: d.GoldReturn,
				Style: gochart.Style{
					StrokeWidth: gochart.Disabled,
					DotWidth:    4,
					DotColor:    gochart.ColorBlue,
				},
			},
			gochart.ContinuousSeries{
				Name:    "Zero",
				XValues: []float64{xMin, xMax},
				YValues: []float64{0, 0},
				Style: gochart.Style{
					StrokeColor:     gochart.ColorLightGray,
					StrokeWidth:     1,
					StrokeDashArray: []float64{3.0, 3.0},
				},
			},
			gochart.ContinuousSeries{
				Name:    fmt.Sprintf("Fit: y = %.2f + %.2f·x", reg.Intercept, reg.Slope),
				XValues: []float64{xMin, xMax},
				YValues: []float64{reg.Intercept + reg.Slope*xMin, reg.Intercept + reg.Slope*xMax},
				Style: gochart.Style{
					StrokeColor:     gochart.ColorRed,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter chart: %w", err)
	}
	return buf.Bytes(), nil
}

func padRange(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	pad := (hi - lo) * 0.05
	if pad < hi*0.002 {
		pad = hi * 0.002
	}
	lo -= pad
	if lo < 0 {
		lo = 0
	}
	hi += pad
	return lo, hi
}
