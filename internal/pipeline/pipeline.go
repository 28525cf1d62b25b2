// Package pipeline wires the batch stages together: load, merge, derive,
// compute, then write. Every artifact is computed in memory before the first
// output byte is written, so a failing run leaves nothing behind.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/KaramelBytes/goldhedge-cli/internal/chart"
	"github.com/KaramelBytes/goldhedge-cli/internal/report"
	"github.com/KaramelBytes/goldhedge-cli/internal/series"
	"github.com/KaramelBytes/goldhedge-cli/internal/stats"
	"github.com/KaramelBytes/goldhedge-cli/internal/utils"
)

// Config is the explicit run configuration passed into the pipeline.
type Config struct {
	CPIPath      string
	GoldPath     string
	OutputDir    string
	ShortWindow  int
	LongWindow   int
	BetaWindow   int
	GapTolerance float64
	ChartWidth   int
	ChartHeight  int
}

// Output file names, fixed per run.
const (
	TableFile        = "final_analysis_data.csv"
	SummaryFile      = "analysis_summary.txt"
	LevelsChartFile  = "01_trend_comparison.png"
	RollingChartFile = "02_rolling_correlation_and_beta.png"
	ScatterChartFile = "03_regression_scatter.png"
)

// Result holds every computed artifact of one run.
type Result struct {
	RunID         string
	Derived       *stats.Derived
	Correlation   float64
	Regression    *stats.Regression
	RollCorrShort *stats.Rolling
	RollCorrLong  *stats.Rolling
	RollBeta      *stats.Rolling

	table      []byte
	summary    string
	levelsPNG  []byte
	rollingPNG []byte
	scatterPNG []byte
}

// Summary returns the rendered plain-text summary.
func (r *Result) Summary() string { return r.summary }

// Run executes the full batch computation. It is a pure function of the two
// input files and the configuration; it writes nothing.
func Run(cfg Config) (*Result, error) {
	cpi, err := series.LoadCSV(cfg.CPIPath, series.LoadOptions{
		Name:         "cpi",
		GapTolerance: cfg.GapTolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("load cpi: %w", err)
	}
	gold, err := series.LoadCSV(cfg.GoldPath, series.LoadOptions{
		Name:         "gold",
		GapTolerance: cfg.GapTolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("load gold: %w", err)
	}

	aligned, err := series.Merge(cpi, gold)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	derived, err := stats.Derive(aligned)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}

	corr, err := stats.Pearson(derived.Inflation, derived.GoldReturn)
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}
	reg, err := stats.FitOLS(derived.Inflation, derived.GoldReturn)
	if err != nil {
		return nil, fmt.Errorf("regression: %w", err)
	}

	res := &Result{
		RunID:         uuid.NewString(),
		Derived:       derived,
		Correlation:   corr,
		Regression:    reg,
		RollCorrShort: stats.RollingCorrelation(derived.Inflation, derived.GoldReturn, cfg.ShortWindow),
		RollCorrLong:  stats.RollingCorrelation(derived.Inflation, derived.GoldReturn, cfg.LongWindow),
		RollBeta:      stats.RollingBeta(derived.Inflation, derived.GoldReturn, cfg.BetaWindow),
	}

	res.table = report.TableCSV(derived)
	res.summary = report.Summary(report.Inputs{
		RunID:         res.RunID,
		Derived:       derived,
		Correlation:   corr,
		Regression:    reg,
		RollCorrShort: res.RollCorrShort,
		RollCorrLong:  res.RollCorrLong,
		RollBeta:      res.RollBeta,
	})

	chartOpt := chart.Options{Width: cfg.ChartWidth, Height: cfg.ChartHeight}
	if res.levelsPNG, err = chart.Levels(derived, chartOpt); err != nil {
		return nil, err
	}
	if res.rollingPNG, err = chart.RollingStats(derived, res.RollCorrShort, res.RollCorrLong,
		res.RollBeta, corr, reg.Slope, chartOpt); err != nil {
		return nil, err
	}
	if res.scatterPNG, err = chart.RegressionScatter(derived, corr, reg, chartOpt); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteOutputs writes the five artifacts into dir atomically, creating the
// directory if needed. Returns the written paths in a stable order.
func WriteOutputs(res *Result, dir string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	files := []struct {
		name string
		data []byte
	}{
		{TableFile, res.table},
		{SummaryFile, []byte(res.summary)},
		{LevelsChartFile, res.levelsPNG},
		{RollingChartFile, res.rollingPNG},
		{ScatterChartFile, res.scatterPNG},
	}
	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := utils.SafeWriteFile(path, f.data); err != nil {
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
