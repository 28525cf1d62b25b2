package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/goldhedge-cli/internal/config"
	"github.com/KaramelBytes/goldhedge-cli/internal/pipeline"
)

var (
	// Global flags (wired to config on load)
	cfgFile string
	debug   bool

	// Pipeline flags (override config if set)
	flagCPIPath      string
	flagGoldPath     string
	flagOutputDir    string
	flagShortWindow  int
	flagLongWindow   int
	flagBetaWindow   int
	flagGapTolerance float64

	// Loaded configuration
	cfg *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "goldhedge",
	Short: "Goldhedge: correlate consumer price inflation with gold returns",
	Long: `Goldhedge is a batch CLI that aligns a monthly CPI series with a monthly
gold price series, derives inflation and return rates, and reports the
correlation, OLS hedge ratio, and rolling statistics between them, with
three rendered charts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		applyOverrides(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		res, err := pipeline.Run(pipeline.Config{
			CPIPath:      cfg.CPIPath,
			GoldPath:     cfg.GoldPath,
			OutputDir:    cfg.OutputDir,
			ShortWindow:  cfg.RollingShort,
			LongWindow:   cfg.RollingLong,
			BetaWindow:   cfg.RollingBeta,
			GapTolerance: cfg.GapTolerance,
			ChartWidth:   cfg.ChartWidth,
			ChartHeight:  cfg.ChartHeight,
		})
		if err != nil {
			return err
		}
		written, err := pipeline.WriteOutputs(res, cfg.OutputDir)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Printf("✓ Wrote %s\n", p)
		}
		if debug {
			fmt.Println()
			fmt.Println(res.Summary())
		}
		return nil
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.goldhedge/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print the summary to stdout as well")

	rootCmd.Flags().StringVar(&flagCPIPath, "cpi", "", "CPI series CSV path (overrides config)")
	rootCmd.Flags().StringVar(&flagGoldPath, "gold", "", "gold price CSV path (overrides config)")
	rootCmd.Flags().StringVarP(&flagOutputDir, "out", "o", "", "output directory (overrides config)")
	rootCmd.Flags().IntVar(&flagShortWindow, "short-window", 0, "short rolling window in months (overrides config)")
	rootCmd.Flags().IntVar(&flagLongWindow, "long-window", 0, "long rolling window in months (overrides config)")
	rootCmd.Flags().IntVar(&flagBetaWindow, "beta-window", 0, "rolling beta window in months (overrides config)")
	rootCmd.Flags().Float64Var(&flagGapTolerance, "gap-tolerance", 0, "max fraction of forward-fillable month gaps (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

func applyOverrides(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("cpi") && flagCPIPath != "" {
		cfg.CPIPath = flagCPIPath
	}
	if f.Changed("gold") && flagGoldPath != "" {
		cfg.GoldPath = flagGoldPath
	}
	if f.Changed("out") && flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	// Out-of-range values are carried over as-is so Validate reports them
	// instead of an override being silently dropped.
	if f.Changed("short-window") {
		cfg.RollingShort = flagShortWindow
	}
	if f.Changed("long-window") {
		cfg.RollingLong = flagLongWindow
	}
	if f.Changed("beta-window") {
		cfg.RollingBeta = flagBetaWindow
	}
	if f.Changed("gap-tolerance") {
		cfg.GapTolerance = flagGapTolerance
	}
}
