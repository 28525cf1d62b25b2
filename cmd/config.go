package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/goldhedge-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or initialize goldhedge configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("cpi_path: %s\n", cfg.CPIPath)
		fmt.Printf("gold_path: %s\n", cfg.GoldPath)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("rolling_short: %d\n", cfg.RollingShort)
		fmt.Printf("rolling_long: %d\n", cfg.RollingLong)
		fmt.Printf("rolling_beta: %d\n", cfg.RollingBeta)
		fmt.Printf("gap_tolerance: %.3f\n", cfg.GapTolerance)
		fmt.Printf("chart_width: %d\n", cfg.ChartWidth)
		fmt.Printf("chart_height: %d\n", cfg.ChartHeight)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c == nil {
			loaded, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			c = loaded
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Config saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
