package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the run configuration recognized by the pipeline.
type Settings struct {
	CPIPath      string  `mapstructure:"cpi_path" yaml:"cpi_path"`
	GoldPath     string  `mapstructure:"gold_path" yaml:"gold_path"`
	OutputDir    string  `mapstructure:"output_dir" yaml:"output_dir"`
	RollingShort int     `mapstructure:"rolling_short" yaml:"rolling_short"`
	RollingLong  int     `mapstructure:"rolling_long" yaml:"rolling_long"`
	RollingBeta  int     `mapstructure:"rolling_beta" yaml:"rolling_beta"`
	GapTolerance float64 `mapstructure:"gap_tolerance" yaml:"gap_tolerance"`
	ChartWidth   int     `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight  int     `mapstructure:"chart_height" yaml:"chart_height"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.goldhedge/config.yaml, creating the directory if
// necessary.
func Save(c *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".goldhedge")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("GOLDHEDGE")
	v.AutomaticEnv()

	v.SetDefault("cpi_path", "cpi_data.csv")
	v.SetDefault("gold_path", "gold_prices.csv")
	v.SetDefault("output_dir", ".")
	v.SetDefault("rolling_short", 12)
	v.SetDefault("rolling_long", 24)
	v.SetDefault("rolling_beta", 12)
	v.SetDefault("gap_tolerance", 0.02)
	v.SetDefault("chart_width", 1200)
	v.SetDefault("chart_height", 600)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".goldhedge"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Settings
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the cross-field constraints. Callers that mutate a loaded
// Settings (flag overrides) must re-validate before running.
func (c *Settings) Validate() error {
	if c.RollingShort < 2 || c.RollingLong < 2 || c.RollingBeta < 2 {
		return fmt.Errorf("rolling windows must be at least 2 months")
	}
	if c.RollingLong < c.RollingShort {
		return fmt.Errorf("rolling_long (%d) must not be shorter than rolling_short (%d)", c.RollingLong, c.RollingShort)
	}
	if c.GapTolerance < 0 || c.GapTolerance >= 1 {
		return fmt.Errorf("gap_tolerance must be in [0, 1), got %g", c.GapTolerance)
	}
	return nil
}
