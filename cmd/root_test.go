package cmd

import (
	"testing"

	cfgpkg "github.com/KaramelBytes/goldhedge-cli/internal/config"
)

func baseSettings() *cfgpkg.Settings {
	return &cfgpkg.Settings{
		CPIPath:      "cpi.csv",
		GoldPath:     "gold.csv",
		OutputDir:    ".",
		RollingShort: 12,
		RollingLong:  24,
		RollingBeta:  12,
		GapTolerance: 0.02,
	}
}

// resetPipelineFlags clears the Changed marks so each test sees only the
// overrides it sets itself.
func resetPipelineFlags(t *testing.T) {
	t.Helper()
	names := []string{"cpi", "gold", "out", "short-window", "long-window", "beta-window", "gap-tolerance"}
	reset := func() {
		for _, name := range names {
			if f := rootCmd.Flags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
	}
	reset()
	t.Cleanup(reset)
}

func TestWindowFlagOverrideIsValidated(t *testing.T) {
	resetPipelineFlags(t)
	cfg = baseSettings()
	if err := rootCmd.Flags().Set("short-window", "1"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyOverrides(rootCmd)
	if cfg.RollingShort != 1 {
		t.Fatalf("override not carried over, got %d", cfg.RollingShort)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("want validation error for a 1-month rolling window")
	}
}

func TestValidFlagOverrides(t *testing.T) {
	resetPipelineFlags(t)
	cfg = baseSettings()
	if err := rootCmd.Flags().Set("beta-window", "6"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := rootCmd.Flags().Set("gap-tolerance", "0.1"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyOverrides(rootCmd)
	if cfg.RollingBeta != 6 {
		t.Errorf("beta window = %d, want 6", cfg.RollingBeta)
	}
	if cfg.GapTolerance != 0.1 {
		t.Errorf("gap tolerance = %g, want 0.1", cfg.GapTolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid overrides rejected: %v", err)
	}
}
