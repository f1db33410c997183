package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestBuildConfig_VerboseFromViper(t *testing.T) {
	defer viper.Set("verbose", false)

	viper.Set("verbose", false)
	if cfg := buildConfig(); cfg.Output.Verbose {
		t.Error("expected verbose off by default")
	}

	// The --verbose flag, METANEWSX_VERBOSE, and the config file all
	// resolve through viper; commands read the resulting config field.
	viper.Set("verbose", true)
	if cfg := buildConfig(); !cfg.Output.Verbose {
		t.Error("expected viper verbose setting to flow into the config")
	}
}

func TestBuildConfig_StartsFromDefaults(t *testing.T) {
	cfg := buildConfig()

	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.Concurrency.Workers <= 0 {
		t.Errorf("expected positive default worker count, got %d", cfg.Concurrency.Workers)
	}
}
