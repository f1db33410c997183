package cli

import (
	"fmt"
	"os"

	"github.com/metanewsx/metanewsx/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "metanewsx",
	Short: "MetaNewsX - Heuristic decision-grade briefs from article text",
	Long: `MetaNewsX turns raw article text into a short heuristic brief:
a headline, candidate factual claims, a confidence note, watch items,
and uncertainty flags.

It is a quick heuristic pass for an individual reader, not an analysis
system: no language understanding, no external verification, no state.
Every run is an independent, deterministic pass over the provided text.`,
	// Usage still prints on argument errors; the error itself is
	// reported once by main.
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for MetaNewsX.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("metanewsx v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.metanewsx/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// buildConfig assembles the runtime configuration for a command, layering
// viper-resolved settings (flags, METANEWSX_* env, config file) over the
// defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = viper.GetBool("verbose")
	return cfg
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.metanewsx")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match METANEWSX_*
	viper.SetEnvPrefix("METANEWSX")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
