// Package cmd defines the command-line interface for feedlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percentage columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of extractCmd to Viper
	extractCmd.Flags().String("path", contract.DefaultTargetPath, "Tracked file to extract at every revision")
	extractCmd.Flags().String("output-dir", "", "Directory to write snapshots to (default: temp dir)")
	extractCmd.Flags().String("vcs", string(schema.JJBackend), "Version-control backend: jj or git")
	if err := viper.BindPFlags(extractCmd.Flags()); err != nil {
		contract.LogFatal("Error binding extract flags", err)
	}
}
