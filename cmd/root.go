package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "feedlens",
	Short:              "Extract tracked-file history and analyze JSON feed structure.",
	Long:               `Feedlens snapshots every historical version of a tracked feed file and infers the field schema of JSON feed archives.`,
	Version:            version,
	SilenceErrors:      true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".feedlens") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("FEEDLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("path", contract.DefaultTargetPath)
	viper.SetDefault("output-dir", "")
	viper.SetDefault("vcs", schema.JJBackend)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
}

// sharedSetup reads the config file and unmarshals all resolved values into
// the raw input struct, then runs common validation.
func sharedSetup(args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle the positional argument (which Viper doesn't do).
	if len(args) == 1 {
		input.PathArg = args[0]
	}

	// 4. Run all validation and populate the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// extractSetup wraps sharedSetup for the extract command, resolving the
// optional repository path argument.
func extractSetup(_ *cobra.Command, args []string) error {
	if err := sharedSetup(args); err != nil {
		return err
	}
	return contract.ResolveRepoPath(cfg, input)
}

// scanSetup wraps sharedSetup for the scan command, validating the required
// directory argument.
func scanSetup(_ *cobra.Command, args []string) error {
	if err := sharedSetup(args); err != nil {
		return err
	}
	return contract.ResolveScanDir(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
