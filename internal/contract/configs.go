package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/feedlens/feedlens/schema"
)

// Default values for configuration.
const (
	DefaultTargetPath = "feed.json"
	DefaultPrecision  = 2
	// MaxExtractWorkers caps the extractor's concurrency so a deep history
	// does not fan out into thousands of simultaneous VCS invocations.
	MaxExtractWorkers = 50
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DefaultOutputDir returns the default directory extracted snapshots are written to.
func DefaultOutputDir() string {
	return filepath.Join(os.TempDir(), "feedlens-snapshots")
}

// Config holds the runtime configuration for one command invocation.
// This struct remains the "final, validated" config; components receive it
// explicitly instead of reading ambient package state.
type Config struct {
	RepoPath   string            // Repository the extractor reads history from
	TargetPath string            // Tracked file the extractor snapshots
	OutputDir  string            // Directory extracted snapshots are written to
	ScanDir    string            // Directory tree the scanner walks
	Workers    int               // Worker pool size
	Backend    schema.VCSBackend // VCS backend for the extractor
	Output     schema.OutputMode // Report format for the scanner
	OutputFile string            // Optional path to write the report to
	Precision  int               // Decimal precision for percentage columns
	Width      int               // Terminal width override (0 = auto-detect)
	UseColors  bool              // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Positional argument: repo path for extract, scan directory for scan.
	// Set manually from cobra args, so no tag.
	PathArg string

	Path       string `mapstructure:"path"`
	OutputDir  string `mapstructure:"output-dir"`
	VCS        string `mapstructure:"vcs"`
	Workers    int    `mapstructure:"workers"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs and
// populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Backend Validation ---
	cfg.Backend = schema.VCSBackend(strings.ToLower(input.VCS))
	if _, ok := schema.ValidVCSBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid vcs backend '%s'. must be jj or git", input.VCS)
	}

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 4. Precision and Width Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	// --- 5. Color Flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 6. Extractor Paths ---
	if input.Path == "" {
		return fmt.Errorf("target path must not be empty")
	}
	cfg.TargetPath = input.Path
	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir()
	}

	return nil
}

// ResolveRepoPath sets the extractor's repository path from the positional
// argument, defaulting to the current directory.
func ResolveRepoPath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.PathArg
	if searchPath == "" {
		searchPath = "."
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = filepath.Clean(absPath)
	return nil
}

// ResolveScanDir validates the scanner's positional argument and sets ScanDir.
func ResolveScanDir(cfg *Config, input *ConfigRawInput) error {
	info, err := os.Stat(input.PathArg)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid directory", input.PathArg)
	}
	if !info.IsDir() {
		return fmt.Errorf("'%s' is not a valid directory", input.PathArg)
	}
	cfg.ScanDir = input.PathArg
	return nil
}
