package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feedlens/feedlens/core"
	"github.com/feedlens/feedlens/internal/contract"
)

// scanCmd infers the aggregate field schema of a JSON feed archive.
var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Infer the field schema of all JSON files under a directory.",
	Long: `Recursively discover *.json files, parse each as a top-level array of
objects, and tally how often every field appears with every JSON type.
Per-file tallies are merged into one aggregate schema and printed as a
report sorted by field name.

Files that are unreadable, malformed, or not top-level arrays produce a
warning on stderr and are skipped; they never fail the scan.

Examples:
  # Scan a directory of extracted feed snapshots
  feedlens scan /tmp/feedlens-snapshots

  # Machine-readable output
  feedlens scan ./archive --output json --output-file schema.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: scanSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot scan directory", err)
		}
	},
}
