package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feedlens/feedlens/core"
	"github.com/feedlens/feedlens/internal/contract"
)

// extractCmd snapshots every historical version of the tracked file.
var extractCmd = &cobra.Command{
	Use:   "extract [repo-path]",
	Short: "Extract every historical version of the tracked file.",
	Long: `Walk the repository history from root to the working revision and write
the tracked file's content at each revision to its own snapshot file,
named {timestamp}_{revision_id}.json.

Revisions are fetched concurrently. A revision whose content cannot be
retrieved is reported and skipped; the remaining revisions still complete
before the command exits non-zero.

Examples:
  # Extract feed.json history from the current jj repository
  feedlens extract

  # Extract from a plain Git repository into a chosen directory
  feedlens extract ~/src/feeds --vcs git --output-dir ./snapshots

  # Track a different file
  feedlens extract --path data/items.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: extractSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExtract(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot extract history", err)
		}
	},
}
