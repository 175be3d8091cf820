package outwriter

import (
	"fmt"
	"time"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// WriteExtractSummary prints the outcome of an extraction run.
func WriteExtractSummary(summary schema.ExtractSummary, cfg *contract.Config, duration time.Duration) {
	if summary.Revisions == 0 {
		return
	}
	fmt.Printf("Extracted %d of %d revisions of %s to %s\n", summary.Written, summary.Revisions, cfg.TargetPath, cfg.OutputDir)
	if summary.Failed > 0 {
		fmt.Printf("Failed to retrieve %d revisions\n", summary.Failed)
	}
	fmt.Printf("Extraction completed in %v\n", duration)
}
