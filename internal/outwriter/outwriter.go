// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/feedlens/feedlens/internal/contract"
)

// GetMaxFieldWidth calculates the maximum width for field names in table
// output based on terminal width and table configuration.
func GetMaxFieldWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (Total, Label, Type, Count, Share)
	// plus table borders, separators, and padding.
	const baseWidth = 50

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
