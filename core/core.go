// Package core has the extraction and scanning logic for feedlens.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/internal/outwriter"
)

// ExecuteExtract runs the history extraction and prints a summary.
// It serves as the main entry point for the 'extract' command.
func ExecuteExtract(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewVCSClient(cfg.Backend)

	summary, err := ExtractHistory(ctx, cfg, client)
	if err != nil {
		// Partial progress is still reported before the error surfaces.
		outwriter.WriteExtractSummary(summary, cfg, time.Since(start))
		return err
	}
	if summary.Revisions == 0 {
		fmt.Println("No revisions found in repository history.")
		return nil
	}
	outwriter.WriteExtractSummary(summary, cfg, time.Since(start))
	return nil
}

// ExecuteScan runs the schema scan and prints the aggregated report.
// It serves as the main entry point for the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	aggregate, fileCount, err := ScanTree(ctx, cfg)
	if err != nil {
		return err
	}
	if fileCount == 0 {
		fmt.Println("No JSON files found.")
		return nil
	}
	if len(aggregate) == 0 {
		fmt.Println("Scan complete, but no valid array-of-object structures were found.")
		return nil
	}

	duration := time.Since(start)
	return outwriter.WriteScanReport(aggregate, cfg, fileCount, duration)
}
