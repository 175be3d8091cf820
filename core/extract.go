package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// fetchResult carries the outcome of retrieving one revision's snapshot.
// Workers stay pure fetchers; all filesystem writes happen in the coordinator.
type fetchResult struct {
	Revision schema.Revision
	Content  []byte
	Err      error
}

// ExtractHistory lists every revision of the repository and writes the content
// of cfg.TargetPath at each revision to cfg.OutputDir, one file per revision
// named {timestamp}_{revision_id}.json.
//
// A failure to list revisions is fatal. A failure to fetch a single revision
// does not cancel its siblings: the batch runs to completion, successfully
// fetched snapshots are written, and all fetch failures are joined into the
// returned error.
func ExtractHistory(ctx context.Context, cfg *contract.Config, client contract.VCSClient) (schema.ExtractSummary, error) {
	summary := schema.ExtractSummary{}

	revisions, err := client.ListRevisions(ctx, cfg.RepoPath)
	if err != nil {
		return summary, err
	}
	summary.Revisions = len(revisions)
	if len(revisions) == 0 {
		return summary, nil
	}

	results := fetchAllRevisions(ctx, cfg, client, revisions)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output directory %q: %w", cfg.OutputDir, err)
	}

	// Single-threaded write step. Each revision maps to a unique name, so a
	// duplicate name can only come from re-listing the same revision; the
	// later write wins.
	var failures []error
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
			failures = append(failures, fmt.Errorf("revision %s: %w", res.Revision.ID, res.Err))
			continue
		}
		dest := filepath.Join(cfg.OutputDir, res.Revision.SnapshotName())
		if err := os.WriteFile(dest, res.Content, 0o644); err != nil {
			summary.Failed++
			failures = append(failures, fmt.Errorf("revision %s: %w", res.Revision.ID, err))
			continue
		}
		summary.Written++
	}

	return summary, errors.Join(failures...)
}

// fetchAllRevisions retrieves the target file at every revision using a bounded
// worker pool. Workers perform no I/O beyond the VCS call itself.
func fetchAllRevisions(ctx context.Context, cfg *contract.Config, client contract.VCSClient, revisions []schema.Revision) []fetchResult {
	workers := min(cfg.Workers, contract.MaxExtractWorkers, len(revisions))

	revCh := make(chan schema.Revision, len(revisions))
	resultCh := make(chan fetchResult, len(revisions))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for rev := range revCh {
				content, err := client.ShowFile(ctx, cfg.RepoPath, rev.ID, cfg.TargetPath)
				resultCh <- fetchResult{Revision: rev, Content: content, Err: err}
			}
		})
	}

	for _, rev := range revisions {
		revCh <- rev
	}
	close(revCh)

	wg.Wait()
	close(resultCh)

	results := make([]fetchResult, 0, len(revisions))
	for res := range resultCh {
		results = append(results, res)
	}
	return results
}
