package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// DiscoverJSONFiles recursively enumerates all files with a .json extension
// under root. Walk order is lexical, which keeps diagnostics reproducible even
// though the schema merge itself is order-independent.
func DiscoverJSONFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}
	return files, nil
}

// AnalyzeFile parses one JSON file and tallies per-field type occurrences.
//
// The file must hold a top-level array; each element that is an object
// contributes one count per (field, type) pair, and non-object elements are
// silently ignored. Unreadable, malformed, or non-array files produce a
// warning on stderr and an empty tally so a single bad file never aborts the
// batch.
func AnalyzeFile(path string) schema.FieldTypeCounts {
	counts := make(schema.FieldTypeCounts)

	data, err := os.ReadFile(path)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Could not read %s, skipping", path), err)
		return counts
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		contract.LogWarn(fmt.Sprintf("Could not decode JSON from %s, skipping", path), err)
		return counts
	}

	items, ok := doc.([]any)
	if !ok {
		contract.LogWarn(fmt.Sprintf("File %s is not a JSON array, skipping", path), fmt.Errorf("top-level value is %s", schema.Classify(doc)))
		return counts
	}

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for field, value := range obj {
			counts.Observe(field, schema.Classify(value))
		}
	}
	return counts
}

// ScanTree discovers all JSON files under cfg.ScanDir and analyzes them with a
// worker pool. Per-file tallies are merged into the aggregate single-threaded
// after all workers finish, so no lock guards the accumulator and the result
// does not depend on completion order.
func ScanTree(_ context.Context, cfg *contract.Config) (schema.FieldTypeCounts, int, error) {
	files, err := DiscoverJSONFiles(cfg.ScanDir)
	if err != nil {
		return nil, 0, err
	}

	aggregate := make(schema.FieldTypeCounts)
	if len(files) == 0 {
		return aggregate, 0, nil
	}

	workers := min(cfg.Workers, len(files))
	fileCh := make(chan string, len(files))
	resultCh := make(chan schema.FieldTypeCounts, len(files))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for f := range fileCh {
				resultCh <- AnalyzeFile(f)
			}
		})
	}

	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	wg.Wait()
	close(resultCh)

	// Reduction step: commutative and associative, so collection order is irrelevant.
	for counts := range resultCh {
		aggregate.Merge(counts)
	}

	return aggregate, len(files), nil
}
