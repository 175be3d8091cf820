// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/feedlens/feedlens/schema"
)

// VCSClient defines the version-control operations the extractor needs.
// This allows the extraction logic to be tested without a real jj or git
// installation.
type VCSClient interface {
	// ListRevisions returns every revision reachable from the repository root
	// up to the working revision, annotated with its author timestamp.
	ListRevisions(ctx context.Context, repoPath string) ([]schema.Revision, error)

	// ShowFile returns the raw content of path as it existed at the given
	// revision. The underlying tool's failure is propagated if the path did
	// not exist at that revision.
	ShowFile(ctx context.Context, repoPath string, revisionID string, path string) ([]byte, error)
}

// NewVCSClient returns the client implementation for the configured backend.
func NewVCSClient(backend schema.VCSBackend) VCSClient {
	if backend == schema.GitBackend {
		return NewGoGitClient()
	}
	return NewJJClient()
}
