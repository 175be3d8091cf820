package contract

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/feedlens/feedlens/schema"
)

// GoGitClient implements the VCSClient interface for plain Git repositories
// using go-git, so extraction works without an external binary.
type GoGitClient struct{}

var _ VCSClient = &GoGitClient{} // Compile-time check

// NewGoGitClient creates a new instance of the go-git backed client.
func NewGoGitClient() *GoGitClient {
	return &GoGitClient{}
}

// ListRevisions implements the VCSClient interface. Revisions are walked from
// HEAD; the returned order carries no meaning for callers since every revision
// is processed independently.
func (c *GoGitClient) ListRevisions(_ context.Context, repoPath string) ([]schema.Revision, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", repoPath, err)
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer iter.Close()

	var revisions []schema.Revision
	err = iter.ForEach(func(commit *object.Commit) error {
		revisions = append(revisions, schema.Revision{
			ID:        commit.Hash.String(),
			Timestamp: commit.Author.When.Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk revisions: %w", err)
	}
	return revisions, nil
}

// ShowFile implements the VCSClient interface.
func (c *GoGitClient) ShowFile(_ context.Context, repoPath string, revisionID string, path string) ([]byte, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", repoPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revisionID))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", revisionID, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("get commit %q: %w", revisionID, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get tree for %q: %w", revisionID, err)
	}

	file, err := tree.File(path)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist at revision %q: %w", path, revisionID, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %q at revision %q: %w", path, revisionID, err)
	}
	return []byte(content), nil
}
