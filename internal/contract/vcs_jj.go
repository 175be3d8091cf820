package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/feedlens/feedlens/schema"
)

// revisionTemplate renders one "commit_id author_epoch" pair per line.
const revisionTemplate = `concat(commit_id, " ", self.author().timestamp().format("%s"), "\n")`

// JJClient implements the VCSClient interface by executing the local 'jj'
// binary installed on the machine.
type JJClient struct{}

var _ VCSClient = &JJClient{} // Compile-time check

// NewJJClient creates a new instance of the local jj client.
func NewJJClient() *JJClient {
	return &JJClient{}
}

// run executes a jj command against the given repository and returns its stdout.
func (c *JJClient) run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-R", repoPath}, args...)
	cmd := exec.Command("jj", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("jj command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("jj command failed: %w. Ensure jj is installed and available on your PATH", err)
	}
	return out, nil
}

// ListRevisions implements the VCSClient interface.
func (c *JJClient) ListRevisions(ctx context.Context, repoPath string) ([]schema.Revision, error) {
	args := []string{
		"log", "--no-graph",
		"-r", "root()..@",
		"-T", revisionTemplate,
	}
	out, err := c.run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return ParseRevisionLines(string(out))
}

// ShowFile implements the VCSClient interface. The root-file: prefix anchors
// the path at the repository root regardless of the working directory.
func (c *JJClient) ShowFile(ctx context.Context, repoPath string, revisionID string, path string) ([]byte, error) {
	args := []string{
		"file", "show",
		"-r", revisionID,
		fmt.Sprintf("root-file:%q", path),
	}
	return c.run(ctx, repoPath, args...)
}

// ParseRevisionLines parses the "commit_id author_epoch" listing produced by
// the revision log into Revision values. Blank lines are skipped; a malformed
// line is an error since it means the listing layout changed underneath us.
func ParseRevisionLines(out string) ([]schema.Revision, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	revisions := make([]schema.Revision, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed revision line %q: expected 'id timestamp'", line)
		}
		ts, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed timestamp in revision line %q: %w", line, err)
		}
		revisions = append(revisions, schema.Revision{ID: fields[0], Timestamp: ts})
	}
	return revisions, nil
}
