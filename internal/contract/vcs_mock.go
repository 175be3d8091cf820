package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/feedlens/feedlens/schema"
)

// MockVCSClient is a mock type for the VCSClient interface.
type MockVCSClient struct {
	mock.Mock
}

var _ VCSClient = &MockVCSClient{} // Compile-time check

// ListRevisions implements the VCSClient interface.
func (m *MockVCSClient) ListRevisions(ctx context.Context, repoPath string) ([]schema.Revision, error) {
	ret := m.Called(repoPath)
	revisions, _ := ret.Get(0).([]schema.Revision)
	return revisions, ret.Error(1)
}

// ShowFile implements the VCSClient interface.
func (m *MockVCSClient) ShowFile(ctx context.Context, repoPath string, revisionID string, path string) ([]byte, error) {
	ret := m.Called(repoPath, revisionID, path)
	content, _ := ret.Get(0).([]byte)
	return content, ret.Error(1)
}
