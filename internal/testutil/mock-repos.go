package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gallery-service/internal/core/domain"
)

// MockExhibitCatalog is a mock of ExhibitCatalog.
type MockExhibitCatalog struct {
	mock.Mock
}

func (m *MockExhibitCatalog) List(ctx context.Context) ([]domain.ExhibitSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExhibitSource), args.Error(1)
}

// MockRepositoryInspector is a mock of RepositoryInspector.
type MockRepositoryInspector struct {
	mock.Mock
}

func (m *MockRepositoryInspector) Inspect(ctx context.Context, localPath string, branch string) (domain.RepoState, error) {
	args := m.Called(ctx, localPath, branch)
	return args.Get(0).(domain.RepoState), args.Error(1)
}

// MockRepositorySyncer is a mock of RepositorySyncer.
type MockRepositorySyncer struct {
	mock.Mock
}

func (m *MockRepositorySyncer) Sync(ctx context.Context, src domain.ExhibitSource, localPath string) (domain.SyncAction, error) {
	args := m.Called(ctx, src, localPath)
	return args.Get(0).(domain.SyncAction), args.Error(1)
}
