package ports

import (
	"context"

	"gallery-service/internal/core/domain"
)

// RepositoryInspector reports the state of a local checkout. A missing
// checkout is not an error: it yields a zero RepoState.
type RepositoryInspector interface {
	Inspect(ctx context.Context, localPath string, branch string) (domain.RepoState, error)
}

// RepositorySyncer clones a source into localPath or brings an existing
// checkout up to date, and reports which of the two happened. A non-empty
// localPath that is not a checkout is never cloned over.
type RepositorySyncer interface {
	Sync(ctx context.Context, src domain.ExhibitSource, localPath string) (domain.SyncAction, error)
}
