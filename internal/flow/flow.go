package flow

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"hotflow.dev/hotflow/internal/git"
)

// Flow binds the hotfix operations to a single repository. It is a thin wrapper
// over the package-level functions; both forms share one implementation.
type Flow struct {
	repo *git.Repository
}

// New creates a Flow bound to the given repository
func New(repo *git.Repository) *Flow {
	return &Flow{repo: repo}
}

// StartHotfix creates and checks out the hotfix branch for version
func (f *Flow) StartHotfix(ctx context.Context, version string) (*plumbing.Reference, error) {
	return StartHotfix(ctx, f.repo, version)
}

// FinishHotfix merges, tags and cleans up the hotfix branch for version
func (f *Flow) FinishHotfix(ctx context.Context, version string, opts *FinishOptions) (*object.Commit, error) {
	return FinishHotfix(ctx, f.repo, version, opts)
}
