package flow

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
	"hotflow.dev/hotflow/internal/git"
)

// StartHotfix creates a new hotfix branch named <hotfixPrefix><version> pointing
// at the master branch's current commit and checks it out. Fails with a
// ValidationError when repo or version is missing, a NotFoundError when the
// master branch does not exist, and a ConflictError when the hotfix branch
// already exists.
func StartHotfix(ctx context.Context, repo *git.Repository, version string) (*plumbing.Reference, error) {
	if repo == nil {
		return nil, hotflowerrors.NewValidationError("repository")
	}
	if version == "" {
		return nil, hotflowerrors.NewValidationError("hotfix version")
	}

	cfg, err := repo.FlowConfig()
	if err != nil {
		return nil, err
	}

	masterRef, err := repo.LookupBranch(cfg.Master)
	if err != nil {
		return nil, err
	}

	branchName := cfg.HotfixPrefix + version
	ref, err := repo.CreateBranch(branchName, masterRef.Hash())
	if err != nil {
		return nil, err
	}

	if err := repo.CheckoutBranch(ctx, branchName); err != nil {
		return nil, err
	}

	return ref, nil
}
