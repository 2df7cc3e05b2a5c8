package flow

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing/object"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
	"hotflow.dev/hotflow/internal/git"
)

// FinishHotfix reconciles a hotfix branch into the integration branches, tags
// the result and deletes the hotfix branch unless KeepBranch is set.
//
// The pipeline is: resolve branches, merge the hotfix into the secondary branch
// (develop or a release branch), merge it into master, create the annotated tag
// <tagPrefix><version> on the master-side result, then clean up. A merge step is
// skipped entirely, hooks included, when its target branch already points at the
// hotfix commit.
//
// The returned commit is the one produced by the secondary merge, since callers
// primarily want confirmation that the hotfix landed in active development. It
// is nil when that step was skipped, even if the master merge ran.
//
// The pipeline is not transactional: a failure leaves every previously completed
// merge, tag or deletion in place.
func FinishHotfix(ctx context.Context, repo *git.Repository, version string, opts *FinishOptions) (*object.Commit, error) {
	if repo == nil {
		return nil, hotflowerrors.NewValidationError("repository")
	}
	if version == "" {
		return nil, hotflowerrors.NewValidationError("hotfix version")
	}
	if opts == nil {
		opts = &FinishOptions{}
	}

	cfg, err := repo.FlowConfig()
	if err != nil {
		return nil, err
	}

	secondary, err := resolveSecondary(repo, cfg, opts)
	if err != nil {
		return nil, err
	}

	hotfixName := cfg.HotfixPrefix + version

	// Fixed lookup order: secondary, hotfix, master. The hotfix branch must
	// still exist; it is gone once a finish has completed.
	secondaryRef, err := repo.LookupBranch(secondary.branchName)
	if err != nil {
		return nil, err
	}
	hotfixRef, err := repo.LookupBranch(hotfixName)
	if err != nil {
		return nil, err
	}
	masterRef, err := repo.LookupBranch(cfg.Master)
	if err != nil {
		return nil, err
	}

	// A merge target that already points at the hotfix commit cancels that
	// merge step outright: merging a branch into itself is meaningless and must
	// not be attempted.
	cancelSecondaryMerge := secondaryRef.Hash() == hotfixRef.Hash()
	cancelMasterMerge := masterRef.Hash() == hotfixRef.Hash()

	var secondaryResult *object.Commit
	if !cancelSecondaryMerge {
		secondaryResult, err = mergeStep(ctx, repo, secondary.branchName, hotfixName, secondary.postMerge, opts)
		if err != nil {
			return nil, err
		}
	}

	tagTarget := masterRef.Hash()
	if !cancelMasterMerge {
		masterResult, err := mergeStep(ctx, repo, cfg.Master, hotfixName, opts.PostMasterMerge, opts)
		if err != nil {
			return nil, err
		}
		if masterResult != nil {
			tagTarget = masterResult.Hash
		}
	}

	tagName := cfg.VersionTagPrefix + version
	message := opts.Message
	if message == "" {
		message = tagName
	}
	if _, err := repo.CreateAnnotatedTag(tagName, tagTarget, message); err != nil {
		return nil, err
	}

	if !opts.KeepBranch {
		// The hotfix branch may still be checked out when both merges were
		// skipped; move HEAD to master before deleting it.
		if err := repo.CheckoutBranch(ctx, cfg.Master); err != nil {
			return nil, err
		}
		if err := repo.DeleteBranch(ctx, hotfixName); err != nil {
			return nil, err
		}
	}

	return secondaryResult, nil
}

// mergeStep runs one merge with its hooks: before-merge, the merge itself with
// message processing, then the post-merge hook, which may substitute the commit
// used downstream.
func mergeStep(ctx context.Context, repo *git.Repository, target, source string, postMerge PostMergeFunc, opts *FinishOptions) (*object.Commit, error) {
	if opts.BeforeMerge != nil {
		if err := opts.BeforeMerge(target, source); err != nil {
			return nil, err
		}
	}

	commit, err := repo.MergeBranch(ctx, target, source, opts.ProcessMergeMessage)
	if err != nil {
		return nil, err
	}

	if postMerge != nil {
		return postMerge(commit)
	}
	return commit, nil
}
