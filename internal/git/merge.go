package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// MergeMessageFunc rewrites the auto-generated merge commit message before the
// merge commit is created
type MergeMessageFunc func(message string) string

// DefaultMergeMessage derives the merge commit message for merging source into
// target. The derivation is deterministic and matches the message recorded on
// the resulting commit exactly.
func DefaultMergeMessage(source, target string) string {
	return fmt.Sprintf("Merge branch '%s' into %s", source, target)
}

// MergeBranch merges the source branch into the target branch, producing a merge
// commit. Returns (nil, nil) when the target already contains the source and no
// merge commit is needed. The working tree is left with the target branch
// checked out.
//
// Conflict resolution is not handled here; a conflicting merge surfaces as a
// GitCommandError with the merge left in progress in the working tree.
func (r *Repository) MergeBranch(ctx context.Context, target, source string, messageFn MergeMessageFunc) (*object.Commit, error) {
	sourceCommit, err := r.BranchCommit(source)
	if err != nil {
		return nil, err
	}
	targetCommit, err := r.BranchCommit(target)
	if err != nil {
		return nil, err
	}

	// Nothing to merge when the target already contains the source
	contained, err := sourceCommit.IsAncestor(targetCommit)
	if err != nil {
		return nil, fmt.Errorf("failed to check ancestry of %s and %s: %w", source, target, err)
	}
	if contained {
		return nil, nil
	}

	message := DefaultMergeMessage(source, target)
	if messageFn != nil {
		message = messageFn(message)
	}

	if err := r.CheckoutBranch(ctx, target); err != nil {
		return nil, err
	}
	if _, err := r.runner.Run(ctx, "merge", "--no-ff", "-m", message, source); err != nil {
		return nil, fmt.Errorf("failed to merge %s into %s: %w", source, target, err)
	}

	// The merge moved the target branch; re-resolve it for the resulting commit
	return r.BranchCommit(target)
}
