package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
)

// LookupBranch returns the local branch reference with the given short name.
// Returns a NotFoundError if the branch does not exist.
func (r *Repository) LookupBranch(name string) (*plumbing.Reference, error) {
	ref, err := r.resolveBranchRef(name)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, hotflowerrors.NewBranchNotFoundError(name)
		}
		return nil, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return ref, nil
}

// BranchCommit returns the commit the named branch currently points at
func (r *Repository) BranchCommit(name string) (*object.Commit, error) {
	ref, err := r.LookupBranch(name)
	if err != nil {
		return nil, err
	}

	commit, err := r.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit for branch %s: %w", name, err)
	}
	return commit, nil
}

// BranchNames returns the short names of all local branches, in the order the
// backend enumerates them. The order is not guaranteed to be sorted.
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// CreateBranch creates a new local branch pointing at the given commit without
// checking it out. Returns a ConflictError if the branch already exists.
func (r *Repository) CreateBranch(name string, hash plumbing.Hash) (*plumbing.Reference, error) {
	refName := plumbing.NewBranchReferenceName(name)

	if _, err := r.Reference(refName, true); err == nil {
		return nil, hotflowerrors.NewBranchExistsError(name)
	}

	ref := plumbing.NewHashReference(refName, hash)
	if err := r.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return ref, nil
}

// CheckoutBranch checks out an existing branch
func (r *Repository) CheckoutBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a local branch
func (r *Repository) DeleteBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "branch", "-D", name)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}
