package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository together with a command runner rooted at
// the repository's working directory
type Repository struct {
	*git.Repository
	path   string
	runner *CommandRunner
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
		runner:     NewCommandRunner(absPath),
	}, nil
}

// Path returns the root directory of the repository
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the name of the branch HEAD points at
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// resolveBranchRef resolves a short branch name to its reference
func (r *Repository) resolveBranchRef(name string) (*plumbing.Reference, error) {
	return r.Reference(plumbing.NewBranchReferenceName(name), true)
}
