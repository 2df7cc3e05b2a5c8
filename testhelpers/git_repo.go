package testhelpers

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using
// 'git init' with master as the initial branch.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=master", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "master")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits and annotated tags)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// runGitCommandAndGetOutput executes a git command and returns its trimmed output
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RunGitCommandAndGetOutput executes a git command and returns its output
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	return r.runGitCommandAndGetOutput(args...)
}

// CreateChange creates a file change in the repository
func (r *GitRepo) CreateChange(textValue string, prefix string) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)

	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return r.runGitCommand("add", filePath)
}

// CreateChangeAndCommit creates a file change and commits it
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CreateBranch creates a new branch without checking it out
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates and checks out a new branch
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// DeleteBranch deletes a branch
func (r *GitRepo) DeleteBranch(name string) error {
	return r.runGitCommand("branch", "-D", name)
}

// CurrentBranchName returns the name of the current branch
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.runGitCommandAndGetOutput("branch", "--show-current")
}

// GetRevision returns the SHA of a revision (branch, tag, or commit reference)
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", rev)
}

// GetBranchSHA returns the SHA of a branch
func (r *GitRepo) GetBranchSHA(branch string) (string, error) {
	return r.GetRevision(branch)
}

// GetCurrentSHA returns the SHA of HEAD
func (r *GitRepo) GetCurrentSHA() (string, error) {
	return r.GetRevision("HEAD")
}

// GetCommitMessage returns the subject line of a revision's commit message
func (r *GitRepo) GetCommitMessage(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("log", "-1", "--format=%s", rev)
}

// GetParentCount returns the number of parents of a revision
func (r *GitRepo) GetParentCount(rev string) (int, error) {
	output, err := r.runGitCommandAndGetOutput("rev-list", "--no-walk", "--parents", rev)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(output)) - 1, nil
}

// GetLocalBranches returns a list of all local branches
func (r *GitRepo) GetLocalBranches() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// BranchExists checks whether a local branch exists
func (r *GitRepo) BranchExists(name string) bool {
	err := r.runGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// TagExists checks whether a tag exists
func (r *GitRepo) TagExists(name string) bool {
	err := r.runGitCommand("show-ref", "--verify", "--quiet", "refs/tags/"+name)
	return err == nil
}

// GetTagTarget returns the SHA of the commit an (annotated) tag points at
func (r *GitRepo) GetTagTarget(name string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", name+"^{commit}")
}

// GetTagMessage returns the message of an annotated tag
func (r *GitRepo) GetTagMessage(name string) (string, error) {
	return r.runGitCommandAndGetOutput("tag", "-l", "--format=%(contents:subject)", name)
}

// IsAncestor checks if the first ref is an ancestor of the second ref.
// git exits with 1 for "not an ancestor"; anything else is a real error.
func (r *GitRepo) IsAncestor(ancestor, descendant string) (bool, error) {
	err := r.runGitCommand("merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}

// SetConfig sets a git config key in the repository
func (r *GitRepo) SetConfig(key, value string) error {
	return r.runGitCommand("config", key, value)
}

// splitLines splits a string by newlines and returns non-empty lines
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
