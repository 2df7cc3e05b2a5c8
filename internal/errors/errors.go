// Package errors provides sentinel errors and custom error types for the hotflow engine.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrValidation indicates that a required argument was missing or empty
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates that an expected branch, tag or reference is absent
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates an attempt to create a branch or tag that already exists
	ErrConflict = errors.New("already exists")

	// ErrAmbiguousRelease indicates multiple release branch candidates with no
	// selection callback supplied
	ErrAmbiguousRelease = errors.New("ambiguous release branches")
)

// ValidationError represents a missing or invalid argument, reported before any
// repository interaction takes place
type ValidationError struct {
	Argument string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Argument)
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError
func NewValidationError(argument string) *ValidationError {
	return &ValidationError{Argument: argument}
}

// NotFoundError represents an error when a branch, tag or reference does not exist
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.Name)
}

// Is returns true if the target error is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewBranchNotFoundError creates a NotFoundError for a branch
func NewBranchNotFoundError(branchName string) *NotFoundError {
	return &NotFoundError{Kind: "branch", Name: branchName}
}

// ConflictError represents an error when a branch or tag to be created already exists
type ConflictError struct {
	Kind string
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.Name)
}

// Is returns true if the target error is ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewBranchExistsError creates a ConflictError for a branch
func NewBranchExistsError(branchName string) *ConflictError {
	return &ConflictError{Kind: "branch", Name: branchName}
}

// NewTagExistsError creates a ConflictError for a tag
func NewTagExistsError(tagName string) *ConflictError {
	return &ConflictError{Kind: "tag", Name: tagName}
}

// AmbiguousBranchError represents multiple release branch candidates with no way
// to pick one
type AmbiguousBranchError struct {
	Candidates []string
}

func (e *AmbiguousBranchError) Error() string {
	return fmt.Sprintf("multiple release branches found (%s); supply a selection callback",
		strings.Join(e.Candidates, ", "))
}

// Is returns true if the target error is ErrAmbiguousRelease
func (e *AmbiguousBranchError) Is(target error) bool {
	return target == ErrAmbiguousRelease
}

// NewAmbiguousBranchError creates a new AmbiguousBranchError
func NewAmbiguousBranchError(candidates []string) *AmbiguousBranchError {
	return &AmbiguousBranchError{Candidates: candidates}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
