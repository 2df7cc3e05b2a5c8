package flow

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"hotflow.dev/hotflow/internal/git"
)

// BeforeMergeFunc fires before each merge attempt, receiving the target and
// source branch names. Returning an error aborts the pipeline.
type BeforeMergeFunc func(targetBranch, sourceBranch string) error

// PostMergeFunc fires after a merge with the resulting commit and may return a
// replacement commit for use downstream. The commit is nil when the backend
// reported nothing to merge.
type PostMergeFunc func(commit *object.Commit) (*object.Commit, error)

// ReleaseCandidate identifies one release branch when several exist
type ReleaseCandidate struct {
	Name string
	Hash plumbing.Hash
}

// SelectReleaseBranchFunc resolves ambiguity when multiple release branches
// exist, returning the name of the branch to merge into. Candidates are passed
// in backend enumeration order, which is not guaranteed to be sorted.
type SelectReleaseBranchFunc func(candidates []ReleaseCandidate) (string, error)

// FinishOptions customizes a single FinishHotfix call. The zero value runs the
// default pipeline: merge, tag, delete the hotfix branch.
type FinishOptions struct {
	// KeepBranch skips deletion of the hotfix branch after a successful finish
	KeepBranch bool

	// Message overrides the annotated tag message; defaults to the tag name
	Message string

	// ProcessMergeMessage rewrites the auto-generated merge commit message
	// before each merge commit is created
	ProcessMergeMessage git.MergeMessageFunc

	// BeforeMerge fires before each merge attempt
	BeforeMerge BeforeMergeFunc

	// PostDevelopMerge fires after the merge into develop
	PostDevelopMerge PostMergeFunc

	// PostMasterMerge fires after the merge into master; the commit it returns
	// becomes the tag target
	PostMasterMerge PostMergeFunc

	// PostReleaseMerge fires after the merge into a release branch, when one
	// replaces develop as the secondary integration branch
	PostReleaseMerge PostMergeFunc

	// SelectReleaseBranch resolves ambiguity when multiple release branches
	// exist; without it, finishing with multiple candidates fails with an
	// AmbiguousBranchError
	SelectReleaseBranch SelectReleaseBranchFunc
}
