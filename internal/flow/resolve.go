package flow

import (
	"strings"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
	"hotflow.dev/hotflow/internal/git"
)

// mergeTarget pairs the secondary integration branch with the post-merge hook
// that belongs to it. Exactly one mergeTarget is chosen per finish call: either
// develop or a single (possibly callback-selected) release branch, never both.
type mergeTarget struct {
	branchName string
	postMerge  PostMergeFunc
}

// resolveSecondary determines the secondary integration branch for a finish
// call. Develop is the default; a single release branch overrides it, and with
// several release branches the SelectReleaseBranch callback must pick one.
func resolveSecondary(repo *git.Repository, cfg *git.FlowConfig, opts *FinishOptions) (mergeTarget, error) {
	names, err := repo.BranchNames()
	if err != nil {
		return mergeTarget{}, err
	}

	var candidates []ReleaseCandidate
	for _, name := range names {
		if !strings.HasPrefix(name, cfg.ReleasePrefix) {
			continue
		}
		ref, err := repo.LookupBranch(name)
		if err != nil {
			return mergeTarget{}, err
		}
		candidates = append(candidates, ReleaseCandidate{Name: name, Hash: ref.Hash()})
	}

	switch len(candidates) {
	case 0:
		return mergeTarget{branchName: cfg.Develop, postMerge: opts.PostDevelopMerge}, nil
	case 1:
		return mergeTarget{branchName: candidates[0].Name, postMerge: opts.PostReleaseMerge}, nil
	default:
		if opts.SelectReleaseBranch == nil {
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = c.Name
			}
			return mergeTarget{}, hotflowerrors.NewAmbiguousBranchError(names)
		}
		selected, err := opts.SelectReleaseBranch(candidates)
		if err != nil {
			return mergeTarget{}, err
		}
		return mergeTarget{branchName: selected, postMerge: opts.PostReleaseMerge}, nil
	}
}
