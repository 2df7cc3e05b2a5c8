// Package testhelpers provides testing utilities for hotflow, including a scene
// system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil, otherwise
// returns the value. Useful for test setup code where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local
// branches, order-insensitively.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectTag asserts that an annotated tag exists and points at the expected commit
func ExpectTag(t *testing.T, repo *GitRepo, tagName, expectedSHA string) {
	t.Helper()

	require.True(t, repo.TagExists(tagName), "Tag %s does not exist", tagName)

	target, err := repo.GetTagTarget(tagName)
	require.NoError(t, err, "Failed to resolve tag %s", tagName)
	require.Equal(t, expectedSHA, target, "Tag %s points at the wrong commit", tagName)
}

// ExpectMergeCommit asserts that a revision is a merge commit carrying the
// expected message subject.
func ExpectMergeCommit(t *testing.T, repo *GitRepo, rev, expectedMessage string) {
	t.Helper()

	parents, err := repo.GetParentCount(rev)
	require.NoError(t, err, "Failed to count parents of %s", rev)
	require.Equal(t, 2, parents, "%s is not a merge commit", rev)

	message, err := repo.GetCommitMessage(rev)
	require.NoError(t, err, "Failed to read commit message of %s", rev)
	require.Equal(t, expectedMessage, message, "Merge message does not match")
}
