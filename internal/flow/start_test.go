package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
	"hotflow.dev/hotflow/internal/flow"
	"hotflow.dev/hotflow/internal/git"
	"hotflow.dev/hotflow/testhelpers"
)

func TestStartHotfix(t *testing.T) {
	ctx := context.Background()

	t.Run("creates branch off master and checks it out", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		masterSHA, err := scene.Repo.GetBranchSHA("master")
		require.NoError(t, err)

		ref, err := flow.StartHotfix(ctx, repo, "1.2.1")
		require.NoError(t, err)
		require.Equal(t, "hotfix/1.2.1", ref.Name().Short())
		require.Equal(t, masterSHA, ref.Hash().String())

		current, err := scene.Repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "hotfix/1.2.1", current)

		headSHA, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, masterSHA, headSHA)
	})

	t.Run("respects configured hotfix prefix", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		require.NoError(t, scene.Repo.SetConfig("gitflow.prefix.hotfix", "fix-"))
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		ref, err := flow.StartHotfix(ctx, repo, "1.2.1")
		require.NoError(t, err)
		require.Equal(t, "fix-1.2.1", ref.Name().Short())
	})

	t.Run("fails without a repository", func(t *testing.T) {
		t.Parallel()
		_, err := flow.StartHotfix(ctx, nil, "1.2.1")
		require.ErrorIs(t, err, hotflowerrors.ErrValidation)
	})

	t.Run("fails without a version", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		_, err := flow.StartHotfix(ctx, repo, "")
		require.ErrorIs(t, err, hotflowerrors.ErrValidation)
	})

	t.Run("fails when master does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		require.NoError(t, scene.Repo.SetConfig("gitflow.branch.master", "trunk"))
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		_, err := flow.StartHotfix(ctx, repo, "1.2.1")
		require.ErrorIs(t, err, hotflowerrors.ErrNotFound)
	})

	t.Run("fails when the hotfix branch already exists", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		require.NoError(t, scene.Repo.CreateBranch("hotfix/1.2.1"))
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		_, err := flow.StartHotfix(ctx, repo, "1.2.1")
		require.ErrorIs(t, err, hotflowerrors.ErrConflict)
	})

	t.Run("instance-bound form shares the implementation", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		ref, err := flow.New(repo).StartHotfix(ctx, "2.0.1")
		require.NoError(t, err)
		require.Equal(t, "hotfix/2.0.1", ref.Name().Short())
	})
}
