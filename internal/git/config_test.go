package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotflow.dev/hotflow/internal/git"
	"hotflow.dev/hotflow/testhelpers"
)

func TestFlowConfig(t *testing.T) {
	t.Run("returns defaults when nothing is configured", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		cfg, err := repo.FlowConfig()
		require.NoError(t, err)
		require.Equal(t, "master", cfg.Master)
		require.Equal(t, "develop", cfg.Develop)
		require.Equal(t, "hotfix/", cfg.HotfixPrefix)
		require.Equal(t, "release/", cfg.ReleasePrefix)
		require.Equal(t, "", cfg.VersionTagPrefix)
	})

	t.Run("reads configured values", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		require.NoError(t, scene.Repo.SetConfig("gitflow.branch.master", "main"))
		require.NoError(t, scene.Repo.SetConfig("gitflow.prefix.hotfix", "fix-"))
		require.NoError(t, scene.Repo.SetConfig("gitflow.prefix.versiontag", "v"))
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		cfg, err := repo.FlowConfig()
		require.NoError(t, err)
		require.Equal(t, "main", cfg.Master)
		require.Equal(t, "develop", cfg.Develop)
		require.Equal(t, "fix-", cfg.HotfixPrefix)
		require.Equal(t, "v", cfg.VersionTagPrefix)
	})

	t.Run("round-trips through WriteFlowConfig", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)
		repo := testhelpers.Must(git.OpenRepository(scene.Dir))

		want := &git.FlowConfig{
			Master:           "main",
			Develop:          "dev",
			HotfixPrefix:     "hotfix-",
			ReleasePrefix:    "rel-",
			VersionTagPrefix: "v",
		}
		require.NoError(t, repo.WriteFlowConfig(want))

		got, err := repo.FlowConfig()
		require.NoError(t, err)
		require.Equal(t, want, got)

		// The values are visible to plain git too
		value, err := scene.Repo.RunGitCommandAndGetOutput("config", "gitflow.prefix.hotfix")
		require.NoError(t, err)
		require.Equal(t, "hotfix-", value)
	})
}
