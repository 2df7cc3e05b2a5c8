package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"hotflow.dev/hotflow/internal/cli"
	"hotflow.dev/hotflow/testhelpers"
)

// runInDir executes the root command with the given args from inside dir and
// returns the captured output. Commands resolve the repository from the working
// directory, so these tests cannot run in parallel.
func runInDir(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldDir) })

	var buf bytes.Buffer
	rootCmd := cli.NewRootCmd("test", "none", "unknown")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err = rootCmd.Execute()
	return buf.String(), err
}

func TestInitCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	_, err := runInDir(t, scene.Dir, "init")
	require.NoError(t, err)

	// Config written and develop branch created
	value, err := scene.Repo.RunGitCommandAndGetOutput("config", "gitflow.prefix.hotfix")
	require.NoError(t, err)
	require.Equal(t, "hotfix/", value)
	require.True(t, scene.Repo.BranchExists("develop"))

	// Running init again keeps the existing setup
	_, err = runInDir(t, scene.Dir, "init")
	require.NoError(t, err)
}

func TestInitCommandMissingMaster(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})

	_, err := runInDir(t, scene.Dir, "init", "--master", "trunk")
	require.Error(t, err)

	// The failed init wrote nothing to the repository config
	_, err = scene.Repo.RunGitCommandAndGetOutput("config", "gitflow.branch.master")
	require.Error(t, err)
}

func TestHotfixCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)

	_, err := runInDir(t, scene.Dir, "hotfix", "start", "1.0.1")
	require.NoError(t, err)

	current, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "hotfix/1.0.1", current)

	require.NoError(t, scene.Repo.CreateChangeAndCommit("urgent fix", "fix"))

	out, err := runInDir(t, scene.Dir, "hotfix", "finish", "1.0.1", "-m", "emergency fix")
	require.NoError(t, err)
	require.Contains(t, out, "Created tag")

	require.True(t, scene.Repo.TagExists("1.0.1"))
	require.False(t, scene.Repo.BranchExists("hotfix/1.0.1"))

	message, err := scene.Repo.GetTagMessage("1.0.1")
	require.NoError(t, err)
	require.Equal(t, "emergency fix", message)
}

func TestHotfixFinishKeep(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)

	_, err := runInDir(t, scene.Dir, "hotfix", "start", "1.0.2")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("urgent fix", "fix"))

	_, err = runInDir(t, scene.Dir, "hotfix", "finish", "1.0.2", "--keep")
	require.NoError(t, err)

	require.True(t, scene.Repo.BranchExists("hotfix/1.0.2"))
}

func TestHotfixFinishNoNewWork(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicFlowSetup)

	_, err := runInDir(t, scene.Dir, "hotfix", "start", "1.0.3")
	require.NoError(t, err)

	// Finishing without any commits warns instead of merging; the verbose flag
	// surfaces the resolved branch names
	out, err := runInDir(t, scene.Dir, "hotfix", "finish", "1.0.3", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "no merge commit created")
	require.Contains(t, out, "Finishing hotfix/1.0.3 against master")

	require.True(t, scene.Repo.TagExists("1.0.3"))
	require.False(t, scene.Repo.BranchExists("hotfix/1.0.3"))
}
