// Package cli wires the hotflow engine into cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotflow.dev/hotflow/internal/git"
	"hotflow.dev/hotflow/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hotflow",
		Short:   "Hotflow automates the git-flow hotfix workflow",
		Long:    `Hotflow automates the git-flow hotfix workflow: branching off master, merging back into master and develop (or an in-progress release), tagging the result and cleaning up.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newHotfixCmd())

	return rootCmd
}

// newSplog builds a splog bound to the command's output writer, honoring the
// persistent verbose flag
func newSplog(cmd *cobra.Command) *output.Splog {
	splog := output.NewSplogWithWriter(cmd.OutOrStdout())
	verbose, _ := cmd.Flags().GetBool("verbose")
	splog.SetVerbose(verbose)
	return splog
}

// openRepository opens the repository containing the current directory
func openRepository() (*git.Repository, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}
