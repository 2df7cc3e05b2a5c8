package cli

import (
	"github.com/spf13/cobra"

	"hotflow.dev/hotflow/internal/flow"
	"hotflow.dev/hotflow/internal/output"
)

// newHotfixCmd creates the hotfix command group
func newHotfixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotfix",
		Short: "Start and finish hotfix branches",
	}

	cmd.AddCommand(newHotfixStartCmd())
	cmd.AddCommand(newHotfixFinishCmd())

	return cmd
}

// newHotfixStartCmd creates the hotfix start command
func newHotfixStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "start <version>",
		Short:        "Create a hotfix branch off master and check it out",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			ref, err := flow.StartHotfix(cmd.Context(), repo, args[0])
			if err != nil {
				return err
			}

			splog := newSplog(cmd)
			splog.Info("Switched to a new branch %s", output.ColorBranchName(ref.Name().Short(), true))
			splog.Tip("Run 'hotflow hotfix finish %s' once the fix is committed", args[0])
			return nil
		},
	}

	return cmd
}

// newHotfixFinishCmd creates the hotfix finish command
func newHotfixFinishCmd() *cobra.Command {
	var (
		keep    bool
		message string
	)

	cmd := &cobra.Command{
		Use:          "finish <version>",
		Short:        "Merge a hotfix branch into master and develop (or a release branch), tag it and delete it",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			cfg, err := repo.FlowConfig()
			if err != nil {
				return err
			}

			splog := newSplog(cmd)
			splog.Debug("Finishing %s%s against %s", cfg.HotfixPrefix, args[0], cfg.Master)

			opts := &flow.FinishOptions{
				KeepBranch: keep,
				Message:    message,
				BeforeMerge: func(target, source string) error {
					splog.Info("Merging %s into %s",
						output.ColorBranchName(source, false),
						output.ColorBranchName(target, false))
					return nil
				},
			}
			if isInteractive() {
				opts.SelectReleaseBranch = promptReleaseBranch
			}

			commit, err := flow.FinishHotfix(cmd.Context(), repo, args[0], opts)
			if err != nil {
				return err
			}

			if commit != nil {
				splog.Info("Hotfix landed as %s", output.ColorCommit(commit.Hash.String()[:7]))
			} else {
				splog.Warn("Integration branch already contained the hotfix; no merge commit created")
			}
			splog.Info("Created tag %s", output.ColorTagName(cfg.VersionTagPrefix+args[0]))
			if !keep {
				splog.Info("Deleted hotfix branch")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Keep the hotfix branch after finishing")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Tag message (defaults to the tag name)")

	return cmd
}
