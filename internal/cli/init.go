package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
	"hotflow.dev/hotflow/internal/git"
	"hotflow.dev/hotflow/internal/output"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		master  string
		develop string
	)

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize hotflow in the current repository",
		Long:         "Writes the gitflow branch names and prefixes to the repository config and creates the develop branch from master when it does not exist. Existing config values are kept.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			cfg, err := repo.FlowConfig()
			if err != nil {
				return err
			}
			if master != "" {
				cfg.Master = master
			}
			if develop != "" {
				cfg.Develop = develop
			}

			// Verify master before writing anything so a failed init leaves
			// the repository config untouched
			masterRef, err := repo.LookupBranch(cfg.Master)
			if err != nil {
				return fmt.Errorf("master branch %s must exist before initializing: %w", cfg.Master, err)
			}

			if err := repo.WriteFlowConfig(cfg); err != nil {
				return err
			}

			splog := newSplog(cmd)
			splog.Info("Master branch set to %s", output.ColorBranchName(cfg.Master, false))
			splog.Info("Develop branch set to %s", output.ColorBranchName(cfg.Develop, false))

			if _, err := repo.LookupBranch(cfg.Develop); err != nil {
				if !errors.Is(err, hotflowerrors.ErrNotFound) {
					return err
				}
				if _, err := repo.CreateBranch(cfg.Develop, masterRef.Hash()); err != nil {
					return err
				}
				splog.Info("Created branch %s", output.ColorBranchName(cfg.Develop, false))
			}

			splog.Info("Hotflow initialized successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&master, "master", "", "The name of the stable branch (default "+git.DefaultMasterBranch+")")
	cmd.Flags().StringVar(&develop, "develop", "", "The name of the development branch (default "+git.DefaultDevelopBranch+")")

	return cmd
}
