package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"hotflow.dev/hotflow/internal/flow"
)

// isInteractive reports whether both stdin and stdout are attached to a terminal
func isInteractive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// promptReleaseBranch asks the user to pick one of several release branches
func promptReleaseBranch(candidates []flow.ReleaseCandidate) (string, error) {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	var selected string
	prompt := &survey.Select{
		Message: "Multiple release branches exist. Merge the hotfix into:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
