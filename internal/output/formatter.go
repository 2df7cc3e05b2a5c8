package output

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorBranchName colors a branch name, highlighting the one that is checked out
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorTagName colors a tag name
func ColorTagName(tagName string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(tagName)
}

// ColorCommit makes a commit hash dim/gray
func ColorCommit(sha string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(sha)
}
