// Package flow implements the git-flow hotfix orchestration engine: starting a
// hotfix branch off master, and finishing it by merging into the integration
// branches, tagging the result and cleaning up.
//
// Operations are exposed both as package-level functions taking a repository and
// as methods on the Flow wrapper bound to one repository. The engine sequences
// calls against the internal/git backend and never touches object databases or
// working trees directly.
package flow
