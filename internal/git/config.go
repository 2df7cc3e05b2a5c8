package git

import (
	"fmt"
)

// Default branch names and prefixes, matching the conventions installed by
// git-flow so repositories initialized by either tool interoperate.
const (
	DefaultMasterBranch     = "master"
	DefaultDevelopBranch    = "develop"
	DefaultHotfixPrefix     = "hotfix/"
	DefaultReleasePrefix    = "release/"
	DefaultVersionTagPrefix = ""
)

// FlowConfig holds the workflow branch names and prefixes read from git config.
// All values are plain strings; an empty VersionTagPrefix means tags carry no
// prefix at all.
type FlowConfig struct {
	Master           string
	Develop          string
	HotfixPrefix     string
	ReleasePrefix    string
	VersionTagPrefix string
}

// DefaultFlowConfig returns a FlowConfig populated with the git-flow defaults
func DefaultFlowConfig() *FlowConfig {
	return &FlowConfig{
		Master:           DefaultMasterBranch,
		Develop:          DefaultDevelopBranch,
		HotfixPrefix:     DefaultHotfixPrefix,
		ReleasePrefix:    DefaultReleasePrefix,
		VersionTagPrefix: DefaultVersionTagPrefix,
	}
}

// FlowConfig reads the gitflow.* keys from the repository config, falling back
// to the defaults for any key that is not set
func (r *Repository) FlowConfig() (*FlowConfig, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}

	section := cfg.Raw.Section("gitflow")
	branch := section.Subsection("branch")
	prefix := section.Subsection("prefix")

	flow := DefaultFlowConfig()
	if v := branch.Option("master"); v != "" {
		flow.Master = v
	}
	if v := branch.Option("develop"); v != "" {
		flow.Develop = v
	}
	if v := prefix.Option("hotfix"); v != "" {
		flow.HotfixPrefix = v
	}
	if v := prefix.Option("release"); v != "" {
		flow.ReleasePrefix = v
	}
	if v := prefix.Option("versiontag"); v != "" {
		flow.VersionTagPrefix = v
	}

	return flow, nil
}

// WriteFlowConfig persists the gitflow.* keys to the repository config
func (r *Repository) WriteFlowConfig(flow *FlowConfig) error {
	cfg, err := r.Config()
	if err != nil {
		return fmt.Errorf("failed to read repository config: %w", err)
	}

	section := cfg.Raw.Section("gitflow")
	section.Subsection("branch").SetOption("master", flow.Master)
	section.Subsection("branch").SetOption("develop", flow.Develop)
	section.Subsection("prefix").SetOption("hotfix", flow.HotfixPrefix)
	section.Subsection("prefix").SetOption("release", flow.ReleasePrefix)
	section.Subsection("prefix").SetOption("versiontag", flow.VersionTagPrefix)

	if err := r.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write repository config: %w", err)
	}
	return nil
}
