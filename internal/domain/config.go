package domain

import "fmt"

// ProjectConfig holds project-level configuration loaded from .namefix.yaml.
// Pointer fields distinguish "not specified" from false/zero so that explicit
// CLI flags and config values can be layered.
type ProjectConfig struct {
	ExcludePaths     []string `yaml:"exclude_paths"     json:"exclude_paths,omitempty"`
	Languages        []string `yaml:"languages"         json:"languages,omitempty"`
	InPlace          *bool    `yaml:"in_place"          json:"in_place,omitempty"`
	Backup           *bool    `yaml:"backup"            json:"backup,omitempty"`
	Recursive        *bool    `yaml:"recursive"         json:"recursive,omitempty"`
	Workers          *int     `yaml:"workers"           json:"workers,omitempty"`
	RespectGitignore *bool    `yaml:"respect_gitignore" json:"respect_gitignore,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, name := range c.Languages {
		if _, err := ParseLanguage(name); err != nil {
			return fmt.Errorf("%w in languages", err)
		}
	}

	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", *c.Workers)
	}

	for i, p := range c.ExcludePaths {
		if p == "" {
			return fmt.Errorf("exclude_paths[%d] must not be empty", i)
		}
	}

	return nil
}

// Allows reports whether files of language l should be processed.
// An empty Languages list allows everything.
func (c ProjectConfig) Allows(l Language) bool {
	if len(c.Languages) == 0 {
		return true
	}
	for _, name := range c.Languages {
		if name == string(l) {
			return true
		}
	}
	return false
}

// GitignoreEnabled defaults to true.
func (c ProjectConfig) GitignoreEnabled() bool {
	return c.RespectGitignore == nil || *c.RespectGitignore
}

// ApplyDefaults fills options that were not set explicitly on the command
// line from the config. explicit names the flags the user passed.
func (c ProjectConfig) ApplyDefaults(opts FixOptions, explicit map[string]bool) FixOptions {
	if c.InPlace != nil && !explicit["in-place"] {
		opts.InPlace = *c.InPlace
	}
	if c.Backup != nil && !explicit["backup"] {
		opts.Backup = *c.Backup
	}
	if c.Recursive != nil && !explicit["recursive"] {
		opts.Recursive = *c.Recursive
	}
	if c.Workers != nil && !explicit["workers"] {
		opts.Workers = *c.Workers
	}
	return opts
}
