package domain

import "time"

// Reason names the classifier rule that flagged an identifier.
type Reason string

const (
	ReasonSingleLetter   Reason = "single_letter"
	ReasonOverusedLetter Reason = "overused_letter"
	ReasonNoiseWord      Reason = "noise_word"
	ReasonNumberedStem   Reason = "numbered_stem"
	ReasonDoubledLetter  Reason = "doubled_letter"
)

// Replacement is one bad name and the spelling assigned to it.
type Replacement struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Index       int    `json:"index"`
	Reason      Reason `json:"reason"`
	Occurrences int    `json:"occurrences"`
}

// FileStatus is the outcome of processing one file.
type FileStatus string

const (
	StatusSkipped   FileStatus = "skipped"   // no language for the extension
	StatusClean     FileStatus = "clean"     // no bad names
	StatusCached    FileStatus = "cached"    // unchanged since it was last clean
	StatusRewritten FileStatus = "rewritten" // output written
	StatusPlanned   FileStatus = "planned"   // dry run, would be rewritten
	StatusFailed    FileStatus = "failed"
)

type FixOptions struct {
	InPlace   bool `json:"in_place"`
	Recursive bool `json:"recursive"`
	Backup    bool `json:"backup"`
	DryRun    bool `json:"dry_run"`
	Workers   int  `json:"workers,omitempty"`
	UseCache  bool `json:"use_cache"`

	// Explicit names the options set on the command line; they win over
	// .namefix.yaml.
	Explicit map[string]bool `json:"-"`
}

type FileResult struct {
	Path         string        `json:"path"`
	Language     Language      `json:"language,omitempty"`
	Status       FileStatus    `json:"status"`
	Replacements []Replacement `json:"replacements,omitempty"`
	OutputPath   string        `json:"output_path,omitempty"`
	BackupPath   string        `json:"backup_path,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// Changed reports whether the file had at least one bad name.
func (r FileResult) Changed() bool {
	return r.Status == StatusRewritten || r.Status == StatusPlanned
}

type RunReport struct {
	Options    FixOptions   `json:"options"`
	Files      []FileResult `json:"files"`
	Timestamp  time.Time    `json:"timestamp"`
	CommitHash string       `json:"commit_hash,omitempty"`
}

// Count returns the number of files with the given status.
func (r *RunReport) Count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// TotalReplacements is the number of distinct renames across all files.
func (r *RunReport) TotalReplacements() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Replacements)
	}
	return n
}

// HasChanges reports whether any file was rewritten or would be.
func (r *RunReport) HasChanges() bool {
	for _, f := range r.Files {
		if f.Changed() {
			return true
		}
	}
	return false
}

// HasFailures reports whether any file failed.
func (r *RunReport) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}
