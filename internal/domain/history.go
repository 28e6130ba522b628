package domain

// RunEntry summarises one applied run for the history log.
type RunEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	Files        int    `json:"files"`
	Rewritten    int    `json:"rewritten"`
	Failed       int    `json:"failed"`
	Replacements int    `json:"replacements"`
}

// EntryFor builds the history entry of a finished run.
func EntryFor(r *RunReport, timestamp string) RunEntry {
	return RunEntry{
		Timestamp:    timestamp,
		CommitHash:   r.CommitHash,
		Files:        len(r.Files),
		Rewritten:    r.Count(StatusRewritten),
		Failed:       r.Count(StatusFailed),
		Replacements: r.TotalReplacements(),
	}
}
