package domain

// TextSource reads a whole file as decoded text.
type TextSource interface {
	Read(path string) (string, error)
}

// TextSink persists rewritten text. Copy is used for backups.
type TextSink interface {
	Write(path, text string) error
	Copy(src, dst string) error
}

// FileStore is both ends of file I/O.
type FileStore interface {
	TextSource
	TextSink
}

// SourceScanner lists the supported source files under a directory.
type SourceScanner interface {
	Scan(root string, opts ScanOptions) ([]string, error)
}

// ScanOptions controls directory expansion.
type ScanOptions struct {
	Recursive        bool
	ExcludePaths     []string
	RespectGitignore bool
}

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunHistory records a summary of every applied run.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// CacheStore persists content hashes of files known to be clean.
type CacheStore interface {
	Load(projectPath string) (*ContentCache, error)
	Save(cache *ContentCache) error
	Invalidate(projectPath string) error
}

// GitInfo provides repository metadata.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
