package scanner

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/abdidvp/namefix/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"target":       true,
	".namefix":     true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns the files under root whose extension maps to a supported
// language, in lexical order. Paths are joined onto root as given.
// Entries below root that cannot be read are logged and skipped; only an
// unreadable root fails the scan.
func (s *FileScanner) Scan(root string, opts domain.ScanOptions) ([]string, error) {
	extraSkip := make(map[string]bool, len(opts.ExcludePaths))
	for _, p := range opts.ExcludePaths {
		extraSkip[path.Clean(filepath.ToSlash(p))] = true
	}

	var gitignore *ignore.GitIgnore
	if opts.RespectGitignore {
		gitignore = loadGitignore(root)
	}

	var files []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			slog.Warn("scan.entry.err", "path", p, "err", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if !opts.Recursive || skipDir(d.Name(), rel, extraSkip) {
				return filepath.SkipDir
			}
			if gitignore != nil && (gitignore.MatchesPath(rel) || gitignore.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if extraSkip[rel] {
			return nil
		}
		if gitignore != nil && gitignore.MatchesPath(rel) {
			return nil
		}
		if _, ok := domain.LanguageForPath(d.Name()); ok {
			files = append(files, p)
		}
		return nil
	})

	return files, err
}

// skipDir drops hidden directories, built-in noise directories and
// configured excludes (matched by name or by path relative to the root).
func skipDir(name, rel string, extraSkip map[string]bool) bool {
	return strings.HasPrefix(name, ".") || skipDirs[name] || extraSkip[name] || extraSkip[rel]
}

func loadGitignore(root string) *ignore.GitIgnore {
	file := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(file)
	if err != nil {
		return nil
	}
	return gi
}
