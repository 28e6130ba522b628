package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/namefix/internal/domain"
	"github.com/abdidvp/namefix/internal/domain/catalog"
	"github.com/abdidvp/namefix/internal/domain/rewrite"
)

// FixService orchestrates a run:
// load config → expand paths → per file: resolve language → read → rewrite → dispose.
type FixService struct {
	scanner      domain.SourceScanner
	store        domain.FileStore
	configLoader domain.ConfigLoader
	cache        domain.CacheStore
	history      domain.RunHistory
	git          domain.GitInfo
}

func NewFixService(
	scanner domain.SourceScanner,
	store domain.FileStore,
	configLoader domain.ConfigLoader,
) *FixService {
	return &FixService{
		scanner:      scanner,
		store:        store,
		configLoader: configLoader,
	}
}

// WithCache enables the clean-file content cache.
func (s *FixService) WithCache(c domain.CacheStore) *FixService {
	s.cache = c
	return s
}

// WithHistory records a summary of every applied run.
func (s *FixService) WithHistory(h domain.RunHistory) *FixService {
	s.history = h
	return s
}

// WithGitInfo tags reports with the current commit.
func (s *FixService) WithGitInfo(g domain.GitInfo) *FixService {
	s.git = g
	return s
}

// ProjectRoot picks the directory holding config, cache and history for a
// set of path arguments: the first argument if it is a directory, else its
// parent, else the working directory.
func ProjectRoot(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
		return paths[0]
	}
	return filepath.Dir(paths[0])
}

// Run processes every supported file reachable from paths. One file's
// failure is recorded in its FileResult and never stops the others; the
// returned error covers only problems that prevent the run from starting,
// or cancellation.
func (s *FixService) Run(ctx context.Context, paths []string, opts domain.FixOptions) (*domain.RunReport, error) {
	root := ProjectRoot(paths)

	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	opts = cfg.ApplyDefaults(opts, opts.Explicit)

	slog.Info("fix.start", "root", root, "paths", len(paths), "dry_run", opts.DryRun, "in_place", opts.InPlace)

	files, early := s.collect(paths, opts, cfg)

	var cache *domain.ContentCache
	switch {
	case s.cache == nil:
	case opts.UseCache:
		cache, err = s.cache.Load(root)
		if err != nil {
			slog.Warn("fix.cache.load.err", "err", err)
		}
		if cache == nil {
			cache = domain.NewContentCache(root)
		}
	default:
		// Opting out drops what earlier runs recorded.
		if err := s.cache.Invalidate(root); err != nil {
			slog.Warn("fix.cache.invalidate.err", "err", err)
		}
	}

	type outcome struct {
		result domain.FileResult
		hash   string
	}
	outcomes := make([]outcome, len(files))

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(files) && len(files) > 0 {
		numWorkers = len(files)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, hash := s.process(path, opts, cfg, cache, root)
			outcomes[i] = outcome{result: res, hash: hash}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		Options:   opts,
		Files:     early,
		Timestamp: time.Now(),
	}
	for _, o := range outcomes {
		report.Files = append(report.Files, o.result)
		if cache == nil {
			continue
		}
		key := cacheKey(root, o.result.Path)
		switch {
		case o.result.Status == domain.StatusClean:
			cache.MarkClean(key, o.hash)
		case o.result.Status == domain.StatusRewritten && opts.InPlace:
			cache.Forget(key)
		}
	}

	if cache != nil && s.cache != nil {
		if err := s.cache.Save(cache); err != nil {
			slog.Warn("fix.cache.save.err", "err", err)
		}
	}

	if s.git != nil && s.git.IsGitRepo(root) {
		if hash, err := s.git.CommitHash(root); err == nil {
			report.CommitHash = hash
		}
	}

	if !opts.DryRun && s.history != nil {
		entry := domain.EntryFor(report, report.Timestamp.Format(time.RFC3339))
		if err := s.history.Save(root, entry); err != nil {
			slog.Warn("fix.history.save.err", "err", err)
		}
	}

	slog.Info("fix.done",
		"files", len(report.Files),
		"rewritten", report.Count(domain.StatusRewritten),
		"planned", report.Count(domain.StatusPlanned),
		"failed", report.Count(domain.StatusFailed),
	)
	return report, nil
}

// FileCandidates lists the names found at binding sites of one file.
type FileCandidates struct {
	Path       string              `json:"path"`
	Language   domain.Language     `json:"language,omitempty"`
	Candidates []rewrite.Candidate `json:"candidates"`
	Error      string              `json:"error,omitempty"`
}

// Inspect reports every candidate name of the supported files reachable
// from paths, good and bad, without rewriting anything.
func (s *FixService) Inspect(paths []string, opts domain.FixOptions) ([]FileCandidates, error) {
	root := ProjectRoot(paths)
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	opts = cfg.ApplyDefaults(opts, opts.Explicit)

	files, early := s.collect(paths, opts, cfg)
	var out []FileCandidates
	for _, r := range early {
		out = append(out, FileCandidates{Path: r.Path, Error: r.Error})
	}
	for _, path := range files {
		lang, ok := domain.LanguageForPath(path)
		if !ok || !cfg.Allows(lang) {
			continue
		}
		fc := FileCandidates{Path: path, Language: lang}
		text, err := s.store.Read(path)
		if err != nil {
			fc.Error = err.Error()
		} else {
			fc.Candidates = rewrite.Candidates(text, catalog.MustFor(lang))
		}
		out = append(out, fc)
	}
	return out, nil
}

// collect expands path arguments into the files to process. Arguments that
// cannot be expanded become failed results straight away.
func (s *FixService) collect(paths []string, opts domain.FixOptions, cfg domain.ProjectConfig) ([]string, []domain.FileResult) {
	var (
		files []string
		early []domain.FileResult
	)
	seen := make(map[string]bool)
	add := func(p string) {
		clean := filepath.Clean(p)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			msg := err.Error()
			if errors.Is(err, os.ErrNotExist) {
				msg = fmt.Sprintf("%s does not exist", p)
			}
			slog.Warn("fix.path.err", "path", p, "err", msg)
			early = append(early, domain.FileResult{Path: p, Status: domain.StatusFailed, Error: msg})
			continue
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		found, err := s.scanner.Scan(p, domain.ScanOptions{
			Recursive:        opts.Recursive,
			ExcludePaths:     cfg.ExcludePaths,
			RespectGitignore: cfg.GitignoreEnabled(),
		})
		if err != nil {
			slog.Warn("fix.scan.err", "path", p, "err", err)
			early = append(early, domain.FileResult{Path: p, Status: domain.StatusFailed, Error: fmt.Sprintf("scanning %s: %v", p, err)})
			continue
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, early
}

// process handles one file as an atomic unit. It returns the content hash
// of the input so clean files can be cached.
func (s *FixService) process(path string, opts domain.FixOptions, cfg domain.ProjectConfig, cache *domain.ContentCache, root string) (domain.FileResult, string) {
	res := domain.FileResult{Path: path}

	lang, ok := domain.LanguageForPath(path)
	if !ok || !cfg.Allows(lang) {
		res.Status = domain.StatusSkipped
		slog.Debug("fix.file", "path", path, "status", res.Status)
		return res, ""
	}
	res.Language = lang

	text, err := s.store.Read(path)
	if err != nil {
		return failed(res, err), ""
	}

	hash := fmt.Sprintf("%016x", xxh3.HashString(text))
	if cache.IsClean(cacheKey(root, path), hash) {
		res.Status = domain.StatusCached
		slog.Debug("fix.file", "path", path, "status", res.Status)
		return res, hash
	}

	out := rewrite.Rewrite(text, catalog.MustFor(lang))
	if !out.Changed() {
		res.Status = domain.StatusClean
		slog.Debug("fix.file", "path", path, "status", res.Status)
		return res, hash
	}
	res.Replacements = out.Replacements

	if opts.DryRun {
		res.Status = domain.StatusPlanned
		slog.Debug("fix.file", "path", path, "status", res.Status, "replacements", len(res.Replacements))
		return res, hash
	}

	target := path + ".fixed"
	if opts.InPlace {
		target = path
		if opts.Backup {
			backup := path + ".backup"
			if err := s.store.Copy(path, backup); err != nil {
				return failed(res, fmt.Errorf("creating backup: %w", err)), hash
			}
			res.BackupPath = backup
		}
	}
	if err := s.store.Write(target, out.Text); err != nil {
		return failed(res, err), hash
	}
	res.OutputPath = target
	res.Status = domain.StatusRewritten
	slog.Debug("fix.file", "path", path, "status", res.Status, "output", target, "replacements", len(res.Replacements))
	return res, hash
}

func failed(res domain.FileResult, err error) domain.FileResult {
	slog.Warn("fix.file.err", "path", res.Path, "err", err)
	res.Status = domain.StatusFailed
	res.Error = err.Error()
	return res
}

func cacheKey(root, path string) string {
	absRoot, err1 := filepath.Abs(root)
	absPath, err2 := filepath.Abs(path)
	if err1 != nil || err2 != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return filepath.ToSlash(absPath)
	}
	return filepath.ToSlash(rel)
}
