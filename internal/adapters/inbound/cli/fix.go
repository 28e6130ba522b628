package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/namefix/internal/adapters/outbound/cache"
	"github.com/abdidvp/namefix/internal/adapters/outbound/config"
	"github.com/abdidvp/namefix/internal/adapters/outbound/filestore"
	"github.com/abdidvp/namefix/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/namefix/internal/adapters/outbound/history"
	"github.com/abdidvp/namefix/internal/adapters/outbound/scanner"
	"github.com/abdidvp/namefix/internal/adapters/outbound/tui"
	"github.com/abdidvp/namefix/internal/application"
	"github.com/abdidvp/namefix/internal/domain"
)

// Flags that .namefix.yaml may also set. A flag given on the command line
// wins over the file.
var layeredFlags = []string{"in-place", "backup", "recursive", "workers"}

func newFixCmd() *cobra.Command {
	var (
		inPlace    bool
		recursive  bool
		backup     bool
		dryRun     bool
		jsonOutput bool
		noCache    bool
		ciMode     bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rename bad variable names",
		Long: "Rewrite every supported source file under the given paths. By default the result goes to <file>.fixed; " +
			"use --in-place to overwrite the originals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.FixOptions{
				InPlace:   inPlace,
				Recursive: recursive,
				Backup:    backup,
				DryRun:    dryRun,
				Workers:   workers,
				UseCache:  !noCache,
				Explicit:  explicitFlags(cmd),
			}
			return runFix(cmd, args, opts, jsonOutput, ciMode)
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Overwrite files instead of writing <file>.fixed")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "Keep <file>.backup when rewriting in place")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report renames without writing anything")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Re-check every file and clear the clean-file cache")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any file needs renaming or failed")
	cmd.Flags().IntVar(&workers, "workers", 0, "Files processed concurrently (default: number of CPUs)")

	return cmd
}

func explicitFlags(cmd *cobra.Command) map[string]bool {
	explicit := make(map[string]bool)
	for _, name := range layeredFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			explicit[name] = true
		}
	}
	return explicit
}

func newService() *application.FixService {
	return application.NewFixService(scanner.New(), filestore.New(), config.New()).
		WithCache(cache.New()).
		WithHistory(history.New()).
		WithGitInfo(gitinfo.New())
}

func runFix(cmd *cobra.Command, paths []string, opts domain.FixOptions, jsonOutput, ciMode bool) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	report, err := newService().Run(cmd.Context(), paths, opts)
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	if jsonOutput {
		if err := renderJSON(cmd, report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	if ciMode && (report.HasChanges() || report.HasFailures()) {
		return fmt.Errorf("%d files need renaming, %d failed",
			report.Count(domain.StatusPlanned)+report.Count(domain.StatusRewritten),
			report.Count(domain.StatusFailed))
	}
	return nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
