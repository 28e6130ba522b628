package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/namefix/internal/adapters/outbound/tui"
	"github.com/abdidvp/namefix/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		recursive  bool
		all        bool
		jsonOutput bool
		noCache    bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Report bad variable names without changing files",
		Long:  "Same as fix --dry-run. With --all, list every name found at a binding site and how it was classified.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.FixOptions{
				Recursive: recursive,
				DryRun:    true,
				UseCache:  !noCache,
				Explicit:  explicitFlags(cmd),
			}
			if !all {
				return runFix(cmd, args, opts, jsonOutput, ciMode)
			}

			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := newService().Inspect(args, opts)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, files)
			}
			for _, f := range files {
				if f.Error != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", f.Path, f.Error)
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCandidates(f.Path, f.Candidates))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&all, "all", false, "List every candidate name, good and bad")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Re-check every file and clear the clean-file cache")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any file needs renaming or failed")

	return cmd
}
