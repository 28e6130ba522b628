package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/namefix/internal/domain"
)

const configFileName = ".namefix.yaml"

func newInitCmd() *cobra.Command {
	var (
		languages []string
		inPlace   bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .namefix.yaml configuration file",
		Long:  "Create a .namefix.yaml with the default settings, optionally restricted to some languages.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			for _, name := range languages {
				if _, err := domain.ParseLanguage(name); err != nil {
					return err
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(languages, inPlace)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&languages, "languages", nil, "Only process these languages (e.g. go,python)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Rewrite files in place by default")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .namefix.yaml")

	return cmd
}

func generateConfig(languages []string, inPlace bool) string {
	var b strings.Builder
	b.WriteString("# namefix configuration\n\n")

	if len(languages) > 0 {
		b.WriteString("languages:\n")
		for _, l := range languages {
			fmt.Fprintf(&b, "  - %s\n", l)
		}
	} else {
		b.WriteString("# languages: [go, python]\n")
	}

	fmt.Fprintf(&b, "in_place: %t\n", inPlace)
	fmt.Fprintf(&b, "backup: %t\n", inPlace)
	b.WriteString("recursive: true\n")
	b.WriteString("respect_gitignore: true\n\n")

	b.WriteString(`# workers: 4

# exclude_paths:
#   - generated
#   - third_party
`)
	return b.String()
}
