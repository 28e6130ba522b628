package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/namefix/internal/adapters/outbound/tui"
	"github.com/abdidvp/namefix/internal/domain/catalog"
)

type languageRow struct {
	Language   string   `json:"language"`
	Extensions []string `json:"extensions"`
	Rules      int      `json:"rules"`
}

func newLanguagesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !jsonOutput {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLanguages())
				return nil
			}
			var rows []languageRow
			for _, lang := range catalog.Languages() {
				rows = append(rows, languageRow{
					Language:   string(lang),
					Extensions: lang.Extensions(),
					Rules:      len(catalog.MustFor(lang).Rules),
				})
			}
			return renderJSON(cmd, rows)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
