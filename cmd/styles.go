package cmd

import (
	"github.com/msalah0e/easel/internal/ui"
	"github.com/spf13/cobra"
)

func stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Aliases: []string{"ls"},
		Short:   "List registered diagram styles",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			reg := loadRegistry()

			var rows [][]string
			for _, s := range reg.All() {
				variant := s.Builder
				if s.Kind == "figure" {
					variant = s.Palette
				}
				rows = append(rows, []string{s.Name, s.Kind, variant, s.Description})
			}
			ui.Table([]string{"NAME", "KIND", "VARIANT", "DESCRIPTION"}, rows)
		},
	}
}
