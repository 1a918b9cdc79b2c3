package cmd

import (
	"os"
	"strings"

	"github.com/msalah0e/easel/internal/ui"
	"github.com/msalah0e/easel/internal/workbench"
	"github.com/spf13/cobra"
)

func drawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <element> <style> <coordinate>",
		Short: "Create a graph or figure",
		Long: "Create a diagram element.\n\n" +
			"  element     Graph or Figure\n" +
			"  style       a registered style, e.g. Bar, Line, CircleColor\n" +
			"  coordinate  an opaque coordinate string, e.g. \"(10,20)\"",
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			element, style, coord := args[0], args[1], args[2]
			reg := loadRegistry()

			if element == workbench.ElementGraph && reg.Get(style) == nil {
				ui.Warn.Printf("easel: unknown graph style %q\n", style)
				ui.Subtle.Printf("  known styles: %s\n", strings.Join(reg.GraphStyles(), ", "))
				os.Exit(1)
			}

			w := newWorkbench(os.Stdout)
			if err := w.CreateDiagram(element, style, coord); err != nil {
				ui.Bad.Printf("easel: %v\n", err)
				os.Exit(1)
			}
		},
	}
}
