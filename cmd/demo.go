package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/easel/internal/diagram"
	"github.com/msalah0e/easel/internal/ui"
	"github.com/msalah0e/easel/internal/workbench"
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical workbench walkthrough",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("demo")

			out := os.Stdout
			w := newWorkbench(out)

			steps := []struct{ element, style, coord string }{
				{workbench.ElementGraph, "Line", "(10,20)"},
				{workbench.ElementGraph, "Bar", "(15,30)"},
				{workbench.ElementFigure, "CircleColor", "(5,5)"},
				{workbench.ElementFigure, "SquareBW", "(2,3)"},
			}
			for _, s := range steps {
				if err := w.CreateDiagram(s.element, s.style, s.coord); err != nil {
					ui.Bad.Printf("easel: %v\n", err)
					os.Exit(1)
				}
			}

			w.Undo()
			w.Redo()

			w.Export(diagram.NewGraph(out))
			w.Export(diagram.NewFigure(out))

			fmt.Println()
			ui.Good.Printf("  %s demo complete, %d figure styles cached\n", ui.StatusIcon(true), w.CachedFigures())
		},
	}
}
