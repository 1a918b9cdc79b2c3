package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/msalah0e/easel/internal/diagram"
	"github.com/msalah0e/easel/internal/ui"
	"github.com/msalah0e/easel/internal/workbench"
	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive drawing session",
		Long: "Start an interactive session. Undo and redo operate on the\n" +
			"commands executed within the session; history is not persisted.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("session")
			fmt.Println(ui.Subtle.Sprint("  type `help` for commands, `quit` to leave"))
			fmt.Println()

			out := os.Stdout
			w := newWorkbench(out)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			prompt := func() { ui.Brand.Print("easel> ") }

			for prompt(); scanner.Scan(); prompt() {
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}

				switch fields[0] {
				case "draw":
					if len(fields) != 4 {
						ui.Warn.Println("usage: draw <element> <style> <coordinate>")
						continue
					}
					if err := w.CreateDiagram(fields[1], fields[2], fields[3]); err != nil {
						ui.Bad.Printf("easel: %v\n", err)
					}

				case "undo":
					if _, ok := w.Undo(); !ok {
						ui.Subtle.Println("nothing to undo")
					}

				case "redo":
					if _, ok := w.Redo(); !ok {
						ui.Subtle.Println("nothing to redo")
					}

				case "history":
					cmds := w.History().Commands()
					if len(cmds) == 0 {
						ui.Subtle.Println("history is empty")
						continue
					}
					var rows [][]string
					for _, c := range cmds {
						rows = append(rows, []string{shortID(c.ID()), c.Label()})
					}
					ui.Table([]string{"ID", "COMMAND"}, rows)

				case "export":
					if len(fields) != 2 {
						ui.Warn.Println("usage: export <Graph|Figure>")
						continue
					}
					var err error
					switch fields[1] {
					case workbench.ElementGraph:
						err = w.Export(diagram.NewGraph(out))
					case workbench.ElementFigure:
						err = w.Export(diagram.NewFigure(out))
					default:
						ui.Warn.Printf("unknown element %q\n", fields[1])
						continue
					}
					if err != nil {
						ui.Bad.Printf("easel: %v\n", err)
					}

				case "styles":
					for _, s := range loadRegistry().All() {
						fmt.Printf("  %s (%s)\n", s.Name, s.Kind)
					}

				case "help":
					fmt.Println("  draw <element> <style> <coordinate>")
					fmt.Println("  undo | redo | history")
					fmt.Println("  export <Graph|Figure>")
					fmt.Println("  styles | quit")

				case "quit", "exit":
					return

				default:
					ui.Warn.Printf("unknown command %q, try `help`\n", fields[0])
				}
			}
		},
	}
}

// shortID trims a command uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
