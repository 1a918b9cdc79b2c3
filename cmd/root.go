package cmd

import (
	"embed"
	"io"

	"github.com/fatih/color"
	"github.com/msalah0e/easel/internal/config"
	"github.com/msalah0e/easel/internal/registry"
	"github.com/msalah0e/easel/internal/ui"
	"github.com/msalah0e/easel/internal/workbench"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var (
	reg        *registry.Registry
	registryFS embed.FS
)

// SetRegistryFS sets the embedded filesystem containing TOML registry files.
func SetRegistryFS(fs embed.FS) {
	registryFS = fs
}

func loadRegistry() *registry.Registry {
	if reg != nil {
		return reg
	}
	r, err := registry.LoadAll(registryFS, "registry")
	if err != nil {
		ui.Bad.Printf("easel: failed to load style registry: %v\n", err)
		return registry.New(nil)
	}
	reg = r
	return reg
}

// newWorkbench builds a workbench from the user's config, writing all
// diagram side effects to out.
func newWorkbench(out io.Writer) *workbench.Workbench {
	cfg := config.Load()
	return workbench.New(out, workbench.Options{
		CacheCapacity: cfg.Cache.Capacity,
		HistoryLimit:  cfg.History.Limit,
	})
}

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "easel — the diagram workbench",
	Long: ui.Brand.Sprint(ui.Easel+" easel") + " — create graphs and figures from one place\n" +
		ui.Subtle.Sprint("Draw, undo, redo, and export diagrams with one command"),
	Version: version + " " + ui.Easel,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !config.Load().UI.Color {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("easel {{ .Version }}\n")

	rootCmd.AddCommand(
		drawCmd(),
		sessionCmd(),
		demoCmd(),
		stylesCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
