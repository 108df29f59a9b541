package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tchupp/weave/engine/catalog"
	"github.com/tchupp/weave/internal/assemblyio"
	"github.com/tchupp/weave/internal/cliconfig"
	"github.com/tchupp/weave/internal/tui"
)

var watchFlag bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively select items and watch options update live",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireAssembly()
		if err != nil {
			return err
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Printf("%d valid outfits across %d families (not a terminal, skipping interactive mode)\n",
				cat.Total(), len(cat.Families()))
			return nil
		}

		load := func() (*catalog.Catalog, error) {
			assembly, err := assemblyio.Load(path)
			if err != nil {
				return nil, cliconfig.AssemblyErr("loading assembly", err)
			}
			return assemblyio.Builder(assembly).Build()
		}

		model, err := tui.New(load)
		if err != nil {
			return cliconfig.AssemblyErr("compiling catalog", err)
		}

		program := tea.NewProgram(model)
		if watchFlag || cfg.TUI.Watch {
			watcher, err := model.Watch(path)
			if err != nil {
				return err
			}
			defer watcher.Close()
		}

		_, err = program.Run()
		return err
	},
}

func init() {
	configureCmd.Flags().BoolVar(&watchFlag, "watch", false, "hot-reload the catalog when the assembly file changes")
}
