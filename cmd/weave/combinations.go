package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tchupp/weave/engine/catalog"
	"github.com/tchupp/weave/internal/assemblyio"
	"github.com/tchupp/weave/internal/cliconfig"
)

var (
	selectFlag  string
	excludeFlag string
)

var combinationsCmd = &cobra.Command{
	Use:   "combinations",
	Short: "List the outfits consistent with the given selections and exclusions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		state := catalog.NewCatalogState(cat)
		outfits, _, err := state.Combinations(
			assemblyio.SplitItems(selectFlag),
			assemblyio.SplitItems(excludeFlag),
		)
		if err != nil {
			return cliconfig.BadRequestErr("listing combinations", err)
		}

		if cfg.Output == "json" {
			return printJSON(outfits)
		}
		for _, outfit := range outfits {
			items := append([]string(nil), outfit...)
			sort.Strings(items)
			fmt.Println(strings.Join(items, ", "))
		}
		return nil
	},
}

func init() {
	combinationsCmd.Flags().StringVar(&selectFlag, "select", "", "comma-separated items to select")
	combinationsCmd.Flags().StringVar(&excludeFlag, "exclude", "", "comma-separated items to exclude")
	optionsCmd.Flags().StringVar(&selectFlag, "select", "", "comma-separated items to select")
	optionsCmd.Flags().StringVar(&excludeFlag, "exclude", "", "comma-separated items to exclude")
}

func loadCatalog() (*catalog.Catalog, error) {
	path, err := requireAssembly()
	if err != nil {
		return nil, err
	}
	assembly, err := assemblyio.Load(path)
	if err != nil {
		return nil, cliconfig.AssemblyErr("loading assembly", err)
	}
	cat, err := assemblyio.Builder(assembly).Build()
	if err != nil {
		return nil, cliconfig.AssemblyErr("compiling catalog", err)
	}
	return cat, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(cmdOut)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
