package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tchupp/weave/engine/catalog"
	"github.com/tchupp/weave/internal/assemblyio"
	"github.com/tchupp/weave/internal/cliconfig"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Classify every item as Required, Excluded, Available, or Selected",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		state := catalog.NewCatalogState(cat)
		byFamily, _, err := state.Options(
			assemblyio.SplitItems(selectFlag),
			assemblyio.SplitItems(excludeFlag),
		)
		if err != nil {
			return cliconfig.BadRequestErr("classifying options", err)
		}

		if cfg.Output == "json" {
			return printJSON(byFamily)
		}

		families := make([]string, 0, len(byFamily))
		for family := range byFamily {
			families = append(families, family)
		}
		sort.Strings(families)

		for _, family := range families {
			fmt.Printf("%s:\n", family)
			statuses := byFamily[family]
			sort.Slice(statuses, func(i, j int) bool { return statuses[i].Item < statuses[j].Item })
			for _, status := range statuses {
				fmt.Printf("  %-8s %s\n", status.Kind, status.Item)
			}
		}
		return nil
	},
}
