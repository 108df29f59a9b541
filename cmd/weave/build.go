package main

import (
	"fmt"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/cobra"

	"github.com/tchupp/weave/internal/assemblyio"
	"github.com/tchupp/weave/internal/cliconfig"
)

var debugFlag bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate an assembly and report the compiled catalog's shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireAssembly()
		if err != nil {
			return err
		}
		assembly, err := assemblyio.Load(path)
		if err != nil {
			return cliconfig.AssemblyErr("loading assembly", err)
		}
		if debugFlag {
			fmt.Println(pretty.Sprint(assembly))
		}
		cat, err := assemblyio.Builder(assembly).Build()
		if err != nil {
			return cliconfig.AssemblyErr("compiling catalog", err)
		}

		fmt.Printf("Families: %d\n", len(cat.Families()))
		for _, family := range cat.Families() {
			fmt.Printf("  - %s\n", family)
		}
		fmt.Printf("Valid outfits: %d\n", cat.Total())
		return nil
	},
}

func init() {
	buildCmd.Flags().BoolVar(&debugFlag, "debug", false, "pretty-print the parsed assembly before compiling")
}
