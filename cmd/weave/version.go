package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weave version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("weave", version)
		return nil
	},
}
