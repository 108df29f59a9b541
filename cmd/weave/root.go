package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tchupp/weave/internal/cliconfig"
)

var (
	cfg        *cliconfig.Config
	configPath string

	cfgFile      string
	assemblyFlag string
	outputFlag   string

	cmdOut = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "weave",
	Short: "Family-of-sets configurator engine",
	Long: `weave compiles a catalog of items, partitioned into mutually exclusive
families, plus exclusion and inclusion rules, into a compact set-algebra
representation, then answers combinations and options queries against it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, configPath, err = cliconfig.LoadConfig(cfgFile)
		if err != nil {
			return cliconfig.ConfigErr("loading configuration", err)
		}
		if assemblyFlag != "" {
			cfg.Assembly = assemblyFlag
		}
		if outputFlag != "" {
			cfg.Output = outputFlag
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

const (
	groupQuery = "query"
	groupUtil  = "util"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover weave.yaml)")
	rootCmd.PersistentFlags().StringVar(&assemblyFlag, "assembly", "", "path to the assembly file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "", "output format: text or json")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Query:"},
		&cobra.Group{ID: groupUtil, Title: "Utility:"},
	)

	buildCmd.GroupID = groupQuery
	combinationsCmd.GroupID = groupQuery
	optionsCmd.GroupID = groupQuery
	configureCmd.GroupID = groupQuery
	rootCmd.AddCommand(buildCmd, combinationsCmd, optionsCmd, configureCmd)

	versionCmd.GroupID = groupUtil
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cliconfig.ExitWithError(err)
	}
}

func requireAssembly() (string, error) {
	if cfg.Assembly == "" {
		return "", cliconfig.BadRequestErr("no assembly configured", nil)
	}
	return cfg.Assembly, nil
}
