package main

import (
	"fmt"

	"drillbook/internal/config"

	"github.com/spf13/cobra"
)

var forceInit bool

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the drillbook config file",
	// The file being managed may not exist or parse yet.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to --config (or the default location)",
	Example: `  drillbook config init
  drillbook config init -c ./drillbook.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if err := config.DefaultConfig().Save(path, forceInit); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return err
}
