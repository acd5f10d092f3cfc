package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pcbuild/core/ui"
	"pcbuild/internal/config"
	"pcbuild/internal/errors"
)

var forceConfig bool

// configCmd manages the CLI config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pcbuild config file",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long: `Write the default settings to the config file (--config or
$HOME/.pcbuild.json). An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !forceConfig {
			return errors.Inputf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return errors.Config("failed to write config", err)
		}
		ui.NewWriter(cmd.OutOrStdout(), noColor).Success("Wrote %s", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}
