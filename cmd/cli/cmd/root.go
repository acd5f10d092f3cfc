// Package cmd provides the CLI commands for pcbuild.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pcbuild/internal/config"
	"pcbuild/internal/logging"
)

// Version is stamped at build time
var Version = "0.1.0"

var (
	cfgFile   string
	verbose   bool
	remoteURL string
	noColor   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pcbuild",
	Short: "Configure and price PC builds",
	Long: `pcbuild assembles compatible PC builds from a component catalog.

It generates a full parts list from a budget, a CPU brand and a game,
filters each category by what the current selection can take, and prices
the result.

Examples:
  pcbuild generate --budget 15 --brand intel --game valorant
  pcbuild options mainboard --set cpu=13400f
  pcbuild total --set cpu=12400f --set mainboard=H610M-K
  pcbuild catalog set vga rtx3060 --price 6490000`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pcbuild.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "persistence service URL (overrides catalog.remote_url)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if remoteURL != "" {
		cfg.Catalog.RemoteURL = remoteURL
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		logging.InitializeDefault()
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pcbuild version %s\n", Version)
	},
}
