package cmd

import (
	"github.com/spf13/cobra"

	"pcbuild/core/compat"
	"pcbuild/internal/config"
)

var selectionPairs []string

// optionsCmd lists the compatible choices for one category
var optionsCmd = &cobra.Command{
	Use:   "options <category>",
	Short: "List the compatible options for a category",
	Long: `List the records of a category that fit the current selection.

Mainboards are filtered by the CPU socket, RAM by the mainboard memory type
and coolers by the CPU socket. A category is locked until the part it
depends on is chosen.

Examples:
  pcbuild options cpu
  pcbuild options mainboard --set cpu=13400f
  pcbuild options ram --set cpu=13400f --set mainboard=B760M-D4`,
	Args: cobra.ExactArgs(1),
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().StringArrayVarP(&selectionPairs, "set", "s", nil, "selected part as category=id (repeatable)")
	optionsCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runOptions(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	sel, err := parseSelection(selectionPairs)
	if err != nil {
		return err
	}
	formatter, err := formatterFor(cfg, outputFormat)
	if err != nil {
		return err
	}

	c, err := openSource(cfg).catalog.Catalog(cmd.Context())
	if err != nil {
		return err
	}
	opts := compat.NewResolver(c).Options(category, sel)
	return formatter.RenderOptions(cmd.OutOrStdout(), opts)
}
