package cmd

import (
	"github.com/spf13/cobra"

	"pcbuild/core/output"
	"pcbuild/internal/config"
)

var totalBudget int

// totalCmd prices a hand-made selection
var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Price a selection",
	Long: `Price a selection as a bill of materials.

Unknown ids are listed as "unknown component" and priced at zero.

Examples:
  pcbuild total --set cpu=12400f --set mainboard=H610M-K
  pcbuild total --set cpu=12400f --budget 10 --format json`,
	Args: cobra.NoArgs,
	RunE: runTotal,
}

func init() {
	totalCmd.Flags().StringArrayVarP(&selectionPairs, "set", "s", nil, "selected part as category=id (repeatable)")
	totalCmd.Flags().IntVarP(&totalBudget, "budget", "b", 0, "budget in millions to compare against")
	totalCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runTotal(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

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
	return formatter.RenderReport(cmd.OutOrStdout(), output.TotalReport(c, sel, totalBudget))
}
