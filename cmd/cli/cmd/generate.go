// Package cmd - generate command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbuild/core/generator"
	"pcbuild/core/output"
	"pcbuild/internal/config"
	"pcbuild/internal/logging"
)

var (
	outputFormat string
	genBudget    int
	genBrand     string
	genGame      string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a full build from a budget, CPU brand and game",
	Long: `Generate a complete parts list.

A curated template is used when one exists for the brand and game; the
template whose budget is nearest the request wins. Otherwise the build is
synthesized from the catalog.

Examples:
  pcbuild generate --budget 15 --brand intel --game valorant
  pcbuild generate -b 30 --brand amd --game "cyberpunk 2077" --format json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	generateCmd.Flags().IntVarP(&genBudget, "budget", "b", 0, "budget in millions")
	generateCmd.Flags().StringVar(&genBrand, "brand", "", "CPU brand (intel, amd)")
	generateCmd.Flags().StringVarP(&genGame, "game", "g", "", "target game")
	_ = generateCmd.MarkFlagRequired("budget")
	_ = generateCmd.MarkFlagRequired("brand")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()

	brand, err := parseBrand(genBrand)
	if err != nil {
		return err
	}
	req := generator.Request{Budget: genBudget, Brand: brand, Game: genGame}
	if err := req.Validate(); err != nil {
		return err
	}

	formatter, err := formatterFor(cfg, outputFormat)
	if err != nil {
		return err
	}

	gen, c, err := openSource(cfg).generator(ctx, cfg)
	if err != nil {
		return err
	}
	res, err := gen.Generate(req)
	if err != nil {
		return err
	}
	logging.Debug("Generated build",
		logging.Budget(req.Budget),
		zap.String("source", string(res.Source)),
		zap.String("template", res.TemplateKey),
	)

	return formatter.RenderReport(cmd.OutOrStdout(), output.NewReport(c, req, res))
}
