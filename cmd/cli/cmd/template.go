package cmd

import (
	"github.com/spf13/cobra"

	"pcbuild/core/generator"
	"pcbuild/core/types"
	"pcbuild/core/ui"
	"pcbuild/db"
	"pcbuild/internal/config"
	"pcbuild/internal/logging"
)

var (
	tplBrand string
	tplGame  string
)

// templateCmd manages curated configurations
var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"config-template"},
	Short:   "Inspect and publish curated build templates",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates by brand, game and budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		formatter, err := formatterFor(cfg, outputFormat)
		if err != nil {
			return err
		}
		t, err := openSource(cfg).templates.Templates(cmd.Context())
		if err != nil {
			return err
		}
		filtered, err := filterTemplates(t, tplBrand, tplGame)
		if err != nil {
			return err
		}
		return formatter.RenderTemplates(cmd.OutOrStdout(), filtered)
	},
}

var templatePushCmd = &cobra.Command{
	Use:   "push <brand> <game> <budgetKey>",
	Short: "Store a template on the persistence service",
	Long: `Store a curated selection under brand, game and budget key.

Examples:
  pcbuild template push intel valorant 15M --set cpu=12400f --set mainboard=H610M-K`,
	Args: cobra.ExactArgs(3),
	RunE: runTemplatePush,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <brand> <game> <budgetKey>",
	Short: "Remove a template from the persistence service",
	Args:  cobra.ExactArgs(3),
	RunE:  runTemplateDelete,
}

func init() {
	templateListCmd.Flags().StringVar(&tplBrand, "brand", "", "only this CPU brand")
	templateListCmd.Flags().StringVarP(&tplGame, "game", "g", "", "only this game")
	templateListCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	templatePushCmd.Flags().StringArrayVarP(&selectionPairs, "set", "s", nil, "selected part as category=id (repeatable)")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templatePushCmd)
	templateCmd.AddCommand(templateDeleteCmd)
}

func filterTemplates(t types.ConfigTemplate, brandName, game string) (types.ConfigTemplate, error) {
	if brandName == "" && game == "" {
		return t, nil
	}
	var brand types.Brand
	if brandName != "" {
		b, err := parseBrand(brandName)
		if err != nil {
			return nil, err
		}
		brand = b
	}
	game = generator.NormalizeGame(game)

	out := types.ConfigTemplate{}
	for b, games := range t {
		if brand != "" && b != brand {
			continue
		}
		for g, budgets := range games {
			if game != "" && generator.NormalizeGame(g) != game {
				continue
			}
			for key, sel := range budgets {
				out.Put(b, g, key, sel)
			}
		}
	}
	return out, nil
}

func templateArgs(args []string) (types.Brand, string, string, error) {
	brand, err := parseBrand(args[0])
	if err != nil {
		return "", "", "", err
	}
	game := generator.NormalizeGame(args[1])
	if err := db.ValidateTemplateKey(brand, game, args[2]); err != nil {
		return "", "", "", err
	}
	return brand, game, args[2], nil
}

func runTemplatePush(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	out := ui.NewWriter(cmd.OutOrStdout(), noColor)

	src := openSource(cfg)
	if err := requireRemote(src, "template push"); err != nil {
		return err
	}
	brand, game, key, err := templateArgs(args)
	if err != nil {
		return err
	}
	sel, err := parseSelection(selectionPairs)
	if err != nil {
		return err
	}

	c, err := src.catalog.Catalog(ctx)
	if err != nil {
		return err
	}
	for _, category := range types.Categories {
		if id, ok := sel.Get(category); ok {
			if _, found := c.Lookup(category, id); !found {
				out.Warning("%s %q is not in the catalog", category, id)
			}
		}
	}

	if err := src.remote.UpsertTemplate(ctx, brand, game, key, sel); err != nil {
		return err
	}
	logging.Info("Template stored", logging.Budget(mustTier(key)))
	out.Success("Template %s/%s/%s stored", brand, game, key)
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	out := ui.NewWriter(cmd.OutOrStdout(), noColor)

	src := openSource(cfg)
	if err := requireRemote(src, "template delete"); err != nil {
		return err
	}
	brand, game, key, err := templateArgs(args)
	if err != nil {
		return err
	}
	if err := src.remote.DeleteTemplate(ctx, brand, game, key); err != nil {
		return err
	}
	out.Success("Template %s/%s/%s deleted", brand, game, key)
	return nil
}

func mustTier(key string) int {
	tier, _ := types.ParseBudgetKey(key)
	return tier
}
