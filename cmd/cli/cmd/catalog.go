package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbuild/core/types"
	"pcbuild/core/ui"
	"pcbuild/internal/config"
	"pcbuild/internal/errors"
	"pcbuild/internal/logging"
)

var patchFlags struct {
	name       string
	price      int64
	quantity   int
	socket     string
	ddr        string
	brand      string
	warranty   string
	condition  string
	image      string
	tier       int
	wattage    int
	capacityGB int
	sockets    []string
	coolerType string
}

// catalogCmd manages component records
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and override catalog records",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list [category...]",
	Short: "List merged catalog records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		categories := types.Categories
		if len(args) > 0 {
			categories = make([]types.Category, 0, len(args))
			for _, arg := range args {
				category, err := parseCategory(arg)
				if err != nil {
					return err
				}
				categories = append(categories, category)
			}
		}
		formatter, err := formatterFor(cfg, outputFormat)
		if err != nil {
			return err
		}
		c, err := openSource(cfg).catalog.Catalog(cmd.Context())
		if err != nil {
			return err
		}
		return formatter.RenderCatalog(cmd.OutOrStdout(), c, categories)
	},
}

var catalogSetCmd = &cobra.Command{
	Use:   "set <category> <id>",
	Short: "Override fields of a record, or add a new one",
	Long: `Override fields of a catalog record.

Locally only the given fields are stored and merged over the built-in
catalog. Against a persistence service the merged record is written whole.

Examples:
  pcbuild catalog set vga rtx3060 --price 6490000
  pcbuild catalog set psu psu-1000 --name "Seasonic 1000W" --price 4990000 --wattage 1000`,
	Args: cobra.ExactArgs(2),
	RunE: runCatalogSet,
}

var catalogUnsetCmd = &cobra.Command{
	Use:   "unset <category> <id>",
	Short: "Drop the override for a record",
	Args:  cobra.ExactArgs(2),
	RunE:  runCatalogUnset,
}

func init() {
	f := catalogSetCmd.Flags()
	f.StringVar(&patchFlags.name, "name", "", "display name")
	f.Int64Var(&patchFlags.price, "price", 0, "unit price")
	f.IntVar(&patchFlags.quantity, "quantity", 0, "quantity per build")
	f.StringVar(&patchFlags.socket, "socket", "", "socket family (LGA1700, AM5, ...)")
	f.StringVar(&patchFlags.ddr, "ddr", "", "memory generation (DDR4, DDR5)")
	f.StringVar(&patchFlags.brand, "brand", "", "manufacturer")
	f.StringVar(&patchFlags.warranty, "warranty", "", "warranty text")
	f.StringVar(&patchFlags.condition, "condition", "", "NEW or 2ND")
	f.StringVar(&patchFlags.image, "image", "", "image URL")
	f.IntVar(&patchFlags.tier, "tier", 0, "GPU performance tier")
	f.IntVar(&patchFlags.wattage, "wattage", 0, "PSU rated output")
	f.IntVar(&patchFlags.capacityGB, "capacity", 0, "capacity in GB")
	f.StringSliceVar(&patchFlags.sockets, "sockets", nil, "sockets a cooler mounts on")
	f.StringVar(&patchFlags.coolerType, "cooler-type", "", "stock, air or liquid")

	catalogListCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSetCmd)
	catalogCmd.AddCommand(catalogUnsetCmd)
}

// patchFromFlags keeps only the flags given on the command line
func patchFromFlags(cmd *cobra.Command) types.RecordPatch {
	var p types.RecordPatch
	changed := cmd.Flags().Changed
	if changed("name") {
		p.Name = &patchFlags.name
	}
	if changed("price") {
		p.Price = &patchFlags.price
	}
	if changed("quantity") {
		p.Quantity = &patchFlags.quantity
	}
	if changed("socket") {
		p.Socket = &patchFlags.socket
	}
	if changed("ddr") {
		p.DDR = &patchFlags.ddr
	}
	if changed("brand") {
		p.Brand = &patchFlags.brand
	}
	if changed("warranty") {
		p.Warranty = &patchFlags.warranty
	}
	if changed("condition") {
		c := types.Condition(patchFlags.condition)
		p.Condition = &c
	}
	if changed("image") {
		p.Image = &patchFlags.image
	}
	if changed("tier") {
		p.Tier = &patchFlags.tier
	}
	if changed("wattage") {
		p.Wattage = &patchFlags.wattage
	}
	if changed("capacity") {
		p.CapacityGB = &patchFlags.capacityGB
	}
	if changed("sockets") {
		p.Sockets = append([]string{}, patchFlags.sockets...)
	}
	if changed("cooler-type") {
		t := types.CoolerType(patchFlags.coolerType)
		p.CoolerType = &t
	}
	return p
}

func runCatalogSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	out := ui.NewWriter(cmd.OutOrStdout(), noColor)

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	id := args[1]
	patch := patchFromFlags(cmd)
	if patch.IsEmpty() {
		return errors.Input("nothing to set: pass at least one field flag")
	}

	src := openSource(cfg)
	if !src.isRemote() {
		if err := src.patches.Put(ctx, category, id, patch); err != nil {
			return errors.Wrap(errors.TypePersistence, "failed to write overrides", err)
		}
		logging.Info("Override stored", logging.Category(category), logging.ComponentID(id), zap.String("file", src.patches.Path()))
		out.Success("Override stored for %s/%s in %s", category, id, src.patches.Path())
		return nil
	}

	base, ok, err := src.catalog.Lookup(ctx, category, id)
	if err != nil {
		return err
	}
	if !ok {
		base = types.ComponentRecord{ID: id}
	}
	rec := patch.Apply(base)
	if err := rec.Validate(); err != nil {
		return errors.Wrap(errors.TypeInput, "invalid record", err)
	}
	if err := src.remote.UpsertRecord(ctx, category, rec); err != nil {
		return err
	}
	out.Success("Record %s/%s saved to the persistence service", category, id)
	return nil
}

func runCatalogUnset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	out := ui.NewWriter(cmd.OutOrStdout(), noColor)

	category, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	src := openSource(cfg)
	if src.isRemote() {
		if err := src.remote.DeleteRecord(ctx, category, id); err != nil {
			return err
		}
		out.Success("Record %s/%s deleted from the persistence service", category, id)
		return nil
	}

	existed, err := src.patches.Delete(ctx, category, id)
	if err != nil {
		return errors.Wrap(errors.TypePersistence, "failed to write overrides", err)
	}
	if !existed {
		out.Warning("No override for %s/%s", category, id)
		return nil
	}
	out.Success("Override for %s/%s removed", category, id)
	return nil
}
