package cmd

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pcbuild/adapters/remote"
	"pcbuild/adapters/storage"
	"pcbuild/adapters/tuning"
	"pcbuild/core/catalog"
	"pcbuild/core/generator"
	"pcbuild/core/output"
	"pcbuild/core/pricing"
	"pcbuild/core/types"
	"pcbuild/internal/config"
	"pcbuild/internal/errors"
	"pcbuild/internal/logging"
)

// source is where the CLI reads the catalog and templates from. Exactly one
// of remote and patches is set.
type source struct {
	catalog   *catalog.Store
	templates catalog.TemplateSource
	remote    *remote.Adapter
	patches   *storage.PatchFile
}

func openSource(cfg *config.Config) *source {
	if cfg.Catalog.RemoteURL != "" {
		rc := remote.DefaultConfig(cfg.Catalog.RemoteURL)
		rc.Password = cfg.Catalog.AdminPassword
		rc.Timeout = cfg.Catalog.Timeout()
		client := remote.New(rc, logging.Named("remote"))
		logging.Debug("Using remote catalog", zap.String("url", cfg.Catalog.RemoteURL))
		return &source{
			catalog:   catalog.NewStore(catalog.Baseline(), client),
			templates: client,
			remote:    client,
		}
	}

	patches := storage.NewPatchFile(cfg.Catalog.OverridesPath)
	logging.Debug("Using local catalog", zap.String("overrides", patches.Path()))
	return &source{
		catalog:   catalog.NewStore(catalog.Baseline(), patches),
		templates: catalog.StaticTemplates(catalog.BaselineTemplates()),
		patches:   patches,
	}
}

func (s *source) isRemote() bool {
	return s.remote != nil
}

// generator builds a generator over fresh catalog and template snapshots
func (s *source) generator(ctx context.Context, cfg *config.Config) (*generator.Generator, types.Catalog, error) {
	c, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	t, err := s.templates.Templates(ctx)
	if err != nil {
		return nil, nil, err
	}
	h, err := loadHeuristics(cfg)
	if err != nil {
		return nil, nil, err
	}
	gen := generator.New(c, t,
		generator.WithHeuristics(h),
		generator.WithLogger(logging.Named("generator")),
		generator.WithOffline(cfg.Generator.Offline),
	)
	return gen, c, nil
}

func loadHeuristics(cfg *config.Config) (generator.Heuristics, error) {
	base := generator.DefaultHeuristics()
	if cfg.Generator.HeuristicsPath == "" {
		return base, nil
	}
	return tuning.Load(cfg.Generator.HeuristicsPath, base)
}

func formatterFor(cfg *config.Config, name string) (output.Formatter, error) {
	if name == "" {
		name = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	money := pricing.NewFormatter(cfg.Output.Locale, cfg.Output.CurrencySuffix)
	return output.NewRegistry(money, noColor).Get(format)
}

// parseSelection reads repeated category=id pairs
func parseSelection(pairs []string) (types.Selection, error) {
	sel := types.Selection{}
	for _, pair := range pairs {
		key, id, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Inputf("expected category=id, got %q", pair)
		}
		category, ok := types.ParseCategory(key)
		if !ok {
			return nil, errors.Inputf("unknown category %q", key)
		}
		sel[category] = strings.TrimSpace(id)
	}
	return sel, nil
}

func parseCategory(name string) (types.Category, error) {
	category, ok := types.ParseCategory(name)
	if !ok {
		names := make([]string, len(types.Categories))
		for i, c := range types.Categories {
			names[i] = c.String()
		}
		return "", errors.Inputf("unknown category %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return category, nil
}

func parseBrand(name string) (types.Brand, error) {
	brand, ok := types.ParseBrand(name)
	if !ok {
		return "", errors.Inputf("unknown cpu brand %q (want intel or amd)", name)
	}
	return brand, nil
}

func requireRemote(s *source, what string) error {
	if s.isRemote() {
		return nil
	}
	return errors.Inputf("%s needs a persistence service (set --remote or catalog.remote_url)", what)
}
