// Package db defines the persistence service store: inventory records and
// configuration template triples, both last-write-wins.
package db

import (
	"context"
	stderrors "errors"
	"strings"

	"pcbuild/core/catalog"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

// ErrNotFound is returned when a deleted key does not exist
var ErrNotFound = stderrors.New("not found")

// Store persists inventory records and templates
type Store interface {
	// Inventory returns every stored record keyed by category and id
	Inventory(ctx context.Context) (types.Catalog, error)

	// UpsertRecord creates or replaces one record
	UpsertRecord(ctx context.Context, category types.Category, rec types.ComponentRecord) error

	// DeleteRecord removes one record; ErrNotFound if absent
	DeleteRecord(ctx context.Context, category types.Category, id string) error

	// Templates returns every stored template triple
	Templates(ctx context.Context) (types.ConfigTemplate, error)

	// UpsertTemplate creates or replaces one triple
	UpsertTemplate(ctx context.Context, brand types.Brand, game, budgetKey string, sel types.Selection) error

	// DeleteTemplate removes one triple; ErrNotFound if absent
	DeleteTemplate(ctx context.Context, brand types.Brand, game, budgetKey string) error

	// Close releases resources
	Close() error
}

// Overrides adapts a Store's inventory into a catalog override layer
type Overrides struct {
	Store Store
}

// Overrides implements catalog.OverrideSource
func (o Overrides) Overrides(ctx context.Context) (types.Overrides, error) {
	inv, err := o.Store.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.RecordOverrides(inv), nil
}

// ValidateRecord checks an inventory write
func ValidateRecord(category types.Category, rec types.ComponentRecord) error {
	if !category.IsValid() {
		return errors.Inputf("unknown category %q", category)
	}
	if err := rec.Validate(); err != nil {
		return errors.Wrap(errors.TypeInput, "invalid record", err)
	}
	return nil
}

// ValidateTemplateKey checks a template triple key
func ValidateTemplateKey(brand types.Brand, game, budgetKey string) error {
	if !brand.IsValid() {
		return errors.Inputf("unknown cpu brand %q", brand)
	}
	if strings.TrimSpace(game) == "" {
		return errors.Input("game is required")
	}
	if _, ok := types.ParseBudgetKey(budgetKey); !ok {
		return errors.Inputf("invalid budget key %q (want e.g. 15M)", budgetKey)
	}
	return nil
}

// Seed loads the baseline templates into a store that has none
func Seed(ctx context.Context, s Store) (int, error) {
	existing, err := s.Templates(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	n := 0
	for brand, games := range catalog.BaselineTemplates() {
		for game, budgets := range games {
			for key, sel := range budgets {
				if err := s.UpsertTemplate(ctx, brand, game, key, sel); err != nil {
					return n, err
				}
				n++
			}
		}
	}
	return n, nil
}
