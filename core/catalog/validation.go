// Package catalog - Catalog validation
// Reports records and templates the engine cannot reason about.
package catalog

import (
	"fmt"

	"pcbuild/core/inference"
	"pcbuild/core/types"
)

// ValidationRule checks one record of a category
type ValidationRule func(types.Category, types.ComponentRecord) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateRecordInvariants,
		validatePSUWattage,
		validateGPUTier,
		validateCoolerSockets,
	}
}

// Validate checks every record against rules, in category then price order
func Validate(c types.Catalog, rules []ValidationRule) []error {
	var errs []error
	for _, category := range types.Categories {
		for _, rec := range c.Records(category) {
			for _, rule := range rules {
				if err := rule(category, rec); err != nil {
					errs = append(errs, fmt.Errorf("%s:%s: %w", category, rec.ID, err))
				}
			}
		}
	}
	return errs
}

// ValidateTemplates reports template entries pointing at ids the catalog
// does not carry. Such entries still render, as unknown components.
func ValidateTemplates(t types.ConfigTemplate, c types.Catalog) []error {
	var errs []error
	for _, brand := range []types.Brand{types.BrandIntel, types.BrandAMD} {
		for game, budgets := range t[brand] {
			for key, sel := range budgets {
				for _, category := range types.Categories {
					id, ok := sel.Get(category)
					if !ok {
						continue
					}
					if _, found := c.Lookup(category, id); !found {
						errs = append(errs, fmt.Errorf("%s/%s/%s: %s %q not in catalog", brand, game, key, category, id))
					}
				}
			}
		}
	}
	return errs
}

func validateRecordInvariants(_ types.Category, r types.ComponentRecord) error {
	return r.Validate()
}

func validatePSUWattage(category types.Category, r types.ComponentRecord) error {
	if category == types.CategoryPSU && inference.PSUWattage(r) == 0 {
		return fmt.Errorf("psu wattage is unknown")
	}
	return nil
}

func validateGPUTier(category types.Category, r types.ComponentRecord) error {
	if category == types.CategoryVGA && r.Tier < 0 {
		return fmt.Errorf("gpu tier must not be negative")
	}
	return nil
}

func validateCoolerSockets(category types.Category, r types.ComponentRecord) error {
	if category != types.CategoryCPUCooler {
		return nil
	}
	for _, s := range r.Sockets {
		if s == "" {
			return fmt.Errorf("cooler lists an empty socket")
		}
	}
	return nil
}
