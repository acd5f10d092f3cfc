// Package catalog - Component catalog store
// The merged catalog is the baseline dataset with an override layer applied.
// It is rebuilt on every read; neither layer is mutated in place.
package catalog

import (
	"context"

	"pcbuild/core/types"
)

// OverrideSource supplies the mutable override layer
type OverrideSource interface {
	Overrides(ctx context.Context) (types.Overrides, error)
}

// TemplateSource supplies curated configuration templates
type TemplateSource interface {
	Templates(ctx context.Context) (types.ConfigTemplate, error)
}

// Merge layers overrides onto base and returns a new catalog.
// Set patch fields replace the same base fields; unknown ids are added.
// A patch that would break record invariants is ignored.
func Merge(base types.Catalog, overrides types.Overrides) types.Catalog {
	out := base.Clone()
	for category, patches := range overrides {
		if !category.IsValid() {
			continue
		}
		for id, patch := range patches {
			if id == "" {
				continue
			}
			current, ok := out.Lookup(category, id)
			if !ok {
				current = types.ComponentRecord{ID: id}
			}
			merged := patch.Apply(current)
			merged.ID = id
			if merged.Validate() != nil {
				continue
			}
			out.Put(category, merged)
		}
	}
	return out
}

// Store serves merged catalog snapshots
type Store struct {
	base      types.Catalog
	overrides OverrideSource
}

// NewStore creates a store over a base dataset. A nil source means no overrides.
func NewStore(base types.Catalog, overrides OverrideSource) *Store {
	if base == nil {
		base = types.Catalog{}
	}
	return &Store{base: base, overrides: overrides}
}

// Base returns a copy of the base dataset
func (s *Store) Base() types.Catalog {
	return s.base.Clone()
}

// Catalog returns a fresh merged snapshot
func (s *Store) Catalog(ctx context.Context) (types.Catalog, error) {
	if s.overrides == nil {
		return s.base.Clone(), nil
	}
	overrides, err := s.overrides.Overrides(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(s.base, overrides), nil
}

// Lookup resolves one record from a fresh snapshot. A miss is not an error.
func (s *Store) Lookup(ctx context.Context, category types.Category, id string) (types.ComponentRecord, bool, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return types.ComponentRecord{}, false, err
	}
	rec, ok := c.Lookup(category, id)
	return rec, ok, nil
}

// StaticOverrides is an in-memory override layer
type StaticOverrides types.Overrides

// Overrides implements OverrideSource
func (o StaticOverrides) Overrides(context.Context) (types.Overrides, error) {
	out := types.Overrides{}
	for category, patches := range o {
		for id, patch := range patches {
			out.Put(category, id, patch)
		}
	}
	return out, nil
}

// StaticTemplates is an in-memory template source
type StaticTemplates types.ConfigTemplate

// Templates implements TemplateSource
func (t StaticTemplates) Templates(context.Context) (types.ConfigTemplate, error) {
	return types.ConfigTemplate(t).Clone(), nil
}

// RecordOverrides turns a set of full records into an override layer where
// each record replaces every field of its base counterpart
func RecordOverrides(records types.Catalog) types.Overrides {
	out := types.Overrides{}
	for category, entries := range records {
		for id, rec := range entries {
			out.Put(category, id, types.PatchFromRecord(rec))
		}
	}
	return out
}
