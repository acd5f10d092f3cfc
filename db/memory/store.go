// Package memory provides an in-process store for tests and demos.
package memory

import (
	"context"
	"sync"

	"pcbuild/core/types"
	"pcbuild/db"
)

// Store keeps inventory and templates in maps
type Store struct {
	mu        sync.RWMutex
	inventory types.Catalog
	templates types.ConfigTemplate
}

// New creates an empty store
func New() *Store {
	return &Store{inventory: types.Catalog{}, templates: types.ConfigTemplate{}}
}

func (s *Store) Inventory(ctx context.Context) (types.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory.Clone(), nil
}

func (s *Store) UpsertRecord(ctx context.Context, category types.Category, rec types.ComponentRecord) error {
	if err := db.ValidateRecord(category, rec); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory.Put(category, rec)
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, category types.Category, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory.Lookup(category, id); !ok {
		return db.ErrNotFound
	}
	delete(s.inventory[category], id)
	if len(s.inventory[category]) == 0 {
		delete(s.inventory, category)
	}
	return nil
}

func (s *Store) Templates(ctx context.Context) (types.ConfigTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates.Clone(), nil
}

func (s *Store) UpsertTemplate(ctx context.Context, brand types.Brand, game, budgetKey string, sel types.Selection) error {
	if err := db.ValidateTemplateKey(brand, game, budgetKey); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates.Put(brand, game, budgetKey, sel)
	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, brand types.Brand, game, budgetKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.templates.Delete(brand, game, budgetKey) {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) Close() error { return nil }
