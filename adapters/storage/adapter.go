// Package storage persists the local override patch-set.
// The file holds {category: {id: partial-record}} and is rewritten whole on
// every change.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pcbuild/core/types"
)

// PatchFile is a file-backed override layer. A missing file is an empty
// patch-set.
type PatchFile struct {
	path string
	mu   sync.Mutex
}

// NewPatchFile creates a patch file store at path
func NewPatchFile(path string) *PatchFile {
	return &PatchFile{path: path}
}

// Path returns the backing file path
func (s *PatchFile) Path() string {
	return s.path
}

// Overrides implements catalog.OverrideSource
func (s *PatchFile) Overrides(ctx context.Context) (types.Overrides, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Put shallow-merges patch into any existing patch for the id
func (s *PatchFile) Put(ctx context.Context, category types.Category, id string, patch types.RecordPatch) error {
	if !category.IsValid() {
		return fmt.Errorf("unknown category %q", category)
	}
	if id == "" {
		return fmt.Errorf("component id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.load()
	if err != nil {
		return err
	}
	if existing, ok := overrides[category][id]; ok {
		patch = existing.Merge(patch)
	}
	overrides.Put(category, id, patch)
	return s.write(overrides)
}

// Delete drops the patch for an id. It reports whether one existed.
func (s *PatchFile) Delete(ctx context.Context, category types.Category, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overrides, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := overrides[category][id]; !ok {
		return false, nil
	}
	delete(overrides[category], id)
	if len(overrides[category]) == 0 {
		delete(overrides, category)
	}
	return true, s.write(overrides)
}

func (s *PatchFile) load() (types.Overrides, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Overrides{}, nil
		}
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}
	overrides := types.Overrides{}
	if len(data) == 0 {
		return overrides, nil
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse overrides %s: %w", s.path, err)
	}
	return overrides, nil
}

func (s *PatchFile) write(overrides types.Overrides) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create overrides directory: %w", err)
	}
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write overrides: %w", err)
	}
	return os.Rename(tmp, s.path)
}
