package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"pcbuild/core/types"
	"pcbuild/db"
	"pcbuild/db/storetest"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pcbuild.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) db.Store { return openTemp(t) })
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "pcbuild.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.UpsertRecord(ctx, types.CategoryPSU, types.ComponentRecord{ID: "psu-x", Name: "PSU X", Price: 900000, Wattage: 650}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertTemplate(ctx, types.BrandAMD, "cs2", "12M", types.Selection{types.CategoryCPU: "5600"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	inv, err := s.Inventory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rec, ok := inv.Lookup(types.CategoryPSU, "psu-x"); !ok || rec.Wattage != 650 {
		t.Errorf("psu-x after reopen = %+v, %v", rec, ok)
	}
	tpl, err := s.Templates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	budgets, _ := tpl.Budgets(types.BrandAMD, "cs2")
	if budgets["12M"][types.CategoryCPU] != "5600" {
		t.Errorf("template after reopen = %v", budgets)
	}
}
