// Package storetest is a behavior suite every db.Store backend must pass.
package storetest

import (
	"context"
	"errors"
	"testing"

	"pcbuild/core/types"
	"pcbuild/db"
)

// Run exercises a fresh store returned by open
func Run(t *testing.T, open func(t *testing.T) db.Store) {
	t.Run("inventory", func(t *testing.T) { testInventory(t, open(t)) })
	t.Run("templates", func(t *testing.T) { testTemplates(t, open(t)) })
	t.Run("validation", func(t *testing.T) { testValidation(t, open(t)) })
	t.Run("seed", func(t *testing.T) { testSeed(t, open(t)) })
}

func testInventory(t *testing.T, s db.Store) {
	ctx := context.Background()
	defer s.Close()

	inv, err := s.Inventory(ctx)
	if err != nil || len(inv) != 0 {
		t.Fatalf("fresh store inventory = %v, %v", inv, err)
	}

	cooler := types.ComponentRecord{
		ID: "air-x", Name: "Air X", Price: 500000, Quantity: 2,
		Sockets: []string{"LGA1700", "AM5"}, CoolerType: types.CoolerAir, Condition: types.ConditionNew,
	}
	if err := s.UpsertRecord(ctx, types.CategoryCPUCooler, cooler); err != nil {
		t.Fatalf("UpsertRecord: %v", err)
	}
	cooler.Price = 450000
	if err := s.UpsertRecord(ctx, types.CategoryCPUCooler, cooler); err != nil {
		t.Fatalf("UpsertRecord (replace): %v", err)
	}
	if err := s.UpsertRecord(ctx, types.CategoryCPU, types.ComponentRecord{ID: "12400f", Name: "i5", Price: 1, DDR: types.DDR4}); err != nil {
		t.Fatalf("UpsertRecord: %v", err)
	}

	inv, err = s.Inventory(ctx)
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	got, ok := inv.Lookup(types.CategoryCPUCooler, "air-x")
	if !ok {
		t.Fatal("record missing after upsert")
	}
	if got.Price != 450000 || got.Quantity != 2 || len(got.Sockets) != 2 || got.CoolerType != types.CoolerAir {
		t.Errorf("record did not round trip: %+v", got)
	}
	if inv.Len() != 2 {
		t.Errorf("inventory has %d records, want 2", inv.Len())
	}

	if err := s.DeleteRecord(ctx, types.CategoryCPUCooler, "air-x"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if err := s.DeleteRecord(ctx, types.CategoryCPUCooler, "air-x"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	inv, _ = s.Inventory(ctx)
	if _, ok := inv.Lookup(types.CategoryCPUCooler, "air-x"); ok {
		t.Error("record still present after delete")
	}
}

func testTemplates(t *testing.T, s db.Store) {
	ctx := context.Background()
	defer s.Close()

	sel := types.Selection{types.CategoryCPU: "12400f", types.CategoryRAM: "cosair-16"}
	if err := s.UpsertTemplate(ctx, types.BrandIntel, "valorant", "15M", sel); err != nil {
		t.Fatalf("UpsertTemplate: %v", err)
	}
	if err := s.UpsertTemplate(ctx, types.BrandIntel, "valorant", "20M", sel); err != nil {
		t.Fatalf("UpsertTemplate: %v", err)
	}
	replaced := sel.With(types.CategoryCPU, "13400f")
	if err := s.UpsertTemplate(ctx, types.BrandIntel, "valorant", "15M", replaced); err != nil {
		t.Fatalf("UpsertTemplate (replace): %v", err)
	}

	tpl, err := s.Templates(ctx)
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	budgets, ok := tpl.Budgets(types.BrandIntel, "valorant")
	if !ok || len(budgets) != 2 {
		t.Fatalf("budgets = %v", budgets)
	}
	if !budgets["15M"].Equal(replaced) {
		t.Errorf("15M = %v, want %v", budgets["15M"], replaced)
	}

	// game ids are stored lower-cased
	if err := s.UpsertTemplate(ctx, types.BrandAMD, " Apex Legends", "22M", sel); err != nil {
		t.Fatalf("UpsertTemplate (mixed case): %v", err)
	}
	tpl, _ = s.Templates(ctx)
	if _, ok := tpl[types.BrandAMD]["apex legends"]["22M"]; !ok {
		t.Errorf("mixed-case game not normalized: %v", tpl[types.BrandAMD])
	}
	if err := s.DeleteTemplate(ctx, types.BrandAMD, "APEX LEGENDS", "22M"); err != nil {
		t.Errorf("DeleteTemplate (mixed case): %v", err)
	}

	if err := s.DeleteTemplate(ctx, types.BrandIntel, "valorant", "15M"); err != nil {
		t.Fatalf("DeleteTemplate: %v", err)
	}
	if err := s.DeleteTemplate(ctx, types.BrandIntel, "valorant", "15M"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTemplate(ctx, types.BrandAMD, "nothing", "1M"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("delete of unknown triple = %v, want ErrNotFound", err)
	}
}

func testValidation(t *testing.T, s db.Store) {
	ctx := context.Background()
	defer s.Close()

	if err := s.UpsertRecord(ctx, types.Category("gpu"), types.ComponentRecord{ID: "x"}); err == nil {
		t.Error("unknown category accepted")
	}
	if err := s.UpsertRecord(ctx, types.CategoryCPU, types.ComponentRecord{ID: "x", Price: -1}); err == nil {
		t.Error("negative price accepted")
	}
	if err := s.UpsertTemplate(ctx, "via", "valorant", "15M", types.Selection{}); err == nil {
		t.Error("unknown brand accepted")
	}
	if err := s.UpsertTemplate(ctx, types.BrandAMD, "valorant", "cheap", types.Selection{}); err == nil {
		t.Error("bad budget key accepted")
	}
}

func testSeed(t *testing.T, s db.Store) {
	ctx := context.Background()
	defer s.Close()

	n, err := db.Seed(ctx, s)
	if err != nil || n == 0 {
		t.Fatalf("Seed = %d, %v", n, err)
	}
	again, err := db.Seed(ctx, s)
	if err != nil || again != 0 {
		t.Errorf("second Seed = %d, %v; want a no-op", again, err)
	}
	tpl, _ := s.Templates(ctx)
	if _, ok := tpl.Budgets(types.BrandIntel, "valorant"); !ok {
		t.Error("seeded templates missing intel/valorant")
	}
}
