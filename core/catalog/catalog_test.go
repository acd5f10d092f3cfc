package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pcbuild/core/types"
)

func TestMergeZeroOverridesRoundTrip(t *testing.T) {
	base := Baseline()

	for _, overrides := range []types.Overrides{nil, {}} {
		merged := Merge(base, overrides)
		if !reflect.DeepEqual(merged, base) {
			t.Fatalf("Merge(base, %v) changed the catalog", overrides)
		}
	}
}

func TestMergeShallowAndAdditive(t *testing.T) {
	base := Baseline()
	price := int64(2500000)
	name := "Intel Core i5-12400F (tray)"
	socket := "AM5"
	quantity := 3

	overrides := types.Overrides{}
	overrides.Put(types.CategoryCPU, "12400f", types.RecordPatch{Price: &price, Name: &name})
	overrides.Put(types.CategoryMainboard, "B650M-new", types.RecordPatch{Name: &name, Socket: &socket, Quantity: &quantity})

	merged := Merge(base, overrides)

	got, ok := merged.Lookup(types.CategoryCPU, "12400f")
	if !ok {
		t.Fatal("expected 12400f in merged catalog")
	}
	if got.Price != price || got.Name != name {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Socket != "LGA1700" || got.DDR != types.DDR4 {
		t.Errorf("unpatched fields should survive: socket=%q ddr=%q", got.Socket, got.DDR)
	}

	added, ok := merged.Lookup(types.CategoryMainboard, "B650M-new")
	if !ok {
		t.Fatal("new ids should be additive")
	}
	if added.ID != "B650M-new" || added.Socket != "AM5" || added.Quantity != 3 {
		t.Errorf("unexpected added record: %+v", added)
	}

	// base untouched
	if rec, _ := base.Lookup(types.CategoryCPU, "12400f"); rec.Price == price {
		t.Error("Merge mutated the base catalog")
	}
	if _, ok := base.Lookup(types.CategoryMainboard, "B650M-new"); ok {
		t.Error("Merge added to the base catalog")
	}
}

func TestMergeIgnoresInvalidPatch(t *testing.T) {
	base := Baseline()
	negative := int64(-1)
	overrides := types.Overrides{}
	overrides.Put(types.CategoryCPU, "12400f", types.RecordPatch{Price: &negative})
	overrides.Put(types.Category("gpu"), "x", types.RecordPatch{Price: &negative})

	merged := Merge(base, overrides)
	want, _ := base.Lookup(types.CategoryCPU, "12400f")
	got, _ := merged.Lookup(types.CategoryCPU, "12400f")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("invalid patch should be ignored, got %+v", got)
	}
	if _, ok := merged[types.Category("gpu")]; ok {
		t.Error("unknown category should be dropped")
	}
}

func TestMergeFullRecordPatch(t *testing.T) {
	base := Baseline()
	remote := types.ComponentRecord{ID: "stock", Name: "Stock cooler", Price: 10}

	overrides := types.Overrides{}
	overrides.Put(types.CategoryCPUCooler, remote.ID, types.PatchFromRecord(remote))
	got, _ := Merge(base, overrides).Lookup(types.CategoryCPUCooler, "stock")

	if got.Price != 10 || got.CoolerType != "" || len(got.Sockets) != 0 {
		t.Errorf("full record should replace every field, got %+v", got)
	}
}

type failingSource struct{}

func (failingSource) Overrides(context.Context) (types.Overrides, error) {
	return nil, errors.New("offline")
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	price := int64(1)
	src := StaticOverrides{types.CategorySSD: {"ssd-500": {Price: &price}}}
	store := NewStore(Baseline(), src)

	rec, ok, err := store.Lookup(ctx, types.CategorySSD, "ssd-500")
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if rec.Price != 1 {
		t.Errorf("price = %d, want 1", rec.Price)
	}

	_, ok, err = store.Lookup(ctx, types.CategorySSD, "missing")
	if err != nil || ok {
		t.Errorf("a miss is not an error: ok=%v err=%v", ok, err)
	}

	if base, _ := store.Base().Lookup(types.CategorySSD, "ssd-500"); base.Price == 1 {
		t.Error("store base should not see overrides")
	}

	if _, err := NewStore(Baseline(), failingSource{}).Catalog(ctx); err == nil {
		t.Error("expected override source error to propagate")
	}
}

func TestBaselineIsValid(t *testing.T) {
	c := Baseline()
	if errs := Validate(c, DefaultValidationRules()); len(errs) > 0 {
		t.Errorf("baseline has validation errors: %v", errs)
	}
	if errs := ValidateTemplates(BaselineTemplates(), c); len(errs) > 0 {
		t.Errorf("baseline templates reference unknown ids: %v", errs)
	}
	for _, category := range types.Categories {
		if len(c[category]) == 0 {
			t.Errorf("baseline has no %s records", category)
		}
	}
}

func TestValidateReportsProblems(t *testing.T) {
	c := types.Catalog{}
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-x", Name: "Mystery PSU"})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "bad", Price: -5})

	errs := Validate(c, DefaultValidationRules())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestStaticTemplatesReturnCopies(t *testing.T) {
	src := StaticTemplates(BaselineTemplates())
	first, _ := src.Templates(context.Background())
	first.Delete(types.BrandIntel, "valorant", "15M")

	second, _ := src.Templates(context.Background())
	if _, ok := second[types.BrandIntel]["valorant"]["15M"]; !ok {
		t.Error("mutating a returned template changed the source")
	}
}
