package pricing

import (
	"strings"
	"testing"

	"pcbuild/core/types"
)

func testCatalog() types.Catalog {
	c := types.Catalog{}
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "12400f", Name: "Intel Core i5-12400F", Price: 2690000})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "cosair-16", Name: "Corsair 16GB", Price: 990000, Quantity: 2})
	c.Put(types.CategorySSD, types.ComponentRecord{ID: "ssd-500", Name: "NV2 500GB", Price: 890000, Quantity: -4})
	c.Put(types.CategoryCPUCooler, types.ComponentRecord{ID: "stock", Name: "Stock", Price: 0})
	return c
}

func TestTotal(t *testing.T) {
	c := testCatalog()
	tests := []struct {
		name     string
		sel      types.Selection
		expected int64
	}{
		{"empty", types.Selection{}, 0},
		{"single", types.Selection{types.CategoryCPU: "12400f"}, 2690000},
		{"quantity multiplies", types.Selection{types.CategoryRAM: "cosair-16"}, 1980000},
		{"non-positive quantity counts once", types.Selection{types.CategorySSD: "ssd-500"}, 890000},
		{"missing adds zero", types.Selection{types.CategoryCPU: "12400f", types.CategoryVGA: "gone"}, 2690000},
		{"empty id ignored", types.Selection{types.CategoryCPU: ""}, 0},
		{"full", types.Selection{
			types.CategoryCPU:       "12400f",
			types.CategoryRAM:       "cosair-16",
			types.CategorySSD:       "ssd-500",
			types.CategoryCPUCooler: "stock",
		}, 2690000 + 1980000 + 890000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(c, tt.sel); got != tt.expected {
				t.Errorf("Total = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTotalIsAdditive(t *testing.T) {
	c := testCatalog()
	sel := types.Selection{
		types.CategoryCPU:       "12400f",
		types.CategoryRAM:       "cosair-16",
		types.CategorySSD:       "ssd-500",
		types.CategoryCPUCooler: "stock",
		types.CategoryMonitor:   "missing",
	}

	var sum int64
	for category, id := range sel {
		sum += Total(c, types.Selection{category: id})
	}
	if got := Total(c, sel); got != sum {
		t.Errorf("Total = %d, sum of parts = %d", got, sum)
	}
}

func TestBreakdown(t *testing.T) {
	c := testCatalog()
	bill := Breakdown(c, types.Selection{
		types.CategoryCPUCooler: "stock",
		types.CategoryVGA:       "gone",
		types.CategoryCPU:       "12400f",
	})

	if len(bill.Lines) != 3 {
		t.Fatalf("lines = %d", len(bill.Lines))
	}
	order := []types.Category{types.CategoryCPU, types.CategoryVGA, types.CategoryCPUCooler}
	for i, category := range order {
		if bill.Lines[i].Category != category {
			t.Errorf("line %d = %s, want %s", i, bill.Lines[i].Category, category)
		}
	}
	gone := bill.Lines[1]
	if !gone.Missing || gone.Name != UnknownName || !gone.Amount.IsZero() {
		t.Errorf("missing line = %+v", gone)
	}
	if m := bill.Missing(); len(m) != 1 || m[0] != types.CategoryVGA {
		t.Errorf("Missing() = %v", m)
	}
	if bill.Total.IntPart() != 2690000 {
		t.Errorf("total = %s", bill.Total)
	}
	if bill.Remaining(3).IntPart() != 310000 {
		t.Errorf("remaining = %s", bill.Remaining(3))
	}
}

func TestFormat(t *testing.T) {
	f := DefaultFormatter()
	got := f.Format(15490000)

	if !strings.HasSuffix(got, " ₫") {
		t.Errorf("Format = %q, want currency suffix", got)
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, got)
	if digits != "15490000" {
		t.Errorf("Format = %q lost digits", got)
	}
	if got == "15490000 ₫" {
		t.Errorf("Format = %q is not grouped", got)
	}
	if f.Format(15490000) != got {
		t.Error("Format is not deterministic")
	}
	if plain := NewFormatter("en", "").Format(1234567); plain != "1,234,567" {
		t.Errorf("en format = %q", plain)
	}
}

func TestBudgetAmount(t *testing.T) {
	if got := BudgetAmount(15).IntPart(); got != 15_000_000 {
		t.Errorf("BudgetAmount(15) = %d", got)
	}
}
