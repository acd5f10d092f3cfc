package generator

import (
	"testing"

	"pcbuild/core/catalog"
	"pcbuild/core/compat"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

func TestNearestBudgetKey(t *testing.T) {
	keys := []string{"30M", "8M", "20M", "15M"}

	tests := []struct {
		tier     int
		expected string
	}{
		{17, "15M"},
		{18, "20M"},
		{25, "20M"}, // equidistant from 20 and 30
		{26, "30M"},
		{1, "8M"},
		{100, "30M"},
		{15, "15M"},
	}
	for _, tt := range tests {
		got, ok := NearestBudgetKey(keys, tt.tier)
		if !ok || got != tt.expected {
			t.Errorf("NearestBudgetKey(%d) = %q, want %q", tt.tier, got, tt.expected)
		}
	}

	if _, ok := NearestBudgetKey([]string{"cheap", ""}, 10); ok {
		t.Error("unparseable keys should yield no match")
	}
}

func TestTemplateReturnedVerbatim(t *testing.T) {
	templates := catalog.BaselineTemplates()
	g := New(catalog.Baseline(), templates)

	res, err := g.Generate(Request{Budget: 15, Brand: types.BrandIntel, Game: "valorant"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceTemplate || res.TemplateKey != "15M" {
		t.Fatalf("expected template 15M, got %s %q", res.Source, res.TemplateKey)
	}
	want := templates[types.BrandIntel]["valorant"]["15M"]
	if !res.Selection.Equal(want) {
		t.Errorf("selection = %v, want %v", res.Selection, want)
	}

	// mutating the result must not touch the template
	res.Selection[types.CategoryCPU] = "changed"
	if templates[types.BrandIntel]["valorant"]["15M"][types.CategoryCPU] == "changed" {
		t.Error("result aliases the template")
	}
}

func TestTemplateGameLookupIgnoresCase(t *testing.T) {
	g := New(catalog.Baseline(), catalog.BaselineTemplates())
	res, err := g.Generate(Request{Budget: 20, Brand: types.BrandAMD, Game: " Valorant "})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceTemplate || res.TemplateKey != "20M" {
		t.Errorf("got %s %q", res.Source, res.TemplateKey)
	}
}

func TestTemplateStoredWithMixedCaseGame(t *testing.T) {
	templates := types.ConfigTemplate{}
	templates.Put(types.BrandIntel, "Valorant", "15M", types.Selection{types.CategoryCPU: "12400f"})

	g := New(catalog.Baseline(), templates)
	for _, game := range []string{"valorant", "VALORANT", "Valorant"} {
		res, err := g.Generate(Request{Budget: 15, Brand: types.BrandIntel, Game: game})
		if err != nil {
			t.Fatalf("Generate(%q): %v", game, err)
		}
		if res.Source != SourceTemplate || res.Selection[types.CategoryCPU] != "12400f" {
			t.Errorf("Generate(%q) = %s %v, want the stored template", game, res.Source, res.Selection)
		}
	}
}

func TestHeuristicFallbackCoversCoreCategories(t *testing.T) {
	c := catalog.Baseline()
	g := New(c, catalog.BaselineTemplates())

	for _, brand := range []types.Brand{types.BrandIntel, types.BrandAMD} {
		for _, tier := range []int{3, 8, 9, 15, 20, 25, 28, 50} {
			res, err := g.Generate(Request{Budget: tier, Brand: brand, Game: "unknown-game"})
			if err != nil {
				t.Fatalf("%s/%d: %v", brand, tier, err)
			}
			if res.Source != SourceHeuristic {
				t.Errorf("%s/%d: source = %s", brand, tier, res.Source)
			}
			for _, category := range []types.Category{
				types.CategoryCPU, types.CategoryMainboard, types.CategoryVGA, types.CategoryRAM,
				types.CategorySSD, types.CategoryPSU, types.CategoryCase, types.CategoryCPUCooler,
			} {
				id, ok := res.Selection.Get(category)
				if !ok {
					t.Errorf("%s/%d: missing %s", brand, tier, category)
					continue
				}
				if _, found := c.Lookup(category, id); !found {
					t.Errorf("%s/%d: %s %q not in catalog", brand, tier, category, id)
				}
			}

			// every constrained choice is compatible with its upstream
			r := compat.NewResolver(c)
			for _, category := range []types.Category{types.CategoryMainboard, types.CategoryRAM, types.CategoryCPUCooler} {
				if !r.Options(category, res.Selection).Contains(res.Selection[category]) {
					t.Errorf("%s/%d: %s %q is not compatible", brand, tier, category, res.Selection[category])
				}
			}
		}
	}
}

func TestHeuristicChoices(t *testing.T) {
	g := New(catalog.Baseline(), nil)

	tests := []struct {
		name string
		req  Request
		want map[types.Category]string
	}{
		{
			name: "intel mid tier",
			req:  Request{Budget: 15, Brand: types.BrandIntel},
			want: map[types.Category]string{
				types.CategoryCPU:       "13400f",
				types.CategoryMainboard: "H610M-K",
				types.CategoryVGA:       "rtx4060ti",
				types.CategoryRAM:       "cosair-16",
				types.CategorySSD:       "ssd-1tb",
				types.CategoryCase:      "case-mid",
				types.CategoryCPUCooler: "air-ak400",
				types.CategoryPSU:       "psu-650",
			},
		},
		{
			name: "intel entry",
			req:  Request{Budget: 5, Brand: types.BrandIntel},
			want: map[types.Category]string{
				types.CategoryCPU:       "12100f",
				types.CategoryVGA:       "rtx3060",
				types.CategoryRAM:       "cosair-16",
				types.CategorySSD:       "ssd-500",
				types.CategoryCase:      "case-mini",
				types.CategoryCPUCooler: "stock",
				types.CategoryPSU:       "psu-550",
			},
		},
		{
			name: "amd flagship",
			req:  Request{Budget: 30, Brand: types.BrandAMD},
			want: map[types.Category]string{
				types.CategoryCPU:       "7800x3d",
				types.CategoryMainboard: "B650M",
				types.CategoryVGA:       "rtx4070super",
				types.CategoryRAM:       "cosair-32",
				types.CategoryCPUCooler: "liquid-240",
				types.CategoryPSU:       "psu-750",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := g.Generate(tt.req)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for category, id := range tt.want {
				if got := res.Selection[category]; got != id {
					t.Errorf("%s = %q, want %q", category, got, id)
				}
			}
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := New(catalog.Baseline(), catalog.BaselineTemplates())
	for _, req := range []Request{
		{Budget: 18, Brand: types.BrandIntel, Game: "valorant"},
		{Budget: 22, Brand: types.BrandAMD, Game: "unknown-game"},
	} {
		first, err := g.Generate(req)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for i := 0; i < 5; i++ {
			again, err := g.Generate(req)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !again.Selection.Equal(first.Selection) || again.Source != first.Source {
				t.Fatalf("run %d differs: %v vs %v", i, again.Selection, first.Selection)
			}
		}
	}
}

func TestNoCompatibleMainboardFails(t *testing.T) {
	c := types.Catalog{}
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "13400f", Name: "Intel Core i5-13400F", Socket: "LGA1700", DDR: types.DDR4})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B650M", Name: "B650M", Socket: "AM5"})

	_, err := New(c, nil).Generate(Request{Budget: 15, Brand: types.BrandIntel, Game: "x"})
	if !errors.IsType(err, errors.TypeGeneration) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestMissingPSUOrRAMFails(t *testing.T) {
	base := catalog.Baseline()

	noPSU := base.Clone()
	delete(noPSU, types.CategoryPSU)
	if _, err := New(noPSU, nil).Generate(Request{Budget: 15, Brand: types.BrandIntel}); !errors.IsType(err, errors.TypeGeneration) {
		t.Errorf("no psu: expected generation error, got %v", err)
	}

	noRAM := base.Clone()
	delete(noRAM, types.CategoryRAM)
	if _, err := New(noRAM, nil).Generate(Request{Budget: 15, Brand: types.BrandIntel}); !errors.IsType(err, errors.TypeGeneration) {
		t.Errorf("no ram: expected generation error, got %v", err)
	}
}

func TestPSUFallsBackToStrongest(t *testing.T) {
	records := []types.ComponentRecord{
		{ID: "a", Name: "450W unit"},
		{ID: "b", Wattage: 550},
		{ID: "c", Name: "no rating"},
	}
	got, ok := pickPSU(records, 750)
	if !ok || got.ID != "b" {
		t.Errorf("pickPSU = %q, want b", got.ID)
	}
	got, _ = pickPSU(records, 500)
	if got.ID != "b" {
		t.Errorf("pickPSU(500) = %q, want b", got.ID)
	}
	got, _ = pickPSU(records, 300)
	if got.ID != "a" {
		t.Errorf("pickPSU(300) = %q, want a", got.ID)
	}
}

func TestRAMFallsBackToSmallest(t *testing.T) {
	records := []types.ComponentRecord{
		{ID: "8a", CapacityGB: 8, Price: 1},
		{ID: "4a", CapacityGB: 4, Price: 2},
	}
	got, ok := pickRAM(records, 16)
	if !ok || got.ID != "4a" {
		t.Errorf("pickRAM = %q, want 4a", got.ID)
	}
}

func TestOfflineFallback(t *testing.T) {
	g := New(types.Catalog{}, nil)

	tests := []struct {
		brand types.Brand
		tier  int
		cpu   string
	}{
		{types.BrandIntel, 5, "e3-1230v3"},
		{types.BrandIntel, 6, "12100f"},
		{types.BrandIntel, 20, "13400f"},
		{types.BrandIntel, 21, "14700k"},
		{types.BrandAMD, 1, "3600"},
		{types.BrandAMD, 10, "5600"},
		{types.BrandAMD, 99, "7800x3d"},
	}
	for _, tt := range tests {
		res, err := g.Generate(Request{Budget: tt.tier, Brand: tt.brand})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if res.Source != SourceOffline || res.Selection[types.CategoryCPU] != tt.cpu {
			t.Errorf("%s/%d: got %s cpu %q, want %q", tt.brand, tt.tier, res.Source, res.Selection[types.CategoryCPU], tt.cpu)
		}
	}

	// the literal lists refer to baseline ids
	c := catalog.Baseline()
	for _, brand := range []types.Brand{types.BrandIntel, types.BrandAMD} {
		for _, tier := range []int{5, 10, 20, 30} {
			for category, id := range Offline(brand, tier) {
				if _, ok := c.Lookup(category, id); !ok {
					t.Errorf("offline %s/%d: %s %q not in baseline", brand, tier, category, id)
				}
			}
		}
	}
}

func TestRequestValidation(t *testing.T) {
	g := New(catalog.Baseline(), nil)
	for _, req := range []Request{
		{Budget: 0, Brand: types.BrandIntel},
		{Budget: -3, Brand: types.BrandAMD},
		{Budget: 10, Brand: "via"},
	} {
		if _, err := g.Generate(req); !errors.IsType(err, errors.TypeInput) {
			t.Errorf("%+v: expected input error, got %v", req, err)
		}
	}
}

func TestHeuristicsValidate(t *testing.T) {
	if err := DefaultHeuristics().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	h := DefaultHeuristics()
	h.LowMax = 30
	if h.Validate() == nil {
		t.Error("expected ladder threshold error")
	}
	h = DefaultHeuristics()
	delete(h.CPULadders, types.BrandAMD)
	if h.Validate() == nil {
		t.Error("expected missing ladder error")
	}
}
