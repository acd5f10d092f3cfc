package compat

import (
	"testing"

	"pcbuild/core/catalog"
	"pcbuild/core/inference"
	"pcbuild/core/types"
)

func TestMainboardOptionsFor13400f(t *testing.T) {
	r := NewResolver(catalog.Baseline())
	opts := r.Options(types.CategoryMainboard, types.Selection{types.CategoryCPU: "13400f"})

	if opts.Locked || !opts.Filtered {
		t.Fatalf("expected filtered options, got locked=%v filtered=%v", opts.Locked, opts.Filtered)
	}
	if !opts.Contains("H610M-K") || !opts.Contains("B760M-D4") {
		t.Errorf("expected LGA1700 DDR4 boards, got %v", opts.IDs())
	}
	for _, excluded := range []string{"B450M", "B550M", "B650M", "X670E", "B760M-E", "Z790-P", "H510M"} {
		if opts.Contains(excluded) {
			t.Errorf("%s should be excluded for 13400f", excluded)
		}
	}
}

func TestRAMOptionsFollowMainboardMemory(t *testing.T) {
	r := NewResolver(catalog.Baseline())
	sel := types.Selection{types.CategoryCPU: "14600kf", types.CategoryMainboard: "B760M-E"}

	boards := r.Options(types.CategoryMainboard, sel)
	if !boards.Contains("B760M-E") {
		t.Fatalf("B760M-E should fit 14600kf, got %v", boards.IDs())
	}

	ram := r.Options(types.CategoryRAM, sel)
	if !ram.Contains("cosair-32") {
		t.Errorf("cosair-32 should be offered, got %v", ram.IDs())
	}
	if ram.Contains("cosair-16") {
		t.Error("cosair-16 is DDR4 and must be excluded")
	}
	for _, rec := range ram.Records {
		if got := inference.RAMMemory(rec); got != types.DDR5 && got != "" {
			t.Errorf("%s has memory %s", rec.ID, got)
		}
	}
}

func TestMainboardFilterIffSocketsAgree(t *testing.T) {
	c := catalog.Baseline()
	r := NewResolver(c)

	for _, cpu := range c.Records(types.CategoryCPU) {
		cpuSocket := inference.CPUSocket(cpu)
		if cpuSocket == "" {
			continue
		}
		opts := r.Options(types.CategoryMainboard, types.Selection{types.CategoryCPU: cpu.ID})
		for _, board := range c.Records(types.CategoryMainboard) {
			boardSocket := inference.MainboardSocket(board)
			if boardSocket == "" {
				continue
			}
			want := boardSocket == cpuSocket
			cm, bm := inference.CPUMemory(cpu), inference.MainboardMemory(board)
			if cm != "" && bm != "" && cm != bm {
				want = false
			}
			if got := opts.Contains(board.ID); got != want {
				t.Errorf("cpu %s (%s/%s) board %s (%s/%s): contained=%v want %v",
					cpu.ID, cpuSocket, cm, board.ID, boardSocket, bm, got, want)
			}
		}
	}
}

func TestRAMFilterOnlyMatchingGeneration(t *testing.T) {
	c := catalog.Baseline()
	r := NewResolver(c)

	for _, board := range c.Records(types.CategoryMainboard) {
		bm := inference.MainboardMemory(board)
		if bm == "" {
			continue
		}
		opts := r.Options(types.CategoryRAM, types.Selection{types.CategoryMainboard: board.ID})
		for _, ram := range opts.Records {
			if got := inference.RAMMemory(ram); got != bm {
				t.Errorf("board %s (%s) offered %s (%s)", board.ID, bm, ram.ID, got)
			}
		}
	}
}

func TestLockedVersusEmpty(t *testing.T) {
	r := NewResolver(catalog.Baseline())

	for _, category := range []types.Category{types.CategoryMainboard, types.CategoryRAM, types.CategoryCPUCooler} {
		opts := r.Options(category, types.Selection{})
		if !opts.Locked || opts.Empty() {
			t.Errorf("%s without upstream should be locked, got %+v", category, opts)
		}
	}

	c := types.Catalog{}
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "7500f", Name: "AMD Ryzen 5 7500F", Socket: "AM5"})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "H610M", Name: "H610M", Socket: "LGA1700"})
	opts := NewResolver(c).Options(types.CategoryMainboard, types.Selection{types.CategoryCPU: "7500f"})
	if !opts.Empty() {
		t.Errorf("expected no compatible item, got %v", opts.IDs())
	}
}

func TestUnknownSocketDegradesToUnfiltered(t *testing.T) {
	c := catalog.Baseline()
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "mystery", Name: "Engineering sample"})
	r := NewResolver(c)

	opts := r.Options(types.CategoryMainboard, types.Selection{types.CategoryCPU: "mystery"})
	if opts.Filtered || len(opts.Records) != len(c[types.CategoryMainboard]) {
		t.Errorf("unknown socket should show every board, got %d", len(opts.Records))
	}

	stale := r.Options(types.CategoryRAM, types.Selection{types.CategoryMainboard: "gone"})
	if stale.Locked || stale.Filtered {
		t.Errorf("stale upstream id should degrade to unfiltered, got %+v", stale)
	}
}

func TestUnconstrainedCategories(t *testing.T) {
	c := catalog.Baseline()
	r := NewResolver(c)
	for _, category := range []types.Category{types.CategoryVGA, types.CategorySSD, types.CategoryHDD, types.CategoryPSU, types.CategoryCase, types.CategoryMonitor} {
		opts := r.Options(category, types.Selection{})
		if opts.Locked || opts.Filtered || len(opts.Records) != len(c[category]) {
			t.Errorf("%s should be unconstrained, got %+v", category, opts)
		}
	}
}

func TestCoolerCompatible(t *testing.T) {
	lga1700 := types.ComponentRecord{Name: "Intel Core i5-13400F"}
	lga1200 := types.ComponentRecord{Name: "Intel Core i5-10400F"}
	am5 := types.ComponentRecord{Name: "AMD Ryzen 5 7500F"}
	unknown := types.ComponentRecord{Name: "mystery"}

	tests := []struct {
		name    string
		cpu     types.ComponentRecord
		sockets []string
		want    bool
	}{
		{"no list is universal", am5, nil, true},
		{"exact socket", lga1700, []string{"LGA1700"}, true},
		{"bare number", lga1200, []string{"1200", "AM4"}, true},
		{"listed with spacing", lga1700, []string{"lga 1700 / 1851"}, true},
		{"prefix mismatch", am5, []string{"AM4"}, false},
		{"am5 digit inside lga number", am5, []string{"LGA1150", "LGA1151"}, false},
		{"am5 against a single lga", am5, []string{"LGA1151"}, false},
		{"am5 in a slash list", am5, []string{"AM4/AM5"}, true},
		{"longer number", lga1700, []string{"17000"}, false},
		{"lga not listed", lga1700, []string{"LGA1150", "LGA1155"}, false},
		{"unknown cpu socket", unknown, []string{"LGA1150"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cooler := types.ComponentRecord{ID: "c", Sockets: tt.sockets}
			if got := CoolerCompatible(tt.cpu, cooler); got != tt.want {
				t.Errorf("CoolerCompatible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsNumberNeedsDigitBoundaries(t *testing.T) {
	tests := []struct {
		s, number string
		want      bool
	}{
		{"LGA1151", "5", false},
		{"LGA1151", "1151", true},
		{"AM4/AM5", "5", true},
		{"LGA 1700 / 1851", "1851", true},
		{"LGA17001", "1700", false},
		{"11700", "1700", false},
		{"AM5", "", false},
	}
	for _, tt := range tests {
		if got := containsNumber(tt.s, tt.number); got != tt.want {
			t.Errorf("containsNumber(%q, %q) = %v, want %v", tt.s, tt.number, got, tt.want)
		}
	}
}

func TestStripSocketPrefix(t *testing.T) {
	for in, want := range map[string]string{"LGA1700": "1700", "am5": "5", "1200": "1200"} {
		if got := StripSocketPrefix(in); got != want {
			t.Errorf("StripSocketPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
