package inference

import (
	"testing"

	"pcbuild/core/types"
)

func TestCPUSocketFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"AMD Ryzen 7 7800X3D AM5", "AM5"},
		{"AMD Ryzen 5 5600 (AM4)", "AM4"},
		{"Intel Pentium Gold LGA 1200", "LGA1200"},
		{"Intel Core i5-13400F LGA1700", "LGA1700"},
		{"Intel Xeon E3-1230 v2", "LGA1155"},
		{"Intel Xeon E3-1231 V3", "LGA1150"},
		{"Intel Xeon E3-1245v5", "LGA1151"},
		{"Intel Core i5-12400F", "LGA1700"},
		{"Intel Core i9-14900K", "LGA1700"},
		{"Intel Core i5-10400F", "LGA1200"},
		{"Intel Core i3-11100", "LGA1200"},
		{"Intel Core i7-9700K", "LGA1151"},
		{"Intel Core i5-6500", "LGA1151"},
		{"Intel Core i5-4460", "LGA1150"},
		{"Intel Core i7-2600", "LGA1155"},
		{"core i3 - 3220", "LGA1155"},
		{"CPU 13600KF tray", "LGA1700"},
		{"CPU 10105F", "LGA1200"},
		{"CPU 8700", "LGA1151"},
		{"AMD Ryzen 5 7500F", "AM5"},
		{"AMD Ryzen 9 7950X3D", "AM5"},
		{"AMD Ryzen 7 5700X3D", "AM4"},
		{"AMD Ryzen 5 3600", "AM4"},
		{"AMD Ryzen 5 1600AF", "AM4"},
		{"AMD Athlon 3000G", ""},
		{"Intel Core i7-1165G7", ""},
		{"mystery processor", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CPUSocketFromName(tt.name); got != tt.expected {
				t.Errorf("CPUSocketFromName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCPUMemoryFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Intel Xeon E3-1230 v2", types.DDR3},
		{"Intel Xeon E3-1240 v4", types.DDR3},
		{"Intel Xeon E3-1230 v5", types.DDR4},
		{"Intel Xeon E3-1275 v6", types.DDR4},
		{"Intel Core i5-13400F", types.DDR4},
		{"Intel Core i7-6700", types.DDR4},
		{"Intel Core i5-4460", ""},
		{"Intel LGA1700 i5 14400", types.DDR4},
		{"Intel LGA 1200 i5 10400", types.DDR4},
		{"Box LGA1150 only", ""},
		{"AMD Ryzen 5 7600X", types.DDR5},
		{"AMD Ryzen 7 5800X", types.DDR4},
		{"AMD Ryzen 5 3600", types.DDR4},
		{"AMD Ryzen 5 1600", types.DDR4},
		{"unknown chip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CPUMemoryFromName(tt.name); got != tt.expected {
				t.Errorf("CPUMemoryFromName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestChipsetSocket(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ASUS PRIME H610M-K D4", "LGA1700"},
		{"MSI PRO B760M-E DDR5", "LGA1700"},
		{"ASUS ROG STRIX Z790-A", "LGA1700"},
		{"GIGABYTE H510M-H", "LGA1200"},
		{"ASRock B560M Pro4", "LGA1200"},
		{"MSI B365M PRO-VH", "LGA1151"},
		{"GIGABYTE Z270X", "LGA1151"},
		{"GIGABYTE GA-H81M-DS2", "LGA1150"},
		{"ASUS Z97-K", "LGA1150"},
		{"MSI H61M-P31", "LGA1155"},
		{"ASRock B75 Pro3", "LGA1155"},
		{"ASUS TUF GAMING B650M-PLUS", "AM5"},
		{"ASRock A620M-HDV", "AM5"},
		{"GIGABYTE X670E AORUS", "AM5"},
		{"MSI B450M PRO-VDH MAX", "AM4"},
		{"ASUS A320M-K", "AM4"},
		{"Mainboard no chipset", ""},
		{"SKU-B7600", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChipsetSocket(tt.name); got != tt.expected {
				t.Errorf("ChipsetSocket(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	sockets := map[string]string{
		"am5":        "AM5",
		"Socket AM4": "AM4",
		"lga1700":    "LGA1700",
		"LGA 1151":   "LGA1151",
		"1700":       "",
		"":           "",
	}
	for raw, want := range sockets {
		if got := NormalizeSocket(raw); got != want {
			t.Errorf("NormalizeSocket(%q) = %q, want %q", raw, got, want)
		}
	}

	memory := map[string]string{
		"ddr5":          types.DDR5,
		"Kingston DDR4": types.DDR4,
		"DDR3L":         types.DDR3,
		"D4":            "",
	}
	for raw, want := range memory {
		if got := NormalizeMemory(raw); got != want {
			t.Errorf("NormalizeMemory(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStructuredFieldsTakePrecedence(t *testing.T) {
	// The name says DDR4-era i5, the structured fields say otherwise.
	cpu := types.ComponentRecord{ID: "x", Name: "Intel Core i5-14600KF", Socket: "lga1700", DDR: "ddr5"}
	if got := CPUSocket(cpu); got != "LGA1700" {
		t.Errorf("CPUSocket = %q, want LGA1700", got)
	}
	if got := CPUMemory(cpu); got != types.DDR5 {
		t.Errorf("CPUMemory = %q, want DDR5", got)
	}

	board := types.ComponentRecord{ID: "b", Name: "B450M board", Socket: "AM5"}
	if got := MainboardSocket(board); got != "AM5" {
		t.Errorf("MainboardSocket = %q, want AM5 from structured field", got)
	}

	bare := types.ComponentRecord{ID: "c", Name: "Generic board LGA1200"}
	if got := MainboardSocket(bare); got != "LGA1200" {
		t.Errorf("MainboardSocket fallback to name = %q, want LGA1200", got)
	}
}

func TestPlatform(t *testing.T) {
	if Platform("AM4") != types.BrandAMD {
		t.Error("AM4 should map to amd")
	}
	if Platform("LGA1700") != types.BrandIntel {
		t.Error("LGA1700 should map to intel")
	}
	if Platform("") != "" {
		t.Error("unknown socket should have no platform")
	}
}

func TestPSUWattage(t *testing.T) {
	tests := []struct {
		rec      types.ComponentRecord
		expected int
	}{
		{types.ComponentRecord{Name: "Anything", Wattage: 550}, 550},
		{types.ComponentRecord{Name: "Corsair CV650 650W"}, 650},
		{types.ComponentRecord{Name: "MSI MAG A750GL 750W 80+ Gold"}, 750},
		{types.ComponentRecord{Name: "Cooler Master MWE Bronze"}, 0},
	}
	for _, tt := range tests {
		if got := PSUWattage(tt.rec); got != tt.expected {
			t.Errorf("PSUWattage(%q) = %d, want %d", tt.rec.Name, got, tt.expected)
		}
	}
}

func TestCapacityGB(t *testing.T) {
	tests := []struct {
		rec      types.ComponentRecord
		expected int
	}{
		{types.ComponentRecord{Name: "whatever", CapacityGB: 32}, 32},
		{types.ComponentRecord{Name: "Corsair Vengeance 16GB (2x8) DDR4"}, 16},
		{types.ComponentRecord{Name: "Kingston 8 GB DDR4"}, 8},
		{types.ComponentRecord{Name: "DDR4 kit"}, 0},
	}
	for _, tt := range tests {
		if got := CapacityGB(tt.rec); got != tt.expected {
			t.Errorf("CapacityGB(%q) = %d, want %d", tt.rec.Name, got, tt.expected)
		}
	}
}
