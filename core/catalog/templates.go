// Package catalog - Curated configuration templates
package catalog

import "pcbuild/core/types"

type build struct {
	cpu, mainboard, vga, ram, ssd, psu, pcCase, cooler string
}

func (b build) selection() types.Selection {
	return types.Selection{
		types.CategoryCPU:       b.cpu,
		types.CategoryMainboard: b.mainboard,
		types.CategoryVGA:       b.vga,
		types.CategoryRAM:       b.ram,
		types.CategorySSD:       b.ssd,
		types.CategoryPSU:       b.psu,
		types.CategoryCase:      b.pcCase,
		types.CategoryCPUCooler: b.cooler,
	}.Clone()
}

// BaselineTemplates returns a fresh copy of the compiled-in templates
func BaselineTemplates() types.ConfigTemplate {
	t := types.ConfigTemplate{}

	intelValorant := map[string]build{
		"8M":  {"12100f", "H610M-K", "gtx1650", "kingston-8", "ssd-500", "psu-450", "case-mini", "stock"},
		"15M": {"12400f", "H610M-K", "rtx3060", "cosair-16", "ssd-500", "psu-550", "case-mini", "stock"},
		"20M": {"13400f", "B760M-D4", "rtx4060ti", "gskill-32-d4", "ssd-1tb", "psu-650", "case-mid", "air-ak400"},
		"30M": {"14600kf", "B760M-E", "rtx4070super", "cosair-32", "ssd-1tb", "psu-750", "case-mid", "air-ak400"},
	}
	intelPUBG := map[string]build{
		"15M": {"12400f", "B760M-D4", "rtx3060", "cosair-16", "ssd-1tb", "psu-550", "case-mini", "air-ak400"},
		"25M": {"14600kf", "B760M-E", "rtx4060ti", "cosair-32", "ssd-1tb", "psu-650", "case-mid", "air-ak400"},
		"40M": {"14700k", "Z790-P", "rtx4080super", "cosair-32", "ssd-2tb", "psu-850", "case-mid", "liquid-240"},
	}
	amdValorant := map[string]build{
		"10M": {"5600", "B450M", "rx6600", "cosair-16", "ssd-500", "psu-550", "case-mini", "stock"},
		"20M": {"7500f", "B650M", "rtx4060ti", "kingston-16-d5", "ssd-1tb", "psu-650", "case-mid", "air-ak400"},
		"35M": {"7800x3d", "B650M", "rtx4070super", "cosair-32", "ssd-1tb", "psu-750", "case-mid", "liquid-240"},
	}
	amdCS2 := map[string]build{
		"15M": {"5700x3d", "B550M", "rtx3060", "gskill-32-d4", "ssd-1tb", "psu-550", "case-mini", "air-ak400"},
	}

	put := func(brand types.Brand, game string, builds map[string]build) {
		for key, b := range builds {
			t.Put(brand, game, key, b.selection())
		}
	}
	put(types.BrandIntel, "valorant", intelValorant)
	put(types.BrandIntel, "pubg", intelPUBG)
	put(types.BrandAMD, "valorant", amdValorant)
	put(types.BrandAMD, "cs2", amdCS2)
	return t
}
