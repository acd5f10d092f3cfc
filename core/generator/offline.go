package generator

import "pcbuild/core/types"

// offlineBracket is a fully literal parts list for a budget ceiling
type offlineBracket struct {
	maxTier int
	parts   map[types.Category]string
}

// offlineBrackets are checked in order; a zero maxTier matches everything
var offlineBrackets = map[types.Brand][]offlineBracket{
	types.BrandIntel: {
		{5, map[types.Category]string{
			types.CategoryCPU: "e3-1230v3", types.CategoryMainboard: "H81M", types.CategoryVGA: "gtx1650",
			types.CategoryRAM: "ddr3-8", types.CategorySSD: "ssd-500", types.CategoryPSU: "psu-450",
			types.CategoryCase: "case-mini", types.CategoryCPUCooler: "stock",
		}},
		{10, map[types.Category]string{
			types.CategoryCPU: "12100f", types.CategoryMainboard: "H610M-K", types.CategoryVGA: "rtx3060",
			types.CategoryRAM: "cosair-16", types.CategorySSD: "ssd-500", types.CategoryPSU: "psu-550",
			types.CategoryCase: "case-mini", types.CategoryCPUCooler: "stock",
		}},
		{20, map[types.Category]string{
			types.CategoryCPU: "13400f", types.CategoryMainboard: "B760M-D4", types.CategoryVGA: "rtx4060ti",
			types.CategoryRAM: "gskill-32-d4", types.CategorySSD: "ssd-1tb", types.CategoryPSU: "psu-650",
			types.CategoryCase: "case-mid", types.CategoryCPUCooler: "air-ak400",
		}},
		{0, map[types.Category]string{
			types.CategoryCPU: "14700k", types.CategoryMainboard: "Z790-P", types.CategoryVGA: "rtx4070super",
			types.CategoryRAM: "cosair-32", types.CategorySSD: "ssd-1tb", types.CategoryPSU: "psu-750",
			types.CategoryCase: "case-mid", types.CategoryCPUCooler: "liquid-240",
		}},
	},
	types.BrandAMD: {
		{5, map[types.Category]string{
			types.CategoryCPU: "3600", types.CategoryMainboard: "B450M", types.CategoryVGA: "gtx1650",
			types.CategoryRAM: "cosair-16", types.CategorySSD: "ssd-500", types.CategoryPSU: "psu-450",
			types.CategoryCase: "case-mini", types.CategoryCPUCooler: "stock",
		}},
		{10, map[types.Category]string{
			types.CategoryCPU: "5600", types.CategoryMainboard: "B550M", types.CategoryVGA: "rx6600",
			types.CategoryRAM: "cosair-16", types.CategorySSD: "ssd-500", types.CategoryPSU: "psu-550",
			types.CategoryCase: "case-mini", types.CategoryCPUCooler: "stock",
		}},
		{20, map[types.Category]string{
			types.CategoryCPU: "7500f", types.CategoryMainboard: "B650M", types.CategoryVGA: "rtx4060ti",
			types.CategoryRAM: "kingston-16-d5", types.CategorySSD: "ssd-1tb", types.CategoryPSU: "psu-650",
			types.CategoryCase: "case-mid", types.CategoryCPUCooler: "air-ak400",
		}},
		{0, map[types.Category]string{
			types.CategoryCPU: "7800x3d", types.CategoryMainboard: "B650M", types.CategoryVGA: "rtx4070super",
			types.CategoryRAM: "cosair-32", types.CategorySSD: "ssd-1tb", types.CategoryPSU: "psu-750",
			types.CategoryCase: "case-mid", types.CategoryCPUCooler: "liquid-240",
		}},
	},
}

// Offline returns the literal parts list for a brand and budget. It needs no
// catalog or templates.
func Offline(brand types.Brand, tier int) types.Selection {
	for _, b := range offlineBrackets[brand] {
		if b.maxTier == 0 || tier <= b.maxTier {
			return types.Selection(b.parts).Clone()
		}
	}
	return types.Selection{}
}
