package generator

import (
	"fmt"

	"pcbuild/core/types"
)

// Ladder is a three-step CPU price ladder for one brand
type Ladder struct {
	Low  string `json:"low"`
	Mid  string `json:"mid"`
	High string `json:"high"`
}

// PSUStep maps a minimum GPU tier to a required PSU wattage
type PSUStep struct {
	MinTier int `json:"min_tier"`
	Watts   int `json:"watts"`
}

// Heuristics are the ids and thresholds of the fallback synthesis.
// Thresholds are budget tiers in millions.
type Heuristics struct {
	CPULadders map[types.Brand]Ladder `json:"cpu_ladders"`
	// Budgets up to LowMax take the low CPU, from HighMin the high one
	LowMax  int `json:"low_max"`
	HighMin int `json:"high_min"`

	GPUDefault   string `json:"gpu_default"`
	GPUUpgrade   string `json:"gpu_upgrade"`
	GPUUpgradeAt int    `json:"gpu_upgrade_at"`
	GPUTop       string `json:"gpu_top"`
	GPUTopAt     int    `json:"gpu_top_at"`

	RAMLargeAt int `json:"ram_large_at"`
	RAMLargeGB int `json:"ram_large_gb"`
	RAMBaseGB  int `json:"ram_base_gb"`

	SSDBase      string `json:"ssd_base"`
	SSDUpgrade   string `json:"ssd_upgrade"`
	SSDUpgradeAt int    `json:"ssd_upgrade_at"`

	CaseBase      string `json:"case_base"`
	CaseUpgrade   string `json:"case_upgrade"`
	CaseUpgradeAt int    `json:"case_upgrade_at"`

	CoolerStock  string   `json:"cooler_stock"`
	CoolerAir    string   `json:"cooler_air"`
	CoolerLiquid string   `json:"cooler_liquid"`
	AirCoolerAt  int      `json:"air_cooler_at"`
	LiquidCPUs   []string `json:"liquid_cpus"`

	// PSUSteps are checked in order; the first step whose MinTier the GPU
	// reaches sets the wattage floor
	PSUSteps    []PSUStep `json:"psu_steps"`
	PSUDefaultW int       `json:"psu_default_w"`
}

// DefaultHeuristics returns the built-in heuristics
func DefaultHeuristics() Heuristics {
	return Heuristics{
		CPULadders: map[types.Brand]Ladder{
			types.BrandIntel: {Low: "12100f", Mid: "13400f", High: "14700k"},
			types.BrandAMD:   {Low: "5600", Mid: "7500f", High: "7800x3d"},
		},
		LowMax:  8,
		HighMin: 25,

		GPUDefault:   "rtx3060",
		GPUUpgrade:   "rtx4060ti",
		GPUUpgradeAt: 15,
		GPUTop:       "rtx4070super",
		GPUTopAt:     28,

		RAMLargeAt: 20,
		RAMLargeGB: 32,
		RAMBaseGB:  16,

		SSDBase:      "ssd-500",
		SSDUpgrade:   "ssd-1tb",
		SSDUpgradeAt: 15,

		CaseBase:      "case-mini",
		CaseUpgrade:   "case-mid",
		CaseUpgradeAt: 15,

		CoolerStock:  "stock",
		CoolerAir:    "air-ak400",
		CoolerLiquid: "liquid-240",
		AirCoolerAt:  10,
		LiquidCPUs:   []string{"14700k", "7800x3d"},

		PSUSteps: []PSUStep{
			{MinTier: 5, Watts: 750},
			{MinTier: 4, Watts: 650},
			{MinTier: 3, Watts: 550},
		},
		PSUDefaultW: 450,
	}
}

// Validate checks that every slot has an id and thresholds are ordered
func (h Heuristics) Validate() error {
	for _, brand := range []types.Brand{types.BrandIntel, types.BrandAMD} {
		l, ok := h.CPULadders[brand]
		if !ok || l.Low == "" || l.Mid == "" || l.High == "" {
			return fmt.Errorf("cpu ladder for %s is incomplete", brand)
		}
	}
	if h.LowMax >= h.HighMin {
		return fmt.Errorf("low_max (%d) must be below high_min (%d)", h.LowMax, h.HighMin)
	}
	if h.GPUUpgradeAt > h.GPUTopAt {
		return fmt.Errorf("gpu upgrade_at (%d) must not exceed top_at (%d)", h.GPUUpgradeAt, h.GPUTopAt)
	}
	for name, id := range map[string]string{
		"gpu default": h.GPUDefault, "gpu upgrade": h.GPUUpgrade, "gpu top": h.GPUTop,
		"ssd base": h.SSDBase, "ssd upgrade": h.SSDUpgrade,
		"case base": h.CaseBase, "case upgrade": h.CaseUpgrade,
		"stock cooler": h.CoolerStock, "air cooler": h.CoolerAir, "liquid cooler": h.CoolerLiquid,
	} {
		if id == "" {
			return fmt.Errorf("%s id is empty", name)
		}
	}
	if h.RAMBaseGB <= 0 || h.RAMLargeGB < h.RAMBaseGB {
		return fmt.Errorf("ram sizes must be positive and large >= base")
	}
	if h.PSUDefaultW <= 0 {
		return fmt.Errorf("psu default wattage must be positive")
	}
	return nil
}

func (h Heuristics) cpuFor(brand types.Brand, tier int) string {
	l := h.CPULadders[brand]
	switch {
	case tier <= h.LowMax:
		return l.Low
	case tier >= h.HighMin:
		return l.High
	default:
		return l.Mid
	}
}

func (h Heuristics) gpuFor(tier int) string {
	switch {
	case tier >= h.GPUTopAt:
		return h.GPUTop
	case tier >= h.GPUUpgradeAt:
		return h.GPUUpgrade
	default:
		return h.GPUDefault
	}
}

func (h Heuristics) ramGBFor(tier int) int {
	if tier >= h.RAMLargeAt {
		return h.RAMLargeGB
	}
	return h.RAMBaseGB
}

func (h Heuristics) ssdFor(tier int) string {
	if tier >= h.SSDUpgradeAt {
		return h.SSDUpgrade
	}
	return h.SSDBase
}

func (h Heuristics) caseFor(tier int) string {
	if tier >= h.CaseUpgradeAt {
		return h.CaseUpgrade
	}
	return h.CaseBase
}

func (h Heuristics) coolerFor(cpuID string, tier int) string {
	for _, id := range h.LiquidCPUs {
		if id == cpuID {
			return h.CoolerLiquid
		}
	}
	if tier >= h.AirCoolerAt {
		return h.CoolerAir
	}
	return h.CoolerStock
}

// wattsFor returns the PSU floor for a GPU tier; zero means unknown GPU
func (h Heuristics) wattsFor(gpuTier int) int {
	if gpuTier > 0 {
		for _, step := range h.PSUSteps {
			if gpuTier >= step.MinTier {
				return step.Watts
			}
		}
	}
	return h.PSUDefaultW
}
