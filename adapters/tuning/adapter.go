// Package tuning loads generator heuristics from an HCL file.
//
//	low_max  = 8
//	high_min = 25
//
//	cpu_ladder "intel" {
//	  low  = "12100f"
//	  mid  = "13400f"
//	  high = "14700k"
//	}
//
//	gpu {
//	  default    = "rtx3060"
//	  upgrade    = "rtx4060ti"
//	  upgrade_at = 15
//	}
//
//	psu {
//	  default_watts = 450
//	  step {
//	    min_tier = 5
//	    watts    = 750
//	  }
//	}
//
// Attributes left out keep the value of the heuristics being tuned.
package tuning

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"pcbuild/core/generator"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "low_max"},
		{Name: "high_min"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cpu_ladder", LabelNames: []string{"brand"}},
		{Type: "gpu"},
		{Type: "ram"},
		{Type: "ssd"},
		{Type: "case"},
		{Type: "cooler"},
		{Type: "psu"},
	},
}

func attrs(names ...string) *hcl.BodySchema {
	s := &hcl.BodySchema{}
	for _, n := range names {
		s.Attributes = append(s.Attributes, hcl.AttributeSchema{Name: n})
	}
	return s
}

// Load reads path and applies it over base
func Load(path string, base generator.Heuristics) (generator.Heuristics, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Config("failed to read heuristics file", err)
	}
	return Parse(src, path, base)
}

// Parse applies HCL source over base and validates the result
func Parse(src []byte, filename string, base generator.Heuristics) (generator.Heuristics, error) {
	h := clone(base)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, errors.Config("invalid heuristics file", diags)
	}
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return base, errors.Config("invalid heuristics file", diags)
	}

	d := &decoder{}
	d.number(content.Attributes["low_max"], &h.LowMax)
	d.number(content.Attributes["high_min"], &h.HighMin)

	for _, block := range content.Blocks {
		switch block.Type {
		case "cpu_ladder":
			d.ladder(block, &h)
		case "gpu":
			a := d.content(block, "default", "upgrade", "upgrade_at", "top", "top_at")
			d.str(a["default"], &h.GPUDefault)
			d.str(a["upgrade"], &h.GPUUpgrade)
			d.number(a["upgrade_at"], &h.GPUUpgradeAt)
			d.str(a["top"], &h.GPUTop)
			d.number(a["top_at"], &h.GPUTopAt)
		case "ram":
			a := d.content(block, "base_gb", "large_gb", "large_at")
			d.number(a["base_gb"], &h.RAMBaseGB)
			d.number(a["large_gb"], &h.RAMLargeGB)
			d.number(a["large_at"], &h.RAMLargeAt)
		case "ssd":
			a := d.content(block, "base", "upgrade", "upgrade_at")
			d.str(a["base"], &h.SSDBase)
			d.str(a["upgrade"], &h.SSDUpgrade)
			d.number(a["upgrade_at"], &h.SSDUpgradeAt)
		case "case":
			a := d.content(block, "base", "upgrade", "upgrade_at")
			d.str(a["base"], &h.CaseBase)
			d.str(a["upgrade"], &h.CaseUpgrade)
			d.number(a["upgrade_at"], &h.CaseUpgradeAt)
		case "cooler":
			a := d.content(block, "stock", "air", "liquid", "air_at", "liquid_cpus")
			d.str(a["stock"], &h.CoolerStock)
			d.str(a["air"], &h.CoolerAir)
			d.str(a["liquid"], &h.CoolerLiquid)
			d.number(a["air_at"], &h.AirCoolerAt)
			d.strs(a["liquid_cpus"], &h.LiquidCPUs)
		case "psu":
			d.psu(block, &h)
		}
	}
	if d.diags.HasErrors() {
		return base, errors.Config("invalid heuristics file", d.diags)
	}
	if err := h.Validate(); err != nil {
		return base, errors.Config("invalid heuristics", err)
	}
	return h, nil
}

type decoder struct {
	diags hcl.Diagnostics
}

func (d *decoder) content(block *hcl.Block, names ...string) hcl.Attributes {
	content, diags := block.Body.Content(attrs(names...))
	d.diags = append(d.diags, diags...)
	if content == nil {
		return hcl.Attributes{}
	}
	return content.Attributes
}

func (d *decoder) ladder(block *hcl.Block, h *generator.Heuristics) {
	brand, ok := types.ParseBrand(block.Labels[0])
	if !ok {
		d.diags = append(d.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown cpu brand",
			Detail:   fmt.Sprintf("cpu_ladder %q: want intel or amd", block.Labels[0]),
			Subject:  block.LabelRanges[0].Ptr(),
		})
		return
	}
	a := d.content(block, "low", "mid", "high")
	l := h.CPULadders[brand]
	d.str(a["low"], &l.Low)
	d.str(a["mid"], &l.Mid)
	d.str(a["high"], &l.High)
	h.CPULadders[brand] = l
}

func (d *decoder) psu(block *hcl.Block, h *generator.Heuristics) {
	content, diags := block.Body.Content(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "default_watts"}},
		Blocks:     []hcl.BlockHeaderSchema{{Type: "step"}},
	})
	d.diags = append(d.diags, diags...)
	if content == nil {
		return
	}
	d.number(content.Attributes["default_watts"], &h.PSUDefaultW)

	if len(content.Blocks) == 0 {
		return
	}
	steps := make([]generator.PSUStep, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		a := d.content(block, "min_tier", "watts")
		var step generator.PSUStep
		d.number(a["min_tier"], &step.MinTier)
		d.number(a["watts"], &step.Watts)
		steps = append(steps, step)
	}
	// highest tier first: the first step a GPU reaches wins
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].MinTier > steps[j].MinTier })
	h.PSUSteps = steps
}

func clone(h generator.Heuristics) generator.Heuristics {
	ladders := make(map[types.Brand]generator.Ladder, len(h.CPULadders))
	for brand, l := range h.CPULadders {
		ladders[brand] = l
	}
	h.CPULadders = ladders
	h.LiquidCPUs = append([]string(nil), h.LiquidCPUs...)
	h.PSUSteps = append([]generator.PSUStep(nil), h.PSUSteps...)
	return h
}
