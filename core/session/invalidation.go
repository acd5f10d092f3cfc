package session

import (
	"pcbuild/core/compat"
	"pcbuild/core/types"
)

// Apply sets category to id on a copy of sel and clears what the change
// invalidates. It returns the new selection and the categories it cleared.
//
// A new cpu clears mainboard and ram, then keeps the cooler only if it still
// mounts on the new cpu. A new mainboard clears ram. An empty id clears the
// category itself. Setting the current id again changes nothing.
func Apply(c types.Catalog, sel types.Selection, category types.Category, id string) (types.Selection, []types.Category) {
	current, _ := sel.Get(category)
	if current == id {
		return sel.Clone(), nil
	}
	next := sel.With(category, id)

	var cleared []types.Category
	drop := func(categories ...types.Category) {
		for _, dep := range categories {
			if _, ok := next.Get(dep); ok {
				delete(next, dep)
				cleared = append(cleared, dep)
			}
		}
	}

	switch category {
	case types.CategoryCPU:
		drop(types.CategoryMainboard, types.CategoryRAM)
		if !coolerStillFits(c, next) {
			drop(types.CategoryCPUCooler)
		}
	case types.CategoryMainboard:
		drop(types.CategoryRAM)
	}
	return next, cleared
}

// coolerStillFits rechecks the chosen cooler against the chosen cpu. Records
// the catalog does not carry are left alone.
func coolerStillFits(c types.Catalog, sel types.Selection) bool {
	cpu, ok := c.Lookup(types.CategoryCPU, sel[types.CategoryCPU])
	if !ok {
		return true
	}
	cooler, ok := c.Lookup(types.CategoryCPUCooler, sel[types.CategoryCPUCooler])
	if !ok {
		return true
	}
	return compat.CoolerCompatible(cpu, cooler)
}
