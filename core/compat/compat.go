// Package compat filters catalog categories down to the records usable with
// the current partial selection.
//
// Unknown attributes never exclude a record: if a socket or memory
// generation cannot be resolved, that axis is simply not filtered.
package compat

import (
	"strings"

	"pcbuild/core/inference"
	"pcbuild/core/types"
)

// Options is the resolver's answer for one category
type Options struct {
	Category types.Category `json:"category"`

	// Locked means an upstream choice is missing (pick the CPU first, ...)
	Locked bool `json:"locked"`

	// Filtered means a compatibility constraint was applied
	Filtered bool `json:"filtered"`

	Records []types.ComponentRecord `json:"records"`
}

// Empty reports "no compatible item": the category is enabled but nothing fits
func (o Options) Empty() bool {
	return !o.Locked && len(o.Records) == 0
}

// Contains reports whether id is among the options
func (o Options) Contains(id string) bool {
	for _, rec := range o.Records {
		if rec.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the option ids in order
func (o Options) IDs() []string {
	ids := make([]string, len(o.Records))
	for i, rec := range o.Records {
		ids[i] = rec.ID
	}
	return ids
}

// Resolver answers option queries against one catalog snapshot
type Resolver struct {
	catalog types.Catalog
}

// NewResolver creates a resolver over a catalog snapshot
func NewResolver(c types.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Options returns the records usable for category given sel.
// Records keep catalog order (price, then id).
func (r *Resolver) Options(category types.Category, sel types.Selection) Options {
	all := r.catalog.Records(category)
	out := Options{Category: category, Records: all}

	switch category {
	case types.CategoryMainboard:
		cpu, selected, known := r.upstream(sel, types.CategoryCPU)
		if !selected {
			return locked(category)
		}
		if !known || inference.CPUSocket(cpu) == "" {
			return out
		}
		out.Filtered = true
		out.Records = filter(all, func(board types.ComponentRecord) bool {
			return MainboardCompatible(cpu, board)
		})

	case types.CategoryRAM:
		board, selected, known := r.upstream(sel, types.CategoryMainboard)
		if !selected {
			return locked(category)
		}
		if !known || inference.MainboardMemory(board) == "" {
			return out
		}
		out.Filtered = true
		out.Records = filter(all, func(ram types.ComponentRecord) bool {
			return RAMCompatible(board, ram)
		})

	case types.CategoryCPUCooler:
		cpu, selected, known := r.upstream(sel, types.CategoryCPU)
		if !selected {
			return locked(category)
		}
		if !known || inference.CPUSocket(cpu) == "" {
			return out
		}
		out.Filtered = true
		out.Records = filter(all, func(cooler types.ComponentRecord) bool {
			return CoolerCompatible(cpu, cooler)
		})
	}
	return out
}

// upstream resolves the selected record of a category. A selected id that
// the catalog does not carry is reported as selected but unknown.
func (r *Resolver) upstream(sel types.Selection, category types.Category) (types.ComponentRecord, bool, bool) {
	id, ok := sel.Get(category)
	if !ok {
		return types.ComponentRecord{}, false, false
	}
	rec, known := r.catalog.Lookup(category, id)
	return rec, true, known
}

func locked(category types.Category) Options {
	return Options{Category: category, Locked: true, Records: []types.ComponentRecord{}}
}

func filter(records []types.ComponentRecord, keep func(types.ComponentRecord) bool) []types.ComponentRecord {
	out := make([]types.ComponentRecord, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// MainboardCompatible reports whether board fits cpu. Sockets must agree
// when both are known, memory generations when both are known, and the
// vendor platform when both sides reveal one.
func MainboardCompatible(cpu, board types.ComponentRecord) bool {
	cpuSocket := inference.CPUSocket(cpu)
	if cpuSocket == "" {
		return true
	}
	boardSocket := inference.MainboardSocket(board)
	if boardSocket != "" && boardSocket != cpuSocket {
		return false
	}

	cpuMemory := inference.CPUMemory(cpu)
	boardMemory := inference.MainboardMemory(board)
	if cpuMemory != "" && boardMemory != "" && cpuMemory != boardMemory {
		return false
	}

	cpuBrand, ok := types.ParseBrand(cpu.Brand)
	if !ok {
		cpuBrand = inference.Platform(cpuSocket)
	}
	boardBrand := inference.Platform(boardSocket)
	if cpuBrand != "" && boardBrand != "" && cpuBrand != boardBrand {
		return false
	}
	return true
}

// RAMCompatible reports whether ram matches the board's memory generation
func RAMCompatible(board, ram types.ComponentRecord) bool {
	boardMemory := inference.MainboardMemory(board)
	ramMemory := inference.RAMMemory(ram)
	if boardMemory == "" || ramMemory == "" {
		return true
	}
	return boardMemory == ramMemory
}

// CoolerCompatible reports whether cooler mounts on cpu. A cooler with no
// socket list fits everything. Otherwise a listed socket must contain the
// CPU socket, or its bare number ("1700" for "LGA1700").
func CoolerCompatible(cpu, cooler types.ComponentRecord) bool {
	if len(cooler.Sockets) == 0 {
		return true
	}
	socket := inference.CPUSocket(cpu)
	if socket == "" {
		return true
	}
	bare := StripSocketPrefix(socket)
	for _, listed := range cooler.Sockets {
		listed = strings.ToUpper(strings.TrimSpace(listed))
		if strings.Contains(listed, socket) || containsNumber(listed, bare) {
			return true
		}
	}
	return false
}

// StripSocketPrefix removes the "LGA" or "AM" family prefix
func StripSocketPrefix(socket string) string {
	upper := strings.ToUpper(strings.TrimSpace(socket))
	for _, prefix := range []string{"LGA", "AM"} {
		if strings.HasPrefix(upper, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(upper, prefix))
		}
	}
	return upper
}

// containsNumber reports whether number appears in s with no digit directly
// before or after it, so AM5's "5" never matches inside "1151".
func containsNumber(s, number string) bool {
	if number == "" {
		return false
	}
	for from := 0; from <= len(s)-len(number); {
		i := strings.Index(s[from:], number)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(number)
		if (start == 0 || !isDigit(s[start-1])) && (end == len(s) || !isDigit(s[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
