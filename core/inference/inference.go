package inference

import (
	"strconv"
	"strings"

	"pcbuild/core/types"
)

// NormalizeSocket extracts a socket family from a raw value.
// It returns "" when nothing recognisable is present.
func NormalizeSocket(raw string) string {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "AM5"):
		return "AM5"
	case strings.Contains(upper, "AM4"):
		return "AM4"
	}
	if m := socketPattern.FindStringSubmatch(upper); m != nil {
		return "LGA" + m[1]
	}
	return ""
}

// NormalizeMemory extracts a memory generation from a raw value
func NormalizeMemory(raw string) string {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, types.DDR5):
		return types.DDR5
	case strings.Contains(upper, types.DDR4):
		return types.DDR4
	case strings.Contains(upper, types.DDR3):
		return types.DDR3
	}
	return ""
}

// CPUSocketFromName infers a CPU socket from a product name
func CPUSocketFromName(name string) string {
	return apply(cpuSocketRules, name)
}

// CPUMemoryFromName infers the memory generation of a CPU from its name
func CPUMemoryFromName(name string) string {
	return apply(cpuMemoryRules, name)
}

// ChipsetSocket infers a mainboard socket from a chipset token in its name
func ChipsetSocket(name string) string {
	return apply(chipsetRules, name)
}

// CPUSocket returns the structured socket if present, else the inferred one
func CPUSocket(cpu types.ComponentRecord) string {
	if s := NormalizeSocket(cpu.Socket); s != "" {
		return s
	}
	return CPUSocketFromName(cpu.Name)
}

// CPUMemory returns the structured memory generation if present, else the
// inferred one
func CPUMemory(cpu types.ComponentRecord) string {
	if m := NormalizeMemory(cpu.DDR); m != "" {
		return m
	}
	return CPUMemoryFromName(cpu.Name)
}

// MainboardSocket resolves structured socket, then chipset, then name
func MainboardSocket(board types.ComponentRecord) string {
	if s := NormalizeSocket(board.Socket); s != "" {
		return s
	}
	if s := ChipsetSocket(board.Name); s != "" {
		return s
	}
	return NormalizeSocket(board.Name)
}

// MainboardMemory resolves structured memory type, then the name
func MainboardMemory(board types.ComponentRecord) string {
	if m := NormalizeMemory(board.DDR); m != "" {
		return m
	}
	return NormalizeMemory(board.Name)
}

// RAMMemory resolves a RAM module's generation
func RAMMemory(ram types.ComponentRecord) string {
	if m := NormalizeMemory(ram.DDR); m != "" {
		return m
	}
	return NormalizeMemory(ram.Name)
}

// Platform derives the CPU vendor from a socket family
func Platform(socket string) types.Brand {
	switch {
	case strings.HasPrefix(socket, "AM"):
		return types.BrandAMD
	case strings.HasPrefix(socket, "LGA"):
		return types.BrandIntel
	}
	return ""
}

// PSUWattage returns the structured wattage, else one parsed from the name
// ("650W"). Zero means unknown.
func PSUWattage(psu types.ComponentRecord) int {
	if psu.Wattage > 0 {
		return psu.Wattage
	}
	m := wattagePattern.FindStringSubmatch(strings.ToUpper(psu.Name))
	if m == nil {
		return 0
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return w
}

// CapacityGB returns the structured capacity, else the first "<n>GB" in the
// name. Zero means unknown.
func CapacityGB(rec types.ComponentRecord) int {
	if rec.CapacityGB > 0 {
		return rec.CapacityGB
	}
	m := capacityPattern.FindStringSubmatch(strings.ToUpper(rec.Name))
	if m == nil {
		return 0
	}
	gb, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return gb
}

// Hint is the full inference result for one record, used for display
type Hint struct {
	Socket   string      `json:"socket,omitempty"`
	Memory   string      `json:"memory,omitempty"`
	Platform types.Brand `json:"platform,omitempty"`
}

// Explain infers everything that applies to a record of the given category
func Explain(category types.Category, rec types.ComponentRecord) Hint {
	var h Hint
	switch category {
	case types.CategoryCPU:
		h.Socket = CPUSocket(rec)
		h.Memory = CPUMemory(rec)
	case types.CategoryMainboard:
		h.Socket = MainboardSocket(rec)
		h.Memory = MainboardMemory(rec)
	case types.CategoryRAM:
		h.Memory = RAMMemory(rec)
	}
	h.Platform = Platform(h.Socket)
	return h
}
