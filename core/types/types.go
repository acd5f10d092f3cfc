// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// value helpers.
package types

import "strings"

// Category identifies a component slot in a build
type Category string

const (
	CategoryCPU       Category = "cpu"
	CategoryMainboard Category = "mainboard"
	CategoryVGA       Category = "vga"
	CategoryRAM       Category = "ram"
	CategorySSD       Category = "ssd"
	CategoryHDD       Category = "hdd"
	CategoryPSU       Category = "psu"
	CategoryCase      Category = "case"
	CategoryCPUCooler Category = "cpuCooler"
	CategoryMonitor   Category = "monitor"
)

// Categories is the closed category set in bill-of-materials order
var Categories = []Category{
	CategoryCPU,
	CategoryMainboard,
	CategoryVGA,
	CategoryRAM,
	CategorySSD,
	CategoryHDD,
	CategoryPSU,
	CategoryCase,
	CategoryCPUCooler,
	CategoryMonitor,
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is part of the closed set
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name, ignoring case
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Brand is a CPU vendor, used to key templates and derive platforms
type Brand string

const (
	BrandIntel Brand = "intel"
	BrandAMD   Brand = "amd"
)

// String returns the string representation of the brand
func (b Brand) String() string {
	return string(b)
}

// IsValid checks if the brand is a known CPU vendor
func (b Brand) IsValid() bool {
	return b == BrandIntel || b == BrandAMD
}

// ParseBrand resolves a CPU vendor name, ignoring case
func ParseBrand(s string) (Brand, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intel":
		return BrandIntel, true
	case "amd":
		return BrandAMD, true
	default:
		return "", false
	}
}

// Condition is the sale condition of a component
type Condition string

const (
	ConditionNew  Condition = "NEW"
	ConditionUsed Condition = "2ND"
)

// CoolerType classifies CPU coolers
type CoolerType string

const (
	CoolerStock  CoolerType = "stock"
	CoolerAir    CoolerType = "air"
	CoolerLiquid CoolerType = "liquid"
)

// Memory generations
const (
	DDR3 = "DDR3"
	DDR4 = "DDR4"
	DDR5 = "DDR5"
)
