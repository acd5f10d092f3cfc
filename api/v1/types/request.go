// Package types - Public API DTOs
// This package contains ONLY data transfer objects for the public API.
// NO ENGINE IMPORTS ALLOWED - this is the stable wire contract shared by
// the persistence service and its clients.
package types

// InventoryUpsertRequest is the body of POST /inventory
type InventoryUpsertRequest struct {
	Category string    `json:"category"`
	Record   RecordDTO `json:"record"`
}

// ConfigUpsertRequest is the body of POST /configs
type ConfigUpsertRequest struct {
	CPUBrand  string       `json:"cpuBrand"`
	Game      string       `json:"game"`
	BudgetKey string       `json:"budgetKey"`
	Selection SelectionDTO `json:"selection"`
}

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	// Budget is the tier in millions
	Budget   int    `json:"budget"`
	CPUBrand string `json:"cpuBrand"`
	Game     string `json:"game"`
}

// TotalRequest is the body of POST /total
type TotalRequest struct {
	Selection SelectionDTO `json:"selection"`
}

// RecordDTO is one inventory record on the wire
type RecordDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
	Socket   string `json:"socket,omitempty"`
	DDR      string `json:"ddr,omitempty"`

	// MemoryType is accepted as an alias of DDR
	MemoryType string `json:"memoryType,omitempty"`

	Brand      string   `json:"brand,omitempty"`
	Warranty   string   `json:"warranty,omitempty"`
	Condition  string   `json:"condition,omitempty"`
	Image      string   `json:"image,omitempty"`
	Tier       int      `json:"tier,omitempty"`
	Wattage    int      `json:"wattage,omitempty"`
	CapacityGB int      `json:"capacityGb,omitempty"`
	Sockets    []string `json:"sockets,omitempty"`
	CoolerType string   `json:"coolerType,omitempty"`
}

// SelectionDTO maps category names to component ids
type SelectionDTO map[string]string

// InventoryDTO is the body of GET /inventory: category -> id -> record
type InventoryDTO map[string]map[string]RecordDTO

// ConfigsDTO is the body of GET /configs: cpuBrand -> game -> budgetKey -> selection
type ConfigsDTO map[string]map[string]map[string]SelectionDTO
