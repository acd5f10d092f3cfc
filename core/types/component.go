// Package types - Component records and override patches
package types

import (
	"encoding/json"
	"fmt"
)

// ComponentRecord is one catalog entry
type ComponentRecord struct {
	// ID is unique within the record's category
	ID string `json:"id"`

	// Name is the display name; it may encode socket or memory as free text
	Name string `json:"name"`

	// Price is the unit price in whole currency units
	Price int64 `json:"price"`

	// Quantity is the stock count; zero means unspecified and counts as 1
	Quantity int `json:"quantity,omitempty"`

	// Socket is the normalized socket family (e.g. "LGA1700", "AM5")
	Socket string `json:"socket,omitempty"`

	// DDR is the memory generation ("DDR3", "DDR4", "DDR5")
	DDR string `json:"ddr,omitempty"`

	Brand     string    `json:"brand,omitempty"`
	Warranty  string    `json:"warranty,omitempty"`
	Condition Condition `json:"condition,omitempty"`
	Image     string    `json:"image,omitempty"`

	// Tier is the GPU performance tier
	Tier int `json:"tier,omitempty"`

	// Wattage is the PSU rated output
	Wattage int `json:"wattage,omitempty"`

	// CapacityGB is the RAM kit or drive capacity
	CapacityGB int `json:"capacityGb,omitempty"`

	// Sockets lists the sockets a cooler mounts on; empty means universal
	Sockets []string `json:"sockets,omitempty"`

	CoolerType CoolerType `json:"coolerType,omitempty"`
}

// UnmarshalJSON accepts "memoryType" as an alias of "ddr"
func (r *ComponentRecord) UnmarshalJSON(data []byte) error {
	type plain ComponentRecord
	aux := struct {
		*plain
		MemoryType string `json:"memoryType,omitempty"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.DDR == "" && aux.MemoryType != "" {
		r.DDR = aux.MemoryType
	}
	return nil
}

// EffectiveQuantity returns the quantity used for pricing
func (r ComponentRecord) EffectiveQuantity() int {
	if r.Quantity <= 0 {
		return 1
	}
	return r.Quantity
}

// Validate checks record invariants
func (r ComponentRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("component id is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("component %s: price must not be negative", r.ID)
	}
	if r.Condition != "" && r.Condition != ConditionNew && r.Condition != ConditionUsed {
		return fmt.Errorf("component %s: unknown condition %q", r.ID, r.Condition)
	}
	return nil
}

// Clone returns a deep copy of the record
func (r ComponentRecord) Clone() ComponentRecord {
	if r.Sockets != nil {
		r.Sockets = append([]string(nil), r.Sockets...)
	}
	return r
}

// RecordPatch is a partial record. Nil fields leave the base value alone.
type RecordPatch struct {
	Name       *string     `json:"name,omitempty"`
	Price      *int64      `json:"price,omitempty"`
	Quantity   *int        `json:"quantity,omitempty"`
	Socket     *string     `json:"socket,omitempty"`
	DDR        *string     `json:"ddr,omitempty"`
	Brand      *string     `json:"brand,omitempty"`
	Warranty   *string     `json:"warranty,omitempty"`
	Condition  *Condition  `json:"condition,omitempty"`
	Image      *string     `json:"image,omitempty"`
	Tier       *int        `json:"tier,omitempty"`
	Wattage    *int        `json:"wattage,omitempty"`
	CapacityGB *int        `json:"capacityGb,omitempty"`
	Sockets    []string    `json:"sockets,omitempty"`
	CoolerType *CoolerType `json:"coolerType,omitempty"`
}

// UnmarshalJSON accepts "memoryType" as an alias of "ddr"
func (p *RecordPatch) UnmarshalJSON(data []byte) error {
	type plain RecordPatch
	aux := struct {
		*plain
		MemoryType *string `json:"memoryType,omitempty"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.DDR == nil && aux.MemoryType != nil {
		p.DDR = aux.MemoryType
	}
	return nil
}

// Apply returns base with every set patch field replaced
func (p RecordPatch) Apply(base ComponentRecord) ComponentRecord {
	out := base.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.Quantity != nil {
		out.Quantity = *p.Quantity
	}
	if p.Socket != nil {
		out.Socket = *p.Socket
	}
	if p.DDR != nil {
		out.DDR = *p.DDR
	}
	if p.Brand != nil {
		out.Brand = *p.Brand
	}
	if p.Warranty != nil {
		out.Warranty = *p.Warranty
	}
	if p.Condition != nil {
		out.Condition = *p.Condition
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.Tier != nil {
		out.Tier = *p.Tier
	}
	if p.Wattage != nil {
		out.Wattage = *p.Wattage
	}
	if p.CapacityGB != nil {
		out.CapacityGB = *p.CapacityGB
	}
	if p.Sockets != nil {
		out.Sockets = append([]string(nil), p.Sockets...)
	}
	if p.CoolerType != nil {
		out.CoolerType = *p.CoolerType
	}
	return out
}

// Merge returns p with every field set in next replacing the same field
func (p RecordPatch) Merge(next RecordPatch) RecordPatch {
	if next.Name != nil {
		p.Name = next.Name
	}
	if next.Price != nil {
		p.Price = next.Price
	}
	if next.Quantity != nil {
		p.Quantity = next.Quantity
	}
	if next.Socket != nil {
		p.Socket = next.Socket
	}
	if next.DDR != nil {
		p.DDR = next.DDR
	}
	if next.Brand != nil {
		p.Brand = next.Brand
	}
	if next.Warranty != nil {
		p.Warranty = next.Warranty
	}
	if next.Condition != nil {
		p.Condition = next.Condition
	}
	if next.Image != nil {
		p.Image = next.Image
	}
	if next.Tier != nil {
		p.Tier = next.Tier
	}
	if next.Wattage != nil {
		p.Wattage = next.Wattage
	}
	if next.CapacityGB != nil {
		p.CapacityGB = next.CapacityGB
	}
	if next.Sockets != nil {
		p.Sockets = append([]string(nil), next.Sockets...)
	}
	if next.CoolerType != nil {
		p.CoolerType = next.CoolerType
	}
	return p
}

// IsEmpty reports whether the patch sets nothing
func (p RecordPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Quantity == nil &&
		p.Socket == nil && p.DDR == nil && p.Brand == nil &&
		p.Warranty == nil && p.Condition == nil && p.Image == nil &&
		p.Tier == nil && p.Wattage == nil && p.CapacityGB == nil &&
		p.Sockets == nil && p.CoolerType == nil
}

// PatchFromRecord builds a patch that replaces every field of a base
// record, which is how full remote records are layered over the baseline.
func PatchFromRecord(r ComponentRecord) RecordPatch {
	r = r.Clone()
	sockets := r.Sockets
	if sockets == nil {
		sockets = []string{}
	}
	return RecordPatch{
		Name:       &r.Name,
		Price:      &r.Price,
		Quantity:   &r.Quantity,
		Socket:     &r.Socket,
		DDR:        &r.DDR,
		Brand:      &r.Brand,
		Warranty:   &r.Warranty,
		Condition:  &r.Condition,
		Image:      &r.Image,
		Tier:       &r.Tier,
		Wattage:    &r.Wattage,
		CapacityGB: &r.CapacityGB,
		Sockets:    sockets,
		CoolerType: &r.CoolerType,
	}
}
