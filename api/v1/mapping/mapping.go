// Package mapping - Explicit mapping between engine types and API DTOs
// This is the ONLY place where engine types touch API types.
// Rules:
// - Pure functions, no state
// - Inbound mapping validates names (categories, brands); outbound never fails
// - No business logic
package mapping

import (
	"fmt"

	"pcbuild/api/v1/types"
	"pcbuild/core/compat"
	"pcbuild/core/generator"
	"pcbuild/core/pricing"
	core "pcbuild/core/types"
)

// RecordToDTO maps one record to the wire
func RecordToDTO(rec core.ComponentRecord) types.RecordDTO {
	return types.RecordDTO{
		ID:         rec.ID,
		Name:       rec.Name,
		Price:      rec.Price,
		Quantity:   rec.Quantity,
		Socket:     rec.Socket,
		DDR:        rec.DDR,
		Brand:      rec.Brand,
		Warranty:   rec.Warranty,
		Condition:  string(rec.Condition),
		Image:      rec.Image,
		Tier:       rec.Tier,
		Wattage:    rec.Wattage,
		CapacityGB: rec.CapacityGB,
		Sockets:    append([]string(nil), rec.Sockets...),
		CoolerType: string(rec.CoolerType),
	}
}

// RecordFromDTO maps a wire record; memoryType fills ddr when ddr is absent
func RecordFromDTO(dto types.RecordDTO) core.ComponentRecord {
	ddr := dto.DDR
	if ddr == "" {
		ddr = dto.MemoryType
	}
	return core.ComponentRecord{
		ID:         dto.ID,
		Name:       dto.Name,
		Price:      dto.Price,
		Quantity:   dto.Quantity,
		Socket:     dto.Socket,
		DDR:        ddr,
		Brand:      dto.Brand,
		Warranty:   dto.Warranty,
		Condition:  core.Condition(dto.Condition),
		Image:      dto.Image,
		Tier:       dto.Tier,
		Wattage:    dto.Wattage,
		CapacityGB: dto.CapacityGB,
		Sockets:    append([]string(nil), dto.Sockets...),
		CoolerType: core.CoolerType(dto.CoolerType),
	}
}

// RecordsToDTO maps an ordered record list
func RecordsToDTO(records []core.ComponentRecord) []types.RecordDTO {
	out := make([]types.RecordDTO, len(records))
	for i, rec := range records {
		out[i] = RecordToDTO(rec)
	}
	return out
}

// CatalogToDTO maps a catalog to the inventory wire shape
func CatalogToDTO(c core.Catalog) types.InventoryDTO {
	out := make(types.InventoryDTO, len(c))
	for category, entries := range c {
		m := make(map[string]types.RecordDTO, len(entries))
		for id, rec := range entries {
			m[id] = RecordToDTO(rec)
		}
		out[string(category)] = m
	}
	return out
}

// CatalogFromDTO maps an inventory body. Unknown categories are dropped and
// each record takes its id from the map key.
func CatalogFromDTO(dto types.InventoryDTO) core.Catalog {
	out := core.Catalog{}
	for name, entries := range dto {
		category, ok := core.ParseCategory(name)
		if !ok {
			continue
		}
		for id, recDTO := range entries {
			rec := RecordFromDTO(recDTO)
			rec.ID = id
			out.Put(category, rec)
		}
	}
	return out
}

// SelectionToDTO maps a selection to the wire
func SelectionToDTO(sel core.Selection) types.SelectionDTO {
	out := make(types.SelectionDTO, len(sel))
	for category, id := range sel {
		if id != "" {
			out[string(category)] = id
		}
	}
	return out
}

// SelectionFromDTO maps a wire selection, rejecting unknown categories
func SelectionFromDTO(dto types.SelectionDTO) (core.Selection, error) {
	out := make(core.Selection, len(dto))
	for name, id := range dto {
		category, ok := core.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		if id != "" {
			out[category] = id
		}
	}
	return out, nil
}

// TemplatesToDTO maps the template tree to the configs wire shape
func TemplatesToDTO(t core.ConfigTemplate) types.ConfigsDTO {
	out := types.ConfigsDTO{}
	for brand, games := range t {
		for game, budgets := range games {
			for key, sel := range budgets {
				if out[string(brand)] == nil {
					out[string(brand)] = map[string]map[string]types.SelectionDTO{}
				}
				if out[string(brand)][game] == nil {
					out[string(brand)][game] = map[string]types.SelectionDTO{}
				}
				out[string(brand)][game][key] = SelectionToDTO(sel)
			}
		}
	}
	return out
}

// TemplatesFromDTO maps a configs body. Unknown brands and categories are dropped.
func TemplatesFromDTO(dto types.ConfigsDTO) core.ConfigTemplate {
	out := core.ConfigTemplate{}
	for brandName, games := range dto {
		brand, ok := core.ParseBrand(brandName)
		if !ok {
			continue
		}
		for game, budgets := range games {
			for key, selDTO := range budgets {
				sel := core.Selection{}
				for name, id := range selDTO {
					if category, ok := core.ParseCategory(name); ok && id != "" {
						sel[category] = id
					}
				}
				out.Put(brand, game, key, sel)
			}
		}
	}
	return out
}

// BillToDTO maps a bill; budget <= 0 omits the remaining amount
func BillToDTO(bill pricing.Bill, f *pricing.Formatter, budget int) types.BillDTO {
	out := types.BillDTO{
		Lines:          make([]types.LineDTO, len(bill.Lines)),
		Total:          bill.Total.String(),
		TotalFormatted: f.FormatDecimal(bill.Total),
	}
	for i, line := range bill.Lines {
		out.Lines[i] = types.LineDTO{
			Category:  string(line.Category),
			ID:        line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			Amount:    line.Amount.String(),
			Missing:   line.Missing,
		}
	}
	if budget > 0 {
		out.Remaining = bill.Remaining(budget).String()
	}
	return out
}

// GenerateToDTO maps a generation result and its bill
func GenerateToDTO(res generator.Result, bill types.BillDTO) types.GenerateResponse {
	return types.GenerateResponse{
		Selection:   SelectionToDTO(res.Selection),
		Source:      string(res.Source),
		TemplateKey: res.TemplateKey,
		Bill:        bill,
	}
}

// OptionsToDTO maps a resolver answer
func OptionsToDTO(opts compat.Options) types.OptionsResponse {
	return types.OptionsResponse{
		Category: string(opts.Category),
		Locked:   opts.Locked,
		Empty:    opts.Empty(),
		Filtered: opts.Filtered,
		Records:  RecordsToDTO(opts.Records),
	}
}
