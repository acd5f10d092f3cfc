// Package pricing totals a selection against a catalog snapshot.
// Unknown ids are priced at zero and flagged, never reported as errors.
package pricing

import (
	"github.com/shopspring/decimal"

	"pcbuild/core/types"
)

// million is the currency value of one budget tier step
var million = decimal.NewFromInt(1_000_000)

// Line is one bill-of-materials row
type Line struct {
	Category  types.Category  `json:"category"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`

	// Missing marks an id the catalog does not carry ("unknown component")
	Missing bool `json:"missing,omitempty"`
}

// Bill is a priced selection
type Bill struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// UnknownName is shown for ids the catalog does not carry
const UnknownName = "unknown component"

// Breakdown prices every chosen category in bill-of-materials order
func Breakdown(c types.Catalog, sel types.Selection) Bill {
	bill := Bill{Lines: []Line{}, Total: decimal.Zero}
	for _, category := range types.Categories {
		id, ok := sel.Get(category)
		if !ok {
			continue
		}
		line := priceLine(c, category, id)
		bill.Lines = append(bill.Lines, line)
		bill.Total = bill.Total.Add(line.Amount)
	}
	return bill
}

func priceLine(c types.Catalog, category types.Category, id string) Line {
	rec, ok := c.Lookup(category, id)
	if !ok {
		return Line{
			Category:  category,
			ID:        id,
			Name:      UnknownName,
			UnitPrice: decimal.Zero,
			Amount:    decimal.Zero,
			Missing:   true,
		}
	}
	unit := decimal.NewFromInt(rec.Price)
	if unit.IsNegative() {
		unit = decimal.Zero
	}
	qty := rec.EffectiveQuantity()
	return Line{
		Category:  category,
		ID:        id,
		Name:      rec.Name,
		Quantity:  qty,
		UnitPrice: unit,
		Amount:    unit.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// Total returns Σ price × quantity over the selection. Missing ids add zero.
func Total(c types.Catalog, sel types.Selection) int64 {
	return Breakdown(c, sel).Total.IntPart()
}

// Missing returns the categories whose ids the catalog does not carry
func (b Bill) Missing() []types.Category {
	var out []types.Category
	for _, l := range b.Lines {
		if l.Missing {
			out = append(out, l.Category)
		}
	}
	return out
}

// BudgetAmount converts a tier in millions to a currency amount
func BudgetAmount(tier int) decimal.Decimal {
	return decimal.NewFromInt(int64(tier)).Mul(million)
}

// Remaining returns the budget left after the bill; negative means over budget
func (b Bill) Remaining(tier int) decimal.Decimal {
	return BudgetAmount(tier).Sub(b.Total)
}
