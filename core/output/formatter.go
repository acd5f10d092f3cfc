// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pcbuild/core/compat"
	"pcbuild/core/generator"
	"pcbuild/core/pricing"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON:
		return f, nil
	case "":
		return FormatCLI, nil
	default:
		return "", errors.Inputf("unknown output format %q (want cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderReport writes a priced build
	RenderReport(w io.Writer, report *Report) error

	// RenderOptions writes the choices for one category
	RenderOptions(w io.Writer, opts compat.Options) error

	// RenderCatalog writes the records of the given categories
	RenderCatalog(w io.Writer, c types.Catalog, categories []types.Category) error

	// RenderTemplates writes curated selections
	RenderTemplates(w io.Writer, t types.ConfigTemplate) error
}

// Report is a priced build, optionally generated and measured against a budget
type Report struct {
	// Request is set when the selection was generated
	Request *generator.Request `json:"request,omitempty"`

	Source      generator.Source `json:"source,omitempty"`
	TemplateKey string           `json:"templateKey,omitempty"`

	Selection types.Selection `json:"selection"`
	Bill      pricing.Bill    `json:"bill"`

	// Budget is the tier in millions; zero means no budget
	Budget int `json:"budget,omitempty"`
}

// NewReport prices a generation result
func NewReport(c types.Catalog, req generator.Request, res generator.Result) *Report {
	return &Report{
		Request:     &req,
		Source:      res.Source,
		TemplateKey: res.TemplateKey,
		Selection:   res.Selection,
		Bill:        pricing.Breakdown(c, res.Selection),
		Budget:      req.Budget,
	}
}

// TotalReport prices a hand-made selection
func TotalReport(c types.Catalog, sel types.Selection, budget int) *Report {
	return &Report{
		Selection: sel,
		Bill:      pricing.Breakdown(c, sel),
		Budget:    budget,
	}
}

// Remaining returns the budget left; ok is false without a budget
func (r *Report) Remaining() (decimal.Decimal, bool) {
	if r.Budget <= 0 {
		return decimal.Zero, false
	}
	return r.Bill.Remaining(r.Budget), true
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry with the CLI and JSON formatters
func NewRegistry(money *pricing.Formatter, noColor bool) *Registry {
	r := &Registry{formatters: map[Format]Formatter{}}
	r.Register(NewCLIFormatter(money, noColor))
	r.Register(NewJSONFormatter(money))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Inputf("no formatter for %q", format)
	}
	return f, nil
}

// Formats returns the registered formats, sorted
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// templateRow is one flattened template triple
type templateRow struct {
	Brand     types.Brand
	Game      string
	BudgetKey string
	Selection types.Selection
}

// flatten lists template triples by brand, game and budget tier
func flatten(t types.ConfigTemplate) []templateRow {
	var rows []templateRow
	for brand, games := range t {
		for game, budgets := range games {
			for key, sel := range budgets {
				rows = append(rows, templateRow{brand, game, key, sel})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		if a.Game != b.Game {
			return a.Game < b.Game
		}
		ta, _ := types.ParseBudgetKey(a.BudgetKey)
		tb, _ := types.ParseBudgetKey(b.BudgetKey)
		if ta != tb {
			return ta < tb
		}
		return a.BudgetKey < b.BudgetKey
	})
	return rows
}

func quantity(line pricing.Line) string {
	if line.Missing {
		return "-"
	}
	return fmt.Sprintf("%d", line.Quantity)
}
