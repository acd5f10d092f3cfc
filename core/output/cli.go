package output

import (
	"fmt"
	"io"
	"strings"

	"pcbuild/core/compat"
	"pcbuild/core/inference"
	"pcbuild/core/pricing"
	"pcbuild/core/types"
	"pcbuild/core/ui"
)

// CLIFormatter renders tables for a terminal
type CLIFormatter struct {
	money   *pricing.Formatter
	noColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(money *pricing.Formatter, noColor bool) *CLIFormatter {
	if money == nil {
		money = pricing.DefaultFormatter()
	}
	return &CLIFormatter{money: money, noColor: noColor}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderReport writes the bill of materials and its summary
func (f *CLIFormatter) RenderReport(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.noColor)

	if report.Request != nil {
		out.Header("Generated build")
		out.Println("  Budget: %dM  CPU: %s  Game: %s", report.Request.Budget, report.Request.Brand, report.Request.Game)
		switch {
		case report.TemplateKey != "":
			out.Println("  Source: %s (%s)", report.Source, report.TemplateKey)
		default:
			out.Println("  Source: %s", report.Source)
		}
		out.Println("")
	} else {
		out.Header("Build total")
	}

	if len(report.Bill.Lines) == 0 {
		out.Warning("Nothing selected")
		return nil
	}

	table := out.NewTable("CATEGORY", "ID", "NAME", "QTY", "UNIT", "AMOUNT").AlignRight(3, 4, 5)
	for _, line := range report.Bill.Lines {
		table.AddRow(
			line.Category.String(),
			line.ID,
			truncate(line.Name, 40),
			quantity(line),
			f.money.FormatDecimal(line.UnitPrice),
			f.money.FormatDecimal(line.Amount),
		)
	}
	table.Render()

	summary := out.NewBillSummary()
	summary.Total = f.money.FormatDecimal(report.Bill.Total)
	summary.Missing = len(report.Bill.Missing())
	if remaining, ok := report.Remaining(); ok {
		summary.Budget = f.money.FormatDecimal(pricing.BudgetAmount(report.Budget))
		if remaining.IsNegative() {
			summary.OverBy = f.money.FormatDecimal(remaining.Neg())
		} else {
			summary.Remaining = f.money.FormatDecimal(remaining)
		}
	}
	summary.Render()
	return nil
}

// RenderOptions writes the option list for one category
func (f *CLIFormatter) RenderOptions(w io.Writer, opts compat.Options) error {
	out := ui.NewWriter(w, f.noColor)
	out.Header("Options: " + opts.Category.String())

	switch {
	case opts.Locked:
		out.Warning("Locked: choose %s first", upstreamHint(opts.Category))
		return nil
	case opts.Empty():
		out.Error("No compatible item")
		return nil
	}
	if opts.Filtered {
		out.Info("Filtered by the current selection")
	}
	f.records(out, opts.Category, opts.Records)
	return nil
}

// RenderCatalog writes one table per category
func (f *CLIFormatter) RenderCatalog(w io.Writer, c types.Catalog, categories []types.Category) error {
	out := ui.NewWriter(w, f.noColor)
	for _, category := range categories {
		records := c.Records(category)
		out.SubHeader(fmt.Sprintf("%s (%d)", category, len(records)))
		if len(records) == 0 {
			out.Println("  (none)")
			out.Println("")
			continue
		}
		f.records(out, category, records)
		out.Println("")
	}
	return nil
}

// RenderTemplates writes one row per brand, game and budget
func (f *CLIFormatter) RenderTemplates(w io.Writer, t types.ConfigTemplate) error {
	out := ui.NewWriter(w, f.noColor)
	rows := flatten(t)
	if len(rows) == 0 {
		out.Warning("No templates")
		return nil
	}
	table := out.NewTable("BRAND", "GAME", "BUDGET", "CPU", "VGA", "PARTS")
	for _, row := range rows {
		table.AddRow(
			row.Brand.String(),
			row.Game,
			row.BudgetKey,
			orDash(row.Selection[types.CategoryCPU]),
			orDash(row.Selection[types.CategoryVGA]),
			fmt.Sprintf("%d", len(row.Selection)),
		)
	}
	table.Render()
	return nil
}

func (f *CLIFormatter) records(out *ui.Writer, category types.Category, records []types.ComponentRecord) {
	table := out.NewTable("ID", "NAME", "PRICE", "DETAIL").AlignRight(2)
	for _, rec := range records {
		table.AddRow(rec.ID, truncate(rec.Name, 48), f.money.Format(rec.Price), detail(category, rec))
	}
	table.Render()
}

// detail summarizes the compatibility-relevant attributes of a record
func detail(category types.Category, rec types.ComponentRecord) string {
	var parts []string
	hint := inference.Explain(category, rec)
	if hint.Socket != "" {
		parts = append(parts, hint.Socket)
	}
	if hint.Memory != "" {
		parts = append(parts, hint.Memory)
	}
	switch category {
	case types.CategoryVGA:
		if rec.Tier > 0 {
			parts = append(parts, fmt.Sprintf("tier %d", rec.Tier))
		}
	case types.CategoryPSU:
		if watts := inference.PSUWattage(rec); watts > 0 {
			parts = append(parts, fmt.Sprintf("%dW", watts))
		}
	case types.CategoryRAM, types.CategorySSD, types.CategoryHDD:
		if gb := inference.CapacityGB(rec); gb > 0 {
			parts = append(parts, fmt.Sprintf("%dGB", gb))
		}
	case types.CategoryCPUCooler:
		if rec.CoolerType != "" {
			parts = append(parts, string(rec.CoolerType))
		}
		if len(rec.Sockets) > 0 {
			parts = append(parts, strings.Join(rec.Sockets, "/"))
		}
	}
	return strings.Join(parts, " ")
}

func upstreamHint(category types.Category) string {
	switch category {
	case types.CategoryMainboard, types.CategoryCPUCooler:
		return "a CPU"
	case types.CategoryRAM:
		return "a mainboard"
	default:
		return "the parts it depends on"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string to max runes
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
