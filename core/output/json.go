package output

import (
	"encoding/json"
	"io"

	"pcbuild/core/compat"
	"pcbuild/core/pricing"
	"pcbuild/core/types"
)

// JSONFormatter writes indented JSON
type JSONFormatter struct {
	money *pricing.Formatter
}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter(money *pricing.Formatter) *JSONFormatter {
	if money == nil {
		money = pricing.DefaultFormatter()
	}
	return &JSONFormatter{money: money}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonReport struct {
	*Report
	TotalFormatted string           `json:"totalFormatted"`
	Remaining      *string          `json:"remaining,omitempty"`
	Missing        []types.Category `json:"missing,omitempty"`
}

// RenderReport writes the report with formatted totals
func (f *JSONFormatter) RenderReport(w io.Writer, report *Report) error {
	out := jsonReport{
		Report:         report,
		TotalFormatted: f.money.FormatDecimal(report.Bill.Total),
		Missing:        report.Bill.Missing(),
	}
	if remaining, ok := report.Remaining(); ok {
		s := remaining.String()
		out.Remaining = &s
	}
	return encode(w, out)
}

// RenderOptions writes the resolver answer
func (f *JSONFormatter) RenderOptions(w io.Writer, opts compat.Options) error {
	if opts.Records == nil {
		opts.Records = []types.ComponentRecord{}
	}
	return encode(w, struct {
		compat.Options
		Empty bool `json:"empty"`
	}{opts, opts.Empty()})
}

// RenderCatalog writes the selected categories keyed by id
func (f *JSONFormatter) RenderCatalog(w io.Writer, c types.Catalog, categories []types.Category) error {
	out := make(map[types.Category][]types.ComponentRecord, len(categories))
	for _, category := range categories {
		records := c.Records(category)
		if records == nil {
			records = []types.ComponentRecord{}
		}
		out[category] = records
	}
	return encode(w, out)
}

// RenderTemplates writes the template tree as stored
func (f *JSONFormatter) RenderTemplates(w io.Writer, t types.ConfigTemplate) error {
	if t == nil {
		t = types.ConfigTemplate{}
	}
	return encode(w, t)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
