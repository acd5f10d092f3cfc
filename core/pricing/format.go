package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with locale thousands grouping and a currency
// suffix. Output depends only on the amount.
type Formatter struct {
	printer *message.Printer
	suffix  string
}

// NewFormatter creates a formatter. An unparseable locale falls back to
// Vietnamese.
func NewFormatter(locale, suffix string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Vietnamese
	}
	return &Formatter{printer: message.NewPrinter(tag), suffix: suffix}
}

// DefaultFormatter groups for Vietnamese and appends "₫"
func DefaultFormatter() *Formatter {
	return NewFormatter("vi", "₫")
}

// Format renders a whole-unit amount
func (f *Formatter) Format(amount int64) string {
	s := f.printer.Sprintf("%d", amount)
	if f.suffix == "" {
		return s
	}
	return s + " " + strings.TrimSpace(f.suffix)
}

// FormatDecimal renders a decimal amount, truncated to whole units
func (f *Formatter) FormatDecimal(amount decimal.Decimal) string {
	return f.Format(amount.IntPart())
}

// Format renders an amount with the default formatter
func Format(amount int64) string {
	return DefaultFormatter().Format(amount)
}
