package tuning

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Literal values only: the file has no variables or functions, so an
// expression is evaluated with a nil context.

func (d *decoder) value(attr *hcl.Attribute) (cty.Value, bool) {
	if attr == nil {
		return cty.NilVal, false
	}
	val, diags := attr.Expr.Value(nil)
	d.diags = append(d.diags, diags...)
	if diags.HasErrors() {
		return cty.NilVal, false
	}
	if !val.IsKnown() || val.IsNull() {
		d.fail(attr, "value must be a known, non-null literal")
		return cty.NilVal, false
	}
	return val, true
}

func (d *decoder) str(attr *hcl.Attribute, dst *string) {
	val, ok := d.value(attr)
	if !ok {
		return
	}
	if val.Type() != cty.String {
		d.fail(attr, fmt.Sprintf("want a string, got %s", val.Type().FriendlyName()))
		return
	}
	*dst = val.AsString()
}

func (d *decoder) number(attr *hcl.Attribute, dst *int) {
	val, ok := d.value(attr)
	if !ok {
		return
	}
	if val.Type() != cty.Number {
		d.fail(attr, fmt.Sprintf("want a number, got %s", val.Type().FriendlyName()))
		return
	}
	bf := val.AsBigFloat()
	n, acc := bf.Int64()
	if !bf.IsInt() || acc != 0 {
		d.fail(attr, "want a whole number")
		return
	}
	*dst = int(n)
}

func (d *decoder) strs(attr *hcl.Attribute, dst *[]string) {
	val, ok := d.value(attr)
	if !ok {
		return
	}
	t := val.Type()
	if !(t.IsListType() || t.IsTupleType() || t.IsSetType()) {
		d.fail(attr, fmt.Sprintf("want a list of strings, got %s", t.FriendlyName()))
		return
	}
	out := make([]string, 0, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		_, v := it.Element()
		if !v.IsKnown() || v.IsNull() || v.Type() != cty.String {
			d.fail(attr, "want a list of strings")
			return
		}
		out = append(out, v.AsString())
	}
	*dst = out
}

func (d *decoder) fail(attr *hcl.Attribute, detail string) {
	d.diags = append(d.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid value for %q", attr.Name),
		Detail:   detail,
		Subject:  attr.Expr.Range().Ptr(),
	})
}
