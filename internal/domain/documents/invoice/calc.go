package invoice

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/core/types"
)

// Totals holds the computed invoice footer.
type Totals struct {
	Subtotal      types.Money
	TotalDiscount types.Money
	TotalTax      types.Money
	CGST          types.Money
	SGST          types.Money
	IGST          types.Money
	RoundOff      types.Money
	GrandTotal    types.Money
}

// ComputeTotals aggregates recalculated lines into the invoice footer.
//
// Same-state supplies split the tax into equal CGST and SGST halves,
// each rounded to 2 decimal places; any half-paisa residual is absorbed
// by the rounding of the grand total. Interstate supplies put the full
// tax into IGST. Non-GST invoices carry no components regardless of the
// per-line rates.
//
// The grand total is rounded to the nearest rupee and round_off records
// the adjustment, so grand_total is always integral and
// subtotal - discount + tax + round_off == grand_total holds exactly.
func ComputeTotals(taxType TaxType, items []Item) Totals {
	t := Totals{
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
		TotalTax:      decimal.Zero,
		CGST:          decimal.Zero,
		SGST:          decimal.Zero,
		IGST:          decimal.Zero,
	}

	for i := range items {
		t.Subtotal = t.Subtotal.Add(items[i].Base())
		t.TotalDiscount = t.TotalDiscount.Add(items[i].DiscountAmount)
		t.TotalTax = t.TotalTax.Add(items[i].TaxAmount)
	}

	switch {
	case taxType.IsNonGST():
		t.TotalTax = decimal.Zero
	case taxType.IsInterstate():
		t.IGST = t.TotalTax
	default:
		half := types.Round2(t.TotalTax.Div(decimal.NewFromInt(2)))
		t.CGST = half
		t.SGST = half
	}

	preRound := t.Subtotal.Sub(t.TotalDiscount).Add(t.TotalTax)
	t.GrandTotal = types.RoundWhole(preRound)
	t.RoundOff = t.GrandTotal.Sub(preRound)

	return t
}
