package invoice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/id"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItem(qty, rate, discountPct, taxRate string) Item {
	pid := id.New()
	return Item{
		ProductID:       &pid,
		Quantity:        dec(qty),
		Rate:            dec(rate),
		DiscountPercent: dec(discountPct),
		TaxRate:         dec(taxRate),
	}
}

func TestRecalculate_SameState(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.BillType = BillCredit
	inv.AddItem(testItem("2", "500", "10", "18"))
	inv.Recalculate()

	if !inv.Subtotal.Equal(dec("1000")) {
		t.Errorf("subtotal = %s, want 1000", inv.Subtotal)
	}
	if !inv.TotalDiscount.Equal(dec("100")) {
		t.Errorf("discount = %s, want 100", inv.TotalDiscount)
	}
	if !inv.TotalTax.Equal(dec("162")) {
		t.Errorf("tax = %s, want 162 (18%% of 900)", inv.TotalTax)
	}
	if !inv.CGST.Equal(dec("81")) || !inv.SGST.Equal(dec("81")) {
		t.Errorf("cgst/sgst = %s/%s, want 81/81", inv.CGST, inv.SGST)
	}
	if !inv.IGST.IsZero() {
		t.Errorf("igst = %s, want 0", inv.IGST)
	}
	if !inv.GrandTotal.Equal(dec("1062")) {
		t.Errorf("grand total = %s, want 1062", inv.GrandTotal)
	}
	if !inv.RoundOff.IsZero() {
		t.Errorf("round off = %s, want 0", inv.RoundOff)
	}
	if !inv.BalanceDue.Equal(inv.GrandTotal) {
		t.Errorf("credit bill balance = %s, want grand total", inv.BalanceDue)
	}
	if inv.Status != StatusUnpaid {
		t.Errorf("status = %s, want Unpaid", inv.Status)
	}
}

func TestRecalculate_Interstate(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.TaxType = TaxGSTDifferentState
	inv.AddItem(testItem("2", "500", "10", "18"))
	inv.Recalculate()

	if !inv.IGST.Equal(dec("162")) {
		t.Errorf("igst = %s, want 162", inv.IGST)
	}
	if !inv.CGST.IsZero() || !inv.SGST.IsZero() {
		t.Errorf("cgst/sgst = %s/%s, want 0/0", inv.CGST, inv.SGST)
	}

	// Legacy display string splits the same way.
	if !TaxType("GST - Other State").IsInterstate() {
		t.Error("Other State must count as interstate")
	}
}

func TestRecalculate_NonGST(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.TaxType = TaxNonGST
	inv.AddItem(testItem("2", "500", "10", "18"))
	inv.Recalculate()

	if !inv.TotalTax.IsZero() || !inv.CGST.IsZero() || !inv.SGST.IsZero() || !inv.IGST.IsZero() {
		t.Errorf("non-GST invoice carried tax: total=%s cgst=%s sgst=%s igst=%s",
			inv.TotalTax, inv.CGST, inv.SGST, inv.IGST)
	}
	if !inv.GrandTotal.Equal(dec("900")) {
		t.Errorf("grand total = %s, want 900", inv.GrandTotal)
	}
	if !inv.Items[0].TaxAmount.IsZero() {
		t.Errorf("line tax = %s, want 0", inv.Items[0].TaxAmount)
	}
	if !inv.Items[0].Amount.Equal(dec("900")) {
		t.Errorf("line amount = %s, want 900", inv.Items[0].Amount)
	}
}

func TestRecalculate_RoundOff(t *testing.T) {
	// 1 x 99.50 @ 18% -> taxable 99.50, tax 17.91, pre-round 117.41
	inv := New(id.New(), id.New())
	inv.AddItem(testItem("1", "99.50", "0", "18"))
	inv.Recalculate()

	if !inv.GrandTotal.Equal(dec("117")) {
		t.Errorf("grand total = %s, want 117", inv.GrandTotal)
	}
	if !inv.RoundOff.Equal(dec("-0.41")) {
		t.Errorf("round off = %s, want -0.41", inv.RoundOff)
	}
	// subtotal - discount + tax + round_off == grand_total
	check := inv.Subtotal.Sub(inv.TotalDiscount).Add(inv.TotalTax).Add(inv.RoundOff)
	if !check.Equal(inv.GrandTotal) {
		t.Errorf("identity broken: %s != %s", check, inv.GrandTotal)
	}
}

func TestRecalculate_OddTaxSplit(t *testing.T) {
	// taxable 100.33 @ 5% -> tax 5.02, halves 2.51 each
	inv := New(id.New(), id.New())
	inv.AddItem(testItem("1", "100.33", "0", "5"))
	inv.Recalculate()

	if !inv.TotalTax.Equal(dec("5.02")) {
		t.Errorf("tax = %s, want 5.02", inv.TotalTax)
	}
	if !inv.CGST.Equal(dec("2.51")) || !inv.SGST.Equal(dec("2.51")) {
		t.Errorf("cgst/sgst = %s/%s, want 2.51/2.51", inv.CGST, inv.SGST)
	}
}

func TestRecalculate_OddPaisaTaxSplit(t *testing.T) {
	// taxable 100.50 @ 5% -> tax 5.03, each half rounds 2.515 up to
	// 2.52, so the display split carries one paisa more than the tax.
	// The grand total and round_off reconcile against the unsplit tax.
	inv := New(id.New(), id.New())
	inv.AddItem(testItem("1", "100.50", "0", "5"))
	inv.Recalculate()

	if !inv.TotalTax.Equal(dec("5.03")) {
		t.Errorf("tax = %s, want 5.03", inv.TotalTax)
	}
	if !inv.CGST.Equal(dec("2.52")) || !inv.SGST.Equal(dec("2.52")) {
		t.Errorf("cgst/sgst = %s/%s, want 2.52/2.52", inv.CGST, inv.SGST)
	}
	if !inv.CGST.Add(inv.SGST).Sub(inv.TotalTax).Equal(dec("0.01")) {
		t.Errorf("split residual = %s, want 0.01", inv.CGST.Add(inv.SGST).Sub(inv.TotalTax))
	}

	// 100.50 + 5.03 = 105.53 rounds up to 106.
	if !inv.GrandTotal.Equal(dec("106")) {
		t.Errorf("grand total = %s, want 106", inv.GrandTotal)
	}
	if !inv.RoundOff.Equal(dec("0.47")) {
		t.Errorf("round off = %s, want 0.47", inv.RoundOff)
	}
	check := inv.Subtotal.Sub(inv.TotalDiscount).Add(inv.TotalTax).Add(inv.RoundOff)
	if !check.Equal(inv.GrandTotal) {
		t.Errorf("identity broken: %s != %s", check, inv.GrandTotal)
	}
}

func TestItemRecalculate_DirectDiscountAmount(t *testing.T) {
	it := testItem("2", "500", "10", "18")
	it.DiscountAmount = dec("50")
	it.Recalculate()

	if !it.DiscountAmount.Equal(dec("50")) {
		t.Errorf("explicit discount amount overridden: %s", it.DiscountAmount)
	}
	if !it.TaxAmount.Equal(dec("171")) {
		t.Errorf("tax = %s, want 171 (18%% of 950)", it.TaxAmount)
	}
}

func TestRecalculate_CashBalance(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.BillType = BillCash
	inv.AddItem(testItem("1", "100", "0", "18"))
	inv.Recalculate()

	if !inv.BalanceDue.IsZero() {
		t.Errorf("cash bill balance = %s, want 0", inv.BalanceDue)
	}
	if inv.Status != StatusPaid {
		t.Errorf("status = %s, want Paid", inv.Status)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		grand   string
		balance string
		want    Status
	}{
		{"fully paid", "1062", "0", StatusPaid},
		{"overpaid clamps to paid", "1062", "-1", StatusPaid},
		{"partially paid", "1062", "500", StatusPartiallyPaid},
		{"untouched", "1062", "1062", StatusUnpaid},
		{"zero total never paid", "0", "0", StatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(dec(tt.grand), dec(tt.balance)); got != tt.want {
				t.Errorf("StatusFor(%s, %s) = %s, want %s", tt.grand, tt.balance, got, tt.want)
			}
		})
	}
}

func TestApplyReceipt(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.BillType = BillCredit
	inv.AddItem(testItem("2", "500", "10", "18"))
	inv.Recalculate()

	applied := inv.ApplyReceipt(dec("500"))
	if !applied.Equal(dec("500")) {
		t.Errorf("applied = %s, want 500", applied)
	}
	if inv.Status != StatusPartiallyPaid {
		t.Errorf("status = %s, want Partially Paid", inv.Status)
	}

	// Overpayment clamps at zero balance.
	applied = inv.ApplyReceipt(dec("1000"))
	if !applied.Equal(dec("562")) {
		t.Errorf("applied = %s, want 562", applied)
	}
	if !inv.BalanceDue.IsZero() {
		t.Errorf("balance = %s, want 0", inv.BalanceDue)
	}
	if inv.Status != StatusPaid {
		t.Errorf("status = %s, want Paid", inv.Status)
	}
}

func TestValidate_Invoice(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.AddItem(testItem("1", "100", "0", "18"))
	if err := inv.Validate(context.Background()); err != nil {
		t.Fatalf("valid invoice rejected: %v", err)
	}

	empty := New(id.New(), id.New())
	if err := empty.Validate(context.Background()); err == nil {
		t.Error("invoice without items must fail validation")
	}

	bad := New(id.New(), id.New())
	bad.AddItem(testItem("0", "100", "0", "18"))
	if err := bad.Validate(context.Background()); err == nil {
		t.Error("zero quantity line must fail validation")
	}
}

func TestValidate_FreeTextLine(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.AddItem(Item{
		ProductName: "Labour charges",
		Quantity:    dec("1"),
		Rate:        dec("500"),
		TaxRate:     dec("18"),
	})
	inv.Recalculate()
	if err := inv.Validate(context.Background()); err != nil {
		t.Fatalf("free-text line rejected: %v", err)
	}

	// A line with neither a product nor a name is meaningless.
	blank := New(id.New(), id.New())
	blank.AddItem(Item{Quantity: dec("1"), Rate: dec("100")})
	if err := blank.Validate(context.Background()); err == nil {
		t.Error("line without product and name must fail validation")
	}
}

func TestStockDeltas_FreeTextLineSkipped(t *testing.T) {
	inv := New(id.New(), id.New())
	inv.AddItem(testItem("2", "500", "0", "18"))
	inv.AddItem(Item{ProductName: "Delivery charges", Quantity: dec("1"), Rate: dec("200")})

	deltas := inv.StockDeltas()
	if len(deltas) != 2 {
		t.Fatalf("deltas = %d, want 2", len(deltas))
	}
	if deltas[0].ProductID == nil {
		t.Error("stocked line lost its product id")
	}
	if deltas[1].ProductID != nil {
		t.Error("free-text line must carry a nil product id so the batch skips it")
	}
}
