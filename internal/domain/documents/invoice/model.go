// Package invoice provides the sales Invoice document.
// Totals, the GST split and the payment status are always computed,
// never accepted from the client.
package invoice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/entity"
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
)

// TaxType determines how the total tax is split between components.
// The display strings are stored as-is; matching is substring-based so
// legacy records saying "Other State" still split as interstate.
type TaxType string

const (
	TaxGSTSameState      TaxType = "GST - Same State"
	TaxGSTDifferentState TaxType = "GST - Different State"
	TaxNonGST            TaxType = "Non-GST"
)

// IsInterstate returns true for interstate supplies (IGST applies).
func (t TaxType) IsInterstate() bool {
	s := string(t)
	return strings.Contains(s, "Different State") || strings.Contains(s, "Other State")
}

// IsNonGST returns true when no GST component applies.
func (t TaxType) IsNonGST() bool {
	return strings.Contains(string(t), "Non-GST")
}

// BillType determines the initial balance of the invoice.
type BillType string

const (
	BillCash   BillType = "CASH"   // settled immediately, no balance due
	BillCredit BillType = "CREDIT" // full amount due until receipts arrive
)

// Status is the payment status of an invoice. Always derived from
// grand total and balance due.
type Status string

const (
	StatusPaid          Status = "Paid"
	StatusPartiallyPaid Status = "Partially Paid"
	StatusUnpaid        Status = "Unpaid"
)

// StatusFor derives the payment status. A zero-total invoice is never
// "Paid": there is nothing to pay, it reports "Unpaid" like a draft.
func StatusFor(grandTotal, balanceDue types.Money) Status {
	if !grandTotal.IsPositive() {
		return StatusUnpaid
	}
	if !balanceDue.IsPositive() {
		return StatusPaid
	}
	if balanceDue.LessThan(grandTotal) {
		return StatusPartiallyPaid
	}
	return StatusUnpaid
}

// Item represents a single invoice line.
type Item struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// ProductID is optional: free-text lines (labour, delivery charges)
	// carry only a name and never touch the stock ledger
	ProductID   *id.ID `db:"product_id" json:"productId,omitempty"`
	ProductName string `db:"product_name" json:"productName"`
	HSNCode     string `db:"hsn_code" json:"hsnCode,omitempty"`
	Unit        string `db:"unit" json:"unit,omitempty"`

	Quantity types.Quantity `db:"quantity" json:"quantity"`
	Rate     types.Money    `db:"rate" json:"rate"`

	// DiscountPercent is advisory; DiscountAmount is what totals use.
	// When DiscountAmount is zero it is derived from the percent.
	DiscountPercent types.Money `db:"discount_percent" json:"discountPercent"`
	DiscountAmount  types.Money `db:"discount_amount" json:"discountAmount"`

	// TaxRate is the GST percent for the line; TaxAmount is computed
	TaxRate   types.Money `db:"tax_rate" json:"taxRate"`
	TaxAmount types.Money `db:"tax_amount" json:"taxAmount"`

	// Amount is the line total: taxable value + tax
	Amount types.Money `db:"amount" json:"amount"`
}

// Base returns the undiscounted line value (quantity x rate, 2dp).
func (it *Item) Base() types.Money {
	return types.Round2(it.Quantity.Mul(it.Rate))
}

// TaxableValue returns the line value after discount.
func (it *Item) TaxableValue() types.Money {
	return it.Base().Sub(it.DiscountAmount)
}

// Recalculate computes the derived line fields.
func (it *Item) Recalculate() {
	base := it.Base()

	if it.DiscountAmount.IsZero() && it.DiscountPercent.IsPositive() {
		it.DiscountAmount = types.Round2(types.Percent(base, it.DiscountPercent))
	}

	taxable := base.Sub(it.DiscountAmount)
	it.TaxAmount = types.Round2(types.Percent(taxable, it.TaxRate))
	it.Amount = taxable.Add(it.TaxAmount)
}

// Invoice represents a sales invoice.
type Invoice struct {
	entity.Document

	// PartyID is the customer; PartyName is denormalized for display
	// and survives party renames on historical invoices
	PartyID   id.ID  `db:"party_id" json:"partyId"`
	PartyName string `db:"party_name" json:"partyName,omitempty"`

	TaxType  TaxType  `db:"tax_type" json:"taxType"`
	BillType BillType `db:"bill_type" json:"billType"`
	Status   Status   `db:"status" json:"status"`

	// Computed totals
	Subtotal      types.Money `db:"subtotal" json:"subtotal"`
	TotalDiscount types.Money `db:"total_discount" json:"totalDiscount"`
	TotalTax      types.Money `db:"total_tax" json:"totalTax"`
	CGST          types.Money `db:"cgst" json:"cgst"`
	SGST          types.Money `db:"sgst" json:"sgst"`
	IGST          types.Money `db:"igst" json:"igst"`
	RoundOff      types.Money `db:"round_off" json:"roundOff"`
	GrandTotal    types.Money `db:"grand_total" json:"grandTotal"`

	// BalanceDue is the unpaid remainder; receipts reduce it
	BalanceDue types.Money `db:"balance_due" json:"balanceDue"`

	// Table part: invoice lines
	Items []Item `db:"-" json:"items"`
}

// New creates a new invoice document.
func New(companyID, partyID id.ID) *Invoice {
	return &Invoice{
		Document: entity.NewDocument(companyID),
		PartyID:  partyID,
		TaxType:  TaxGSTSameState,
		BillType: BillCash,
		Items:    make([]Item, 0),
	}
}

// AddItem appends a line and renumbers.
func (inv *Invoice) AddItem(item Item) {
	if id.IsNil(item.LineID) {
		item.LineID = id.New()
	}
	item.LineNo = len(inv.Items) + 1
	inv.Items = append(inv.Items, item)
}

// Recalculate recomputes every line, the invoice totals, the opening
// balance for the bill type and the payment status.
func (inv *Invoice) Recalculate() {
	for i := range inv.Items {
		inv.Items[i].LineNo = i + 1
		inv.Items[i].Recalculate()
		if inv.TaxType.IsNonGST() {
			inv.Items[i].TaxAmount = decimal.Zero
			inv.Items[i].Amount = inv.Items[i].TaxableValue()
		}
	}

	totals := ComputeTotals(inv.TaxType, inv.Items)
	inv.Subtotal = totals.Subtotal
	inv.TotalDiscount = totals.TotalDiscount
	inv.TotalTax = totals.TotalTax
	inv.CGST = totals.CGST
	inv.SGST = totals.SGST
	inv.IGST = totals.IGST
	inv.RoundOff = totals.RoundOff
	inv.GrandTotal = totals.GrandTotal

	if inv.BillType == BillCash {
		inv.BalanceDue = decimal.Zero
	} else {
		inv.BalanceDue = inv.GrandTotal
	}
	inv.RefreshStatus()
}

// RefreshStatus re-derives the payment status from the current totals.
func (inv *Invoice) RefreshStatus() {
	inv.Status = StatusFor(inv.GrandTotal, inv.BalanceDue)
}

// ApplyReceipt reduces the balance due by the received amount, clamped
// at zero, and refreshes the status. Returns the amount actually
// applied against this invoice.
func (inv *Invoice) ApplyReceipt(amount types.Money) types.Money {
	applied := amount
	if applied.GreaterThan(inv.BalanceDue) {
		applied = inv.BalanceDue
	}
	inv.BalanceDue = inv.BalanceDue.Sub(applied)
	inv.RefreshStatus()
	return applied
}

// Validate implements entity.Validatable.
func (inv *Invoice) Validate(ctx context.Context) error {
	if err := inv.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(inv.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}

	switch inv.BillType {
	case BillCash, BillCredit:
	default:
		return apperror.NewValidation("invalid bill type").
			WithDetail("field", "billType").
			WithDetail("value", string(inv.BillType))
	}

	if len(inv.Items) == 0 {
		return apperror.NewValidation("at least one item is required").
			WithDetail("field", "items")
	}

	for i, item := range inv.Items {
		hasProduct := item.ProductID != nil && !id.IsNil(*item.ProductID)
		if !hasProduct && strings.TrimSpace(item.ProductName) == "" {
			return apperror.NewValidation("product or product name is required").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if !item.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
		if item.Rate.IsNegative() {
			return apperror.NewValidation("rate cannot be negative").
				WithDetail("field", "items").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// StockDeltas returns the per-line stock movements this invoice causes.
// Free-text lines keep their nil product id; the batch skips them.
func (inv *Invoice) StockDeltas() []StockDelta {
	deltas := make([]StockDelta, 0, len(inv.Items))
	for _, item := range inv.Items {
		deltas = append(deltas, StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return deltas
}

// StockDelta mirrors the stock register batch entry to avoid a
// dependency from documents onto the register package.
type StockDelta struct {
	ProductID *id.ID
	Quantity  types.Quantity
}

// ToMap renders the invoice header as a generic mapping (audit log
// payload format).
func (inv *Invoice) ToMap() entity.Attributes {
	return entity.Attributes{
		"id":             inv.ID.String(),
		"company_id":     inv.CompanyID.String(),
		"number":         inv.Number,
		"date":           inv.Date.Format("2006-01-02"),
		"party_id":       inv.PartyID.String(),
		"party_name":     inv.PartyName,
		"tax_type":       string(inv.TaxType),
		"bill_type":      string(inv.BillType),
		"status":         string(inv.Status),
		"subtotal":       inv.Subtotal.String(),
		"total_discount": inv.TotalDiscount.String(),
		"total_tax":      inv.TotalTax.String(),
		"cgst":           inv.CGST.String(),
		"sgst":           inv.SGST.String(),
		"igst":           inv.IGST.String(),
		"round_off":      inv.RoundOff.String(),
		"grand_total":    inv.GrandTotal.String(),
		"balance_due":    inv.BalanceDue.String(),
		"items":          len(inv.Items),
	}
}
