// Package payment provides payment and receipt vouchers.
// A receipt is money in (customer pays an invoice), a payment is money
// out (supplier, expense). Both share the voucher shape.
package payment

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/entity"
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
)

// Kind distinguishes money direction.
type Kind string

const (
	KindPayment Kind = "PAYMENT"
	KindReceipt Kind = "RECEIPT"
)

// NumberPrefix returns the voucher number prefix for the kind.
func (k Kind) NumberPrefix() string {
	if k == KindReceipt {
		return "RCP"
	}
	return "PAY"
}

// Mode is the settlement instrument.
type Mode string

const (
	ModeCash   Mode = "Cash"
	ModeBank   Mode = "Bank"
	ModeUPI    Mode = "UPI"
	ModeCheque Mode = "Cheque"
	ModeCard   Mode = "Card"
)

var validModes = map[Mode]bool{
	ModeCash:   true,
	ModeBank:   true,
	ModeUPI:    true,
	ModeCheque: true,
	ModeCard:   true,
}

// Payment is a payment or receipt voucher.
type Payment struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`
	Mode Mode `db:"mode" json:"mode"`

	PartyID   id.ID  `db:"party_id" json:"partyId"`
	PartyName string `db:"party_name" json:"partyName,omitempty"`

	// InvoiceID links a receipt to the invoice it settles. Optional:
	// on-account receipts and outgoing payments have none.
	InvoiceID *id.ID `db:"invoice_id" json:"invoiceId,omitempty"`

	Amount types.Money `db:"amount" json:"amount"`

	// AppliedAmount is how much of a linked receipt actually reduced
	// the invoice balance (overpayment leaves a remainder on account)
	AppliedAmount types.Money `db:"applied_amount" json:"appliedAmount"`

	// Reference holds the instrument detail: UTR, cheque number
	Reference string `db:"reference" json:"reference,omitempty"`
}

// New creates a new voucher.
func New(companyID, partyID id.ID, kind Kind) *Payment {
	return &Payment{
		Document: entity.NewDocument(companyID),
		Kind:     kind,
		Mode:     ModeCash,
		PartyID:  partyID,
	}
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	switch p.Kind {
	case KindPayment, KindReceipt:
	default:
		return apperror.NewValidation("invalid voucher kind").
			WithDetail("field", "kind").
			WithDetail("value", string(p.Kind))
	}

	if !validModes[p.Mode] {
		return apperror.NewValidation("invalid payment mode").
			WithDetail("field", "mode").
			WithDetail("value", string(p.Mode))
	}

	if id.IsNil(p.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}

	if !p.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount").
			WithDetail("value", p.Amount.String())
	}

	if p.InvoiceID != nil && p.Kind != KindReceipt {
		return apperror.NewValidation("only receipts can settle an invoice").
			WithDetail("field", "invoiceId")
	}

	return nil
}

// ToMap renders the voucher as a generic mapping (audit log payload
// format).
func (p *Payment) ToMap() entity.Attributes {
	m := entity.Attributes{
		"id":             p.ID.String(),
		"company_id":     p.CompanyID.String(),
		"number":         p.Number,
		"date":           p.Date.Format("2006-01-02"),
		"kind":           string(p.Kind),
		"mode":           string(p.Mode),
		"party_id":       p.PartyID.String(),
		"party_name":     p.PartyName,
		"amount":         p.Amount.String(),
		"applied_amount": p.AppliedAmount.String(),
	}
	if p.InvoiceID != nil {
		m["invoice_id"] = p.InvoiceID.String()
	}
	return m
}
