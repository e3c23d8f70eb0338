package dto

import (
	"time"

	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/documents/payment"
)

// --- Request DTOs ---

// CreatePaymentRequest is the request body for recording a voucher.
// Number is optional; when empty the server assigns the next daily
// voucher number for the kind.
type CreatePaymentRequest struct {
	Number    string        `json:"number"`
	Date      *time.Time    `json:"date"`
	Kind      payment.Kind  `json:"kind" binding:"required"`
	Mode      payment.Mode  `json:"mode"`
	PartyID   string        `json:"partyId" binding:"required"`
	InvoiceID *string       `json:"invoiceId"`
	Amount    types.Money   `json:"amount" binding:"required"`
	Reference string        `json:"reference"`
	Notes     string        `json:"notes"`
}

// ToEntity converts the DTO to a domain voucher scoped to a company.
func (r *CreatePaymentRequest) ToEntity(companyID id.ID) (*payment.Payment, error) {
	partyID, err := id.Parse(r.PartyID)
	if err != nil {
		return nil, err
	}

	doc := payment.New(companyID, partyID, r.Kind)
	doc.Number = r.Number
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Mode != "" {
		doc.Mode = r.Mode
	}
	if r.InvoiceID != nil && *r.InvoiceID != "" {
		invoiceID, err := id.Parse(*r.InvoiceID)
		if err != nil {
			return nil, err
		}
		doc.InvoiceID = &invoiceID
	}
	doc.Amount = r.Amount
	doc.Reference = r.Reference
	doc.Notes = r.Notes

	return doc, nil
}

// --- Response DTOs ---

// PaymentResponse is the response body for a voucher.
type PaymentResponse struct {
	DocumentResponse
	Kind          payment.Kind `json:"kind"`
	Mode          payment.Mode `json:"mode"`
	PartyID       string       `json:"partyId"`
	PartyName     string       `json:"partyName,omitempty"`
	InvoiceID     string       `json:"invoiceId,omitempty"`
	Amount        types.Money  `json:"amount"`
	AppliedAmount types.Money  `json:"appliedAmount"`
	Reference     string       `json:"reference,omitempty"`
}

// FromPayment creates response DTO from domain entity.
func FromPayment(doc *payment.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		DocumentResponse: FromDocument(doc.Document),
		Kind:             doc.Kind,
		Mode:             doc.Mode,
		PartyID:          doc.PartyID.String(),
		PartyName:        doc.PartyName,
		Amount:           doc.Amount,
		AppliedAmount:    doc.AppliedAmount,
		Reference:        doc.Reference,
	}
	if doc.InvoiceID != nil {
		resp.InvoiceID = doc.InvoiceID.String()
	}
	return resp
}
