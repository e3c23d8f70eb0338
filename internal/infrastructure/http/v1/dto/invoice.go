package dto

import (
	"time"

	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/documents/invoice"
)

// --- Request DTOs ---

// InvoiceItemRequest is one invoice line in a create/update request.
// Amounts and tax are always recomputed server-side; only quantity,
// rate, discount and rate inputs are accepted. ProductID is optional:
// a line with only a product name is a free-text charge.
type InvoiceItemRequest struct {
	ProductID       *string        `json:"productId"`
	ProductName     string         `json:"productName"`
	HSNCode         string         `json:"hsnCode"`
	Unit            string         `json:"unit"`
	Quantity        types.Quantity `json:"quantity" binding:"required"`
	Rate            types.Money    `json:"rate"`
	DiscountPercent types.Money    `json:"discountPercent"`
	DiscountAmount  types.Money    `json:"discountAmount"`
	TaxRate         types.Money    `json:"taxRate"`
}

func (r *InvoiceItemRequest) toItem() (invoice.Item, error) {
	var productID *id.ID
	if r.ProductID != nil && *r.ProductID != "" {
		parsed, err := id.Parse(*r.ProductID)
		if err != nil {
			return invoice.Item{}, err
		}
		productID = &parsed
	}
	return invoice.Item{
		ProductID:       productID,
		ProductName:     r.ProductName,
		HSNCode:         r.HSNCode,
		Unit:            r.Unit,
		Quantity:        r.Quantity,
		Rate:            r.Rate,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		TaxRate:         r.TaxRate,
	}, nil
}

// CreateInvoiceRequest is the request body for creating an invoice.
// Number is optional; when empty the server assigns the next one.
// TaxType is optional; when empty it is derived from company and party
// GSTIN state codes.
type CreateInvoiceRequest struct {
	Number   string               `json:"number"`
	Date     *time.Time           `json:"date"`
	PartyID  string               `json:"partyId" binding:"required"`
	TaxType  invoice.TaxType      `json:"taxType"`
	BillType invoice.BillType     `json:"billType"`
	Notes    string               `json:"notes"`
	Items    []InvoiceItemRequest `json:"items" binding:"required"`
}

// ToEntity converts the DTO to a domain invoice scoped to a company.
func (r *CreateInvoiceRequest) ToEntity(companyID id.ID) (*invoice.Invoice, error) {
	partyID, err := id.Parse(r.PartyID)
	if err != nil {
		return nil, err
	}

	doc := invoice.New(companyID, partyID)
	doc.Number = r.Number
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.TaxType = r.TaxType
	if r.BillType != "" {
		doc.BillType = r.BillType
	}
	doc.Notes = r.Notes

	for _, ir := range r.Items {
		item, err := ir.toItem()
		if err != nil {
			return nil, err
		}
		doc.AddItem(item)
	}

	return doc, nil
}

// UpdateInvoiceRequest is the request body for replacing an invoice.
// The full line set is sent every time; lines missing from the request
// are removed.
type UpdateInvoiceRequest struct {
	Date     *time.Time           `json:"date"`
	PartyID  string               `json:"partyId" binding:"required"`
	TaxType  invoice.TaxType      `json:"taxType"`
	BillType invoice.BillType     `json:"billType" binding:"required"`
	Notes    string               `json:"notes"`
	Items    []InvoiceItemRequest `json:"items" binding:"required"`
	Version  int                  `json:"version" binding:"required"`
}

// ApplyTo applies the update DTO onto the existing invoice.
func (r *UpdateInvoiceRequest) ApplyTo(doc *invoice.Invoice) error {
	partyID, err := id.Parse(r.PartyID)
	if err != nil {
		return err
	}

	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.PartyID = partyID
	doc.PartyName = "" // re-derived from the party on save
	doc.TaxType = r.TaxType
	doc.BillType = r.BillType
	doc.Notes = r.Notes
	doc.Version = r.Version

	doc.Items = doc.Items[:0]
	for _, ir := range r.Items {
		item, err := ir.toItem()
		if err != nil {
			return err
		}
		doc.AddItem(item)
	}

	return nil
}

// --- Response DTOs ---

// InvoiceResponse is the response body for an invoice with lines.
type InvoiceResponse struct {
	DocumentResponse
	PartyID       string           `json:"partyId"`
	PartyName     string           `json:"partyName"`
	TaxType       invoice.TaxType  `json:"taxType"`
	BillType      invoice.BillType `json:"billType"`
	Status        invoice.Status   `json:"status"`
	Subtotal      types.Money      `json:"subtotal"`
	TotalDiscount types.Money      `json:"totalDiscount"`
	TotalTax      types.Money      `json:"totalTax"`
	CGST          types.Money      `json:"cgst"`
	SGST          types.Money      `json:"sgst"`
	IGST          types.Money      `json:"igst"`
	RoundOff      types.Money      `json:"roundOff"`
	GrandTotal    types.Money      `json:"grandTotal"`
	BalanceDue    types.Money      `json:"balanceDue"`
	Items         []invoice.Item   `json:"items"`
}

// FromInvoice creates response DTO from domain entity.
func FromInvoice(doc *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		DocumentResponse: FromDocument(doc.Document),
		PartyID:          doc.PartyID.String(),
		PartyName:        doc.PartyName,
		TaxType:          doc.TaxType,
		BillType:         doc.BillType,
		Status:           doc.Status,
		Subtotal:         doc.Subtotal,
		TotalDiscount:    doc.TotalDiscount,
		TotalTax:         doc.TotalTax,
		CGST:             doc.CGST,
		SGST:             doc.SGST,
		IGST:             doc.IGST,
		RoundOff:         doc.RoundOff,
		GrandTotal:       doc.GrandTotal,
		BalanceDue:       doc.BalanceDue,
		Items:            doc.Items,
	}
}
