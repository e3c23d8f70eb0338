// Package company provides the Company catalog.
// A company is the billing entity that issues invoices; every product,
// party and document is scoped to one.
package company

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/entity"
	"gstbill/pkg/gstin"
)

// Company represents a billing entity.
type Company struct {
	entity.Catalog

	// GSTIN is the company GST registration number (optional for
	// unregistered businesses)
	GSTIN string `db:"gstin" json:"gstin,omitempty"`

	// StateCode is the 2-digit GST state code; derived from GSTIN when present
	StateCode string `db:"state_code" json:"stateCode,omitempty"`

	// Address lines
	AddressLine1 string `db:"address_line1" json:"addressLine1,omitempty"`
	AddressLine2 string `db:"address_line2" json:"addressLine2,omitempty"`
	City         string `db:"city" json:"city,omitempty"`
	Pincode      string `db:"pincode" json:"pincode,omitempty"`

	// Contact details
	Phone string `db:"phone" json:"phone,omitempty"`
	Email string `db:"email" json:"email,omitempty"`

	// InvoicePrefix is the prefix for invoice numbers (default "INV")
	InvoicePrefix string `db:"invoice_prefix" json:"invoicePrefix"`

	// BankDetails for invoice footers
	BankName      string `db:"bank_name" json:"bankName,omitempty"`
	BankAccount   string `db:"bank_account" json:"bankAccount,omitempty"`
	BankIFSC      string `db:"bank_ifsc" json:"bankIfsc,omitempty"`
}

// New creates a new Company with required fields.
func New(code, name string) *Company {
	return &Company{
		Catalog:       entity.NewCatalog(code, name),
		InvoicePrefix: "INV",
	}
}

// Validate implements entity.Validatable interface.
func (c *Company) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.GSTIN != "" {
		if !gstin.IsValid(c.GSTIN) {
			return apperror.NewValidation("invalid GSTIN").
				WithDetail("field", "gstin").
				WithDetail("value", c.GSTIN)
		}
	}

	return nil
}

// Normalize uppercases the GSTIN and fills StateCode from it.
func (c *Company) Normalize() {
	c.GSTIN = gstin.Normalize(c.GSTIN)
	if c.GSTIN != "" {
		c.StateCode = gstin.StateCode(c.GSTIN)
	}
	if c.InvoicePrefix == "" {
		c.InvoicePrefix = "INV"
	}
}

// IsGSTRegistered returns true when the company has a GSTIN.
func (c *Company) IsGSTRegistered() bool {
	return c.GSTIN != ""
}

// StateName returns the company state name from its GST state code.
func (c *Company) StateName() string {
	return gstin.StateName(c.StateCode)
}
