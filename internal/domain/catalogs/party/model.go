// Package party provides the Party catalog for customers and suppliers.
package party

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/entity"
	"gstbill/internal/core/types"
	"gstbill/pkg/gstin"
)

// PartyType defines the role of a party.
type PartyType string

const (
	TypeCustomer PartyType = "customer"
	TypeSupplier PartyType = "supplier"
	TypeBoth     PartyType = "both"
)

// Party represents a customer or supplier.
type Party struct {
	entity.Catalog
	entity.CompanyOwned

	// Type defines whether the party buys, sells, or both
	Type PartyType `db:"type" json:"type"`

	// GSTIN of the party (optional; unregistered parties have none)
	GSTIN string `db:"gstin" json:"gstin,omitempty"`

	// StateCode is the 2-digit GST state code, derived from GSTIN when
	// present; used to decide interstate vs intrastate tax split
	StateCode string `db:"state_code" json:"stateCode,omitempty"`

	// Contact details
	Phone string `db:"phone" json:"phone,omitempty"`
	Email string `db:"email" json:"email,omitempty"`

	// Address
	AddressLine1 string `db:"address_line1" json:"addressLine1,omitempty"`
	AddressLine2 string `db:"address_line2" json:"addressLine2,omitempty"`
	City         string `db:"city" json:"city,omitempty"`
	Pincode      string `db:"pincode" json:"pincode,omitempty"`

	// CreditLimit caps outstanding credit sales (zero means no limit)
	CreditLimit types.Money `db:"credit_limit" json:"creditLimit"`

	// OpeningBalance carried over from before the system was adopted
	OpeningBalance types.Money `db:"opening_balance" json:"openingBalance"`
}

// New creates a new Party with required fields.
func New(code, name string, partyType PartyType) *Party {
	return &Party{
		Catalog: entity.NewCatalog(code, name),
		Type:    partyType,
	}
}

// Validate implements entity.Validatable interface.
func (p *Party) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if err := p.ValidateCompany(ctx); err != nil {
		return err
	}

	switch p.Type {
	case TypeCustomer, TypeSupplier, TypeBoth:
	default:
		return apperror.NewValidation("invalid party type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	if p.GSTIN != "" && !gstin.IsValid(p.GSTIN) {
		return apperror.NewValidation("invalid GSTIN").
			WithDetail("field", "gstin").
			WithDetail("value", p.GSTIN)
	}

	if p.CreditLimit.IsNegative() {
		return apperror.NewValidation("credit limit cannot be negative").
			WithDetail("field", "creditLimit")
	}

	return nil
}

// Normalize uppercases the GSTIN and fills StateCode from it.
func (p *Party) Normalize() {
	p.GSTIN = gstin.Normalize(p.GSTIN)
	if p.GSTIN != "" {
		p.StateCode = gstin.StateCode(p.GSTIN)
	}
}

// IsCustomer returns true if the party can appear on sales invoices.
func (p *Party) IsCustomer() bool {
	return p.Type == TypeCustomer || p.Type == TypeBoth
}

// IsSupplier returns true if the party can appear on purchases.
func (p *Party) IsSupplier() bool {
	return p.Type == TypeSupplier || p.Type == TypeBoth
}
