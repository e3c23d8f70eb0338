package entity

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
)

// CompanyOwned is a trait for catalog entities scoped to a company.
// Used for composition in models like Product, Party.
type CompanyOwned struct {
	// CompanyID is the owning company
	CompanyID id.ID `db:"company_id" json:"companyId"`
}

// ValidateCompany ensures a company is set.
func (c *CompanyOwned) ValidateCompany(ctx context.Context) error {
	if id.IsNil(c.CompanyID) {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}
	return nil
}

// GetCompanyID returns the owning company ID (useful for interfaces).
func (c *CompanyOwned) GetCompanyID() id.ID {
	return c.CompanyID
}

// ICompanyOwned is an interface for any entity that belongs to a company.
type ICompanyOwned interface {
	GetCompanyID() id.ID
	ValidateCompany(ctx context.Context) error
}
