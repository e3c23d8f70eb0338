package party

import (
	"context"

	"gstbill/internal/core/id"
	"gstbill/internal/domain"
)

// Repository defines the interface for Party persistence.
type Repository interface {
	domain.CatalogRepository[*Party]

	// FindByGSTIN retrieves a party by GSTIN within a company.
	FindByGSTIN(ctx context.Context, companyID id.ID, gstin string) (*Party, error)

	// FindByPhone retrieves a party by phone number within a company.
	FindByPhone(ctx context.Context, companyID id.ID, phone string) (*Party, error)
}
