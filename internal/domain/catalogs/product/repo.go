package product

import (
	"context"

	"gstbill/internal/core/id"
	"gstbill/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByBarcode retrieves a product by barcode within a company.
	FindByBarcode(ctx context.Context, companyID id.ID, barcode string) (*Product, error)

	// ListTracked retrieves all stock-tracked products of a company
	// (no pagination: the stock reports scan the full snapshot).
	ListTracked(ctx context.Context, companyID id.ID) ([]*Product, error)
}
