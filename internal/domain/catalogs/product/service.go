package product

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/tx"
	"gstbill/internal/domain"
)

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate seeds current stock from opening stock and checks
// barcode uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.CurrentStock.IsZero() && !p.OpeningStock.IsZero() {
		p.CurrentStock = p.OpeningStock
	}
	return s.checkBarcode(ctx, p)
}

// prepareForUpdate checks barcode uniqueness.
func (s *Service) prepareForUpdate(ctx context.Context, p *Product) error {
	return s.checkBarcode(ctx, p)
}

func (s *Service) checkBarcode(ctx context.Context, p *Product) error {
	if p.Barcode == "" {
		return nil
	}
	existing, err := s.repo.FindByBarcode(ctx, p.CompanyID, p.Barcode)
	if err == nil && existing.ID != p.ID {
		return apperror.NewConflict("product with this barcode already exists").
			WithDetail("barcode", p.Barcode)
	}
	return nil
}

// FindByBarcode retrieves a product by barcode within a company.
func (s *Service) FindByBarcode(ctx context.Context, companyID id.ID, barcode string) (*Product, error) {
	return s.repo.FindByBarcode(ctx, companyID, barcode)
}
