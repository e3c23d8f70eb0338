package company

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/tx"
	"gstbill/internal/domain"
)

// Service provides business logic for the Company catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Company]
	repo Repository
}

// NewService creates a new Company service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Company]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "company",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare normalizes the GSTIN and enforces its uniqueness.
func (s *Service) prepare(ctx context.Context, c *Company) error {
	c.Normalize()

	if c.GSTIN != "" {
		existing, err := s.repo.FindByGSTIN(ctx, c.GSTIN)
		if err == nil && existing.ID != c.ID {
			return apperror.NewDuplicate("company", "gstin", c.GSTIN)
		}
	}

	return nil
}

// FindByGSTIN retrieves a company by GSTIN.
func (s *Service) FindByGSTIN(ctx context.Context, gstinValue string) (*Company, error) {
	return s.repo.FindByGSTIN(ctx, gstinValue)
}
