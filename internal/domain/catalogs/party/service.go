package party

import (
	"context"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/tx"
	"gstbill/internal/domain"
)

// Service provides business logic for the Party catalog.
type Service struct {
	*domain.CatalogService[*Party]
	repo Repository
}

// NewService creates a new Party service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Party]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "party",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepare)
	base.Hooks().OnBeforeUpdate(svc.prepare)

	return svc
}

// prepare normalizes the GSTIN and enforces per-company uniqueness.
func (s *Service) prepare(ctx context.Context, p *Party) error {
	p.Normalize()

	if p.GSTIN != "" {
		existing, err := s.repo.FindByGSTIN(ctx, p.CompanyID, p.GSTIN)
		if err == nil && existing.ID != p.ID {
			return apperror.NewDuplicate("party", "gstin", p.GSTIN)
		}
	}

	return nil
}

// FindByGSTIN retrieves a party by GSTIN within a company.
func (s *Service) FindByGSTIN(ctx context.Context, companyID id.ID, gstinValue string) (*Party, error) {
	return s.repo.FindByGSTIN(ctx, companyID, gstinValue)
}

// FindByPhone retrieves a party by phone within a company.
func (s *Service) FindByPhone(ctx context.Context, companyID id.ID, phone string) (*Party, error) {
	return s.repo.FindByPhone(ctx, companyID, phone)
}
