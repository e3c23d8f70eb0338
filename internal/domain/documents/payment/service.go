package payment

import (
	"context"
	"fmt"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/tx"
	"gstbill/internal/core/types"
	"gstbill/internal/domain"
	"gstbill/internal/domain/audit"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/pkg/logger"
	"gstbill/pkg/numerator"
)

// InvoiceSettler applies a received amount against an invoice balance
// inside the ambient transaction. Implemented by the invoice service.
type InvoiceSettler interface {
	SettleReceipt(ctx context.Context, invoiceID id.ID, amount types.Money) (types.Money, error)
}

// Service provides business operations for payment and receipt
// vouchers. Recording a linked receipt and reducing the invoice
// balance happen in one transaction.
type Service struct {
	repo      Repository
	parties   party.Repository
	invoices  InvoiceSettler
	numerator numerator.Generator
	txManager tx.Manager
	events    domain.EventPublisher
}

// NewService creates a new voucher service.
func NewService(
	repo Repository,
	parties party.Repository,
	invoices InvoiceSettler,
	numgen numerator.Generator,
	txManager tx.Manager,
	events domain.EventPublisher,
) *Service {
	return &Service{
		repo:      repo,
		parties:   parties,
		invoices:  invoices,
		numerator: numgen,
		txManager: txManager,
		events:    events,
	}
}

// Create records a voucher. A receipt linked to an invoice settles the
// invoice balance atomically with the voucher insert; the amount that
// exceeded the balance stays on the voucher as an on-account
// remainder.
func (s *Service) Create(ctx context.Context, doc *Payment) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.PartyName == "" {
		p, err := s.parties.GetByID(ctx, doc.PartyID)
		if err != nil {
			return fmt.Errorf("get party: %w", err)
		}
		doc.PartyName = p.Name
	}
	audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)

	if doc.Number == "" {
		cfg := numerator.VoucherConfig(doc.Kind.NumberPrefix())
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, doc.Date)
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.Kind == KindReceipt && doc.InvoiceID != nil {
			applied, err := s.invoices.SettleReceipt(ctx, *doc.InvoiceID, doc.Amount)
			if err != nil {
				return fmt.Errorf("settle invoice: %w", err)
			}
			doc.AppliedAmount = applied
		}
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create voucher: %w", err)
		}
		if s.events != nil {
			return s.events.Publish(ctx, domain.EventPaymentRecorded, doc.ToMap())
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "voucher recorded",
		"id", doc.ID,
		"number", doc.Number,
		"kind", string(doc.Kind),
		"amount", doc.Amount.String(),
	)
	return nil
}

// GetByID retrieves a voucher.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Payment, error) {
	return s.repo.GetByID(ctx, docID)
}

// GetByNumber retrieves a voucher by its number.
func (s *Service) GetByNumber(ctx context.Context, companyID id.ID, number string) (*Payment, error) {
	return s.repo.GetByNumber(ctx, companyID, number)
}

// Delete soft-deletes a voucher. A receipt that reduced an invoice
// balance cannot be deleted, it must be reversed with a payment.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.AppliedAmount.IsPositive() {
		return apperror.NewConflict("voucher is applied to an invoice").
			WithDetail("id", docID.String()).
			WithDetail("applied_amount", doc.AppliedAmount.String())
	}

	if err := s.repo.Delete(ctx, docID); err != nil {
		return err
	}

	logger.Info(ctx, "voucher deleted", "id", docID, "number", doc.Number)
	return nil
}

// List retrieves vouchers with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error) {
	return s.repo.List(ctx, filter)
}
