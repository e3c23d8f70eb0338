package invoice

import (
	"context"
	"fmt"
	"time"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/tx"
	"gstbill/internal/core/types"
	"gstbill/internal/domain"
	"gstbill/internal/domain/audit"
	"gstbill/internal/domain/catalogs/company"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/internal/domain/registers/stock"
	"gstbill/pkg/gstin"
	"gstbill/pkg/logger"
	"gstbill/pkg/numerator"
)

// Options control invoice service behavior.
type Options struct {
	// EnforceStock rejects a sale when tracked stock is insufficient.
	// Off by default: the counter sells what is on the shelf and the
	// ledger catches up, negative stock shows in reports.
	EnforceStock bool
}

// Service provides business operations for invoices.
// Saving an invoice and moving stock happen in one transaction.
type Service struct {
	repo      Repository
	companies company.Repository
	parties   party.Repository
	stock     *stock.Service
	numerator numerator.Generator
	txManager tx.Manager
	events    domain.EventPublisher
	opts      Options
}

// NewService creates a new invoice service.
func NewService(
	repo Repository,
	companies company.Repository,
	parties party.Repository,
	stockSvc *stock.Service,
	numgen numerator.Generator,
	txManager tx.Manager,
	events domain.EventPublisher,
	opts Options,
) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		parties:   parties,
		stock:     stockSvc,
		numerator: numgen,
		txManager: txManager,
		events:    events,
		opts:      opts,
	}
}

// prepare fills derived header fields before save: the denormalized
// party name and, when the caller left it empty, the tax type from the
// company and party GSTIN state codes.
func (s *Service) prepare(ctx context.Context, doc *Invoice) (*company.Company, error) {
	comp, err := s.companies.GetByID(ctx, doc.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	p, err := s.parties.GetByID(ctx, doc.PartyID)
	if err != nil {
		return nil, fmt.Errorf("get party: %w", err)
	}
	if doc.PartyName == "" {
		doc.PartyName = p.Name
	}

	if doc.TaxType == "" {
		switch {
		case !comp.IsGSTRegistered():
			doc.TaxType = TaxNonGST
		case p.GSTIN != "" && !gstin.SameState(comp.GSTIN, p.GSTIN):
			doc.TaxType = TaxGSTDifferentState
		default:
			doc.TaxType = TaxGSTSameState
		}
	}

	return comp, nil
}

func (s *Service) checkStock(ctx context.Context, doc *Invoice) error {
	if !s.opts.EnforceStock {
		return nil
	}
	for _, item := range doc.Items {
		if item.ProductID == nil {
			continue
		}
		if err := s.stock.EnsureAvailable(ctx, *item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) publish(ctx context.Context, topic string, doc *Invoice) error {
	if s.events == nil {
		return nil
	}
	return s.events.Publish(ctx, topic, doc.ToMap())
}

// Create saves a new invoice: totals are recomputed, a number is
// assigned when missing and the sale is applied to stock, all in one
// transaction.
func (s *Service) Create(ctx context.Context, doc *Invoice) error {
	doc.Recalculate()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	comp, err := s.prepare(ctx, doc)
	if err != nil {
		return err
	}
	audit.EnrichCreatedByDirect(ctx, &doc.CreatedBy, &doc.UpdatedBy)

	if err := s.checkStock(ctx, doc); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.InvoiceConfig(comp.InvoicePrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, doc.Date)
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveItems(ctx, doc.ID, doc.Items); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		if _, err := s.stock.ApplySale(ctx, s.stockDeltas(doc)); err != nil {
			return fmt.Errorf("apply stock: %w", err)
		}
		return s.publish(ctx, domain.EventInvoiceCreated, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "invoice created",
		"id", doc.ID,
		"number", doc.Number,
		"party_id", doc.PartyID,
		"grand_total", doc.GrandTotal.String(),
	)
	return nil
}

// GetByID retrieves an invoice with its items.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItems(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	doc.Items = items

	return doc, nil
}

// GetByNumber retrieves an invoice by its document number.
func (s *Service) GetByNumber(ctx context.Context, companyID id.ID, number string) (*Invoice, error) {
	doc, err := s.repo.GetByNumber(ctx, companyID, number)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItems(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	doc.Items = items

	return doc, nil
}

// Update replaces an invoice. Stock moved by the previous revision is
// reversed and the new lines are applied, so editing a quantity leaves
// the ledger as if the invoice had been saved that way from the start.
// Receipts already applied keep reducing the new balance.
func (s *Service) Update(ctx context.Context, doc *Invoice) error {
	doc.Recalculate()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if _, err := s.prepare(ctx, doc); err != nil {
		return err
	}
	audit.EnrichUpdatedByDirect(ctx, &doc.UpdatedBy)

	old, err := s.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}

	// Carry the paid amount across the edit.
	paid := old.GrandTotal.Sub(old.BalanceDue)
	if doc.BillType == BillCredit {
		doc.BalanceDue = types.MaxZero(doc.GrandTotal.Sub(paid))
	}
	doc.RefreshStatus()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.stock.ApplyPurchase(ctx, s.stockDeltas(old)); err != nil {
			return fmt.Errorf("reverse stock: %w", err)
		}
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveItems(ctx, doc.ID, doc.Items); err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		if _, err := s.stock.ApplySale(ctx, s.stockDeltas(doc)); err != nil {
			return fmt.Errorf("apply stock: %w", err)
		}
		return s.publish(ctx, domain.EventInvoiceUpdated, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "invoice updated", "id", doc.ID, "number", doc.Number)
	return nil
}

// Delete soft-deletes an invoice and returns its items to stock.
// A paid invoice cannot be deleted, it would orphan the receipts.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.GrandTotal.IsPositive() && doc.BillType == BillCredit && doc.BalanceDue.LessThan(doc.GrandTotal) {
		return apperror.NewBusinessRule(apperror.CodeInvoiceFinalized, "invoice has receipts applied").
			WithDetail("id", docID.String()).
			WithDetail("status", string(doc.Status))
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.stock.ApplyPurchase(ctx, s.stockDeltas(doc)); err != nil {
			return fmt.Errorf("restore stock: %w", err)
		}
		if err := s.repo.Delete(ctx, docID); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return s.publish(ctx, domain.EventInvoiceDeleted, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "invoice deleted", "id", docID, "number", doc.Number)
	return nil
}

// SettleReceipt applies a received amount against the invoice balance
// inside the caller's transaction. Returns the amount actually applied.
func (s *Service) SettleReceipt(ctx context.Context, docID id.ID, amount types.Money) (types.Money, error) {
	if !amount.IsPositive() {
		return types.Zero(), apperror.NewValidation("amount must be positive").
			WithDetail("amount", amount.String())
	}

	doc, err := s.repo.GetForUpdate(ctx, docID)
	if err != nil {
		return types.Zero(), err
	}

	applied := doc.ApplyReceipt(amount)
	if err := s.repo.Update(ctx, doc); err != nil {
		return types.Zero(), fmt.Errorf("update balance: %w", err)
	}

	return applied, nil
}

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return s.repo.List(ctx, filter)
}

// PreviewNumber returns the number the next invoice would get without
// consuming it. Purely informational, the save still draws its own.
func (s *Service) PreviewNumber(ctx context.Context, companyID id.ID, at time.Time) (string, error) {
	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("get company: %w", err)
	}
	cfg := numerator.InvoiceConfig(comp.InvoicePrefix)
	return cfg.Prefix + "-" + numerator.FinancialYearSegment(at) + "-", nil
}

func (s *Service) stockDeltas(doc *Invoice) []stock.Delta {
	deltas := make([]stock.Delta, 0, len(doc.Items))
	for _, d := range doc.StockDeltas() {
		deltas = append(deltas, stock.Delta{ProductID: d.ProductID, Quantity: d.Quantity})
	}
	return deltas
}
