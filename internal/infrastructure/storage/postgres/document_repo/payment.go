package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"gstbill/internal/domain"
	"gstbill/internal/domain/documents/payment"
	"gstbill/internal/infrastructure/storage/postgres"
)

const paymentsTable = "doc_payments"

// PaymentRepo implements payment.Repository.
type PaymentRepo struct {
	*BaseDocumentRepo[*payment.Payment]
}

// NewPaymentRepo creates a new voucher repository.
func NewPaymentRepo(txm *postgres.TxManager) *PaymentRepo {
	return &PaymentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			paymentsTable,
			postgres.ExtractDBColumns[payment.Payment](),
			func() *payment.Payment { return &payment.Payment{} },
		),
	}
}

// List retrieves vouchers with filtering.
func (r *PaymentRepo) List(ctx context.Context, filter payment.ListFilter) (domain.ListResult[*payment.Payment], error) {
	return r.BaseDocumentRepo.List(ctx, filter.ListFilter, func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.Kind != nil {
			q = q.Where(squirrel.Eq{"kind": *filter.Kind})
		}
		if filter.Mode != nil {
			q = q.Where(squirrel.Eq{"mode": *filter.Mode})
		}
		if filter.PartyID != nil {
			q = q.Where(squirrel.Eq{"party_id": *filter.PartyID})
		}
		if filter.InvoiceID != nil {
			q = q.Where(squirrel.Eq{"invoice_id": *filter.InvoiceID})
		}
		if filter.DateFrom != nil {
			q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
		}
		if filter.DateTo != nil {
			q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
		}
		return q
	})
}

// Ensure interface compliance.
var _ payment.Repository = (*PaymentRepo)(nil)
