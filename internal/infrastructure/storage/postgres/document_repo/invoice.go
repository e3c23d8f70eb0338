package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"gstbill/internal/core/id"
	"gstbill/internal/domain"
	"gstbill/internal/domain/documents/invoice"
	"gstbill/internal/infrastructure/storage/postgres"
)

const (
	invoicesTable     = "doc_invoices"
	invoiceItemsTable = "doc_invoice_items"
)

var invoiceItemColumns = []string{
	"line_id", "line_no", "product_id", "product_name", "hsn_code", "unit",
	"quantity", "rate", "discount_percent", "discount_amount",
	"tax_rate", "tax_amount", "amount",
}

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	*BaseDocumentRepo[*invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			invoicesTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
	}
}

// GetItems retrieves invoice lines ordered by line number.
func (r *InvoiceRepo) GetItems(ctx context.Context, docID id.ID) ([]invoice.Item, error) {
	q := r.Builder().
		Select(invoiceItemColumns...).
		From(invoiceItemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []invoice.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	return items, nil
}

// SaveItems replaces the invoice lines. Uses the COPY protocol when a
// transaction is active, which the invoice service always provides.
func (r *InvoiceRepo) SaveItems(ctx context.Context, docID id.ID, items []invoice.Item) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + invoiceItemsTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	columns := append([]string{"document_id"}, invoiceItemColumns...)

	if r.TxManager().GetTx(ctx) != nil {
		inserter := postgres.NewBatchInserter(r.TxManager())
		rows := make([][]any, 0, len(items))
		for _, it := range items {
			rows = append(rows, []any{
				docID,
				it.LineID, it.LineNo, it.ProductID, it.ProductName, it.HSNCode, it.Unit,
				it.Quantity, it.Rate, it.DiscountPercent, it.DiscountAmount,
				it.TaxRate, it.TaxAmount, it.Amount,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, invoiceItemsTable, columns, rows); err != nil {
			return fmt.Errorf("copy items: %w", err)
		}
		return nil
	}

	q := r.Builder().
		Insert(invoiceItemsTable).
		Columns(columns...)

	for _, it := range items {
		q = q.Values(
			docID,
			it.LineID, it.LineNo, it.ProductID, it.ProductName, it.HSNCode, it.Unit,
			it.Quantity, it.Rate, it.DiscountPercent, it.DiscountAmount,
			it.TaxRate, it.TaxAmount, it.Amount,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert items: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	return nil
}

// List retrieves invoices with filtering.
func (r *InvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) (domain.ListResult[*invoice.Invoice], error) {
	return r.BaseDocumentRepo.List(ctx, filter.ListFilter, func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.PartyID != nil {
			q = q.Where(squirrel.Eq{"party_id": *filter.PartyID})
		}
		if filter.Status != nil {
			q = q.Where(squirrel.Eq{"status": *filter.Status})
		}
		if filter.BillType != nil {
			q = q.Where(squirrel.Eq{"bill_type": *filter.BillType})
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
var _ invoice.Repository = (*InvoiceRepo)(nil)
