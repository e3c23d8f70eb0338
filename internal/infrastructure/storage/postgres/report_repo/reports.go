// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"gstbill/internal/core/id"
	"gstbill/internal/domain/reports"
	"gstbill/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository. All aggregation happens in
// SQL; deleted documents are excluded everywhere.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetSalesSummary generates the per-invoice sales listing with period totals.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, filter reports.SalesSummaryFilter) (*reports.SalesSummary, error) {
	report := &reports.SalesSummary{
		FromDate:     filter.FromDate,
		ToDate:       filter.ToDate,
		StatusCounts: make(map[string]int),
	}

	querier := r.txm.GetQuerier(ctx)

	base := r.builder.
		Select().
		From("doc_invoices").
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"company_id": filter.CompanyID}).
		Where(squirrel.GtOrEq{"date": filter.FromDate}).
		Where(squirrel.LtOrEq{"date": filter.ToDate})

	if filter.PartyID != nil && !id.IsNil(*filter.PartyID) {
		base = base.Where(squirrel.Eq{"party_id": *filter.PartyID})
	}

	// Period totals
	totalsQ := base.Columns(
		"COUNT(*) AS invoice_count",
		"COALESCE(SUM(grand_total), 0) AS total_sales",
		"COALESCE(SUM(total_tax), 0) AS total_tax",
		"COALESCE(SUM(balance_due), 0) AS total_outstanding",
	)

	sql, args, err := totalsQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals: %w", err)
	}

	err = querier.QueryRow(ctx, sql, args...).Scan(
		&report.InvoiceCount, &report.TotalSales, &report.TotalTax, &report.TotalOutstanding,
	)
	if err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}

	// Status breakdown
	statusQ := base.Columns("status", "COUNT(*)").GroupBy("status")
	sql, args, err = statusQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build status counts: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		report.StatusCounts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	// Invoice rows, newest first
	rowsQ := base.Columns(
		"id AS invoice_id", "number", "date", "party_name", "tax_type", "status",
		"subtotal", "total_tax", "grand_total", "balance_due",
	).OrderBy("date DESC", "number DESC")

	if filter.Limit > 0 {
		rowsQ = rowsQ.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		rowsQ = rowsQ.Offset(uint64(filter.Offset))
	}

	sql, args, err = rowsQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rows: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &report.Rows, sql, args...); err != nil {
		return nil, fmt.Errorf("sales rows: %w", err)
	}

	return report, nil
}

// GetPaymentsSummary aggregates vouchers over a period by kind and mode.
func (r *ReportRepo) GetPaymentsSummary(ctx context.Context, filter reports.PaymentsSummaryFilter) (*reports.PaymentsSummary, error) {
	report := &reports.PaymentsSummary{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}

	querier := r.txm.GetQuerier(ctx)

	base := r.builder.
		Select().
		From("doc_payments").
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"company_id": filter.CompanyID}).
		Where(squirrel.GtOrEq{"date": filter.FromDate}).
		Where(squirrel.LtOrEq{"date": filter.ToDate})

	if filter.Kind != "" {
		base = base.Where(squirrel.Eq{"kind": filter.Kind})
	}

	totalsQ := base.Columns(
		"COUNT(*) FILTER (WHERE kind = 'RECEIPT') AS receipt_count",
		"COALESCE(SUM(amount) FILTER (WHERE kind = 'RECEIPT'), 0) AS receipt_total",
		"COUNT(*) FILTER (WHERE kind = 'PAYMENT') AS payment_count",
		"COALESCE(SUM(amount) FILTER (WHERE kind = 'PAYMENT'), 0) AS payment_total",
	)

	sql, args, err := totalsQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals: %w", err)
	}

	err = querier.QueryRow(ctx, sql, args...).Scan(
		&report.ReceiptCount, &report.ReceiptTotal, &report.PaymentCount, &report.PaymentTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("payments totals: %w", err)
	}

	modeQ := base.Columns(
		"mode",
		"COUNT(*) AS count",
		"COALESCE(SUM(amount), 0) AS amount",
	).GroupBy("mode").OrderBy("mode")

	sql, args, err = modeQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mode breakdown: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &report.ByMode, sql, args...); err != nil {
		return nil, fmt.Errorf("mode breakdown: %w", err)
	}

	return report, nil
}

// GetGSTReport aggregates outward supply tax over a period. Non-GST
// invoices are excluded; interstate tax lands in IGST, intrastate tax
// splits evenly into CGST and SGST.
func (r *ReportRepo) GetGSTReport(ctx context.Context, filter reports.GSTReportFilter) (*reports.GSTReport, error) {
	report := &reports.GSTReport{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}

	querier := r.txm.GetQuerier(ctx)

	headerSQL := `
		SELECT
			COUNT(*),
			COALESCE(SUM(subtotal - total_discount), 0),
			COALESCE(SUM(cgst), 0),
			COALESCE(SUM(sgst), 0),
			COALESCE(SUM(igst), 0)
		FROM doc_invoices
		WHERE deletion_mark = false
		  AND company_id = $1
		  AND date >= $2 AND date <= $3
		  AND tax_type <> 'Non-GST'
	`

	err := querier.QueryRow(ctx, headerSQL, filter.CompanyID, filter.FromDate, filter.ToDate).Scan(
		&report.InvoiceCount, &report.TaxableValue, &report.CGST, &report.SGST, &report.IGST,
	)
	if err != nil {
		return nil, fmt.Errorf("gst totals: %w", err)
	}

	rateSQL := fmt.Sprintf(`
		SELECT
			it.tax_rate,
			COALESCE(SUM(it.amount - it.tax_amount), 0) AS taxable_value,
			COALESCE(SUM(CASE WHEN NOT %[1]s THEN it.tax_amount / 2 ELSE 0 END), 0) AS cgst,
			COALESCE(SUM(CASE WHEN NOT %[1]s THEN it.tax_amount / 2 ELSE 0 END), 0) AS sgst,
			COALESCE(SUM(CASE WHEN %[1]s THEN it.tax_amount ELSE 0 END), 0) AS igst
		FROM doc_invoice_items it
		JOIN doc_invoices d ON d.id = it.document_id
		WHERE d.deletion_mark = false
		  AND d.company_id = $1
		  AND d.date >= $2 AND d.date <= $3
		  AND d.tax_type <> 'Non-GST'
		GROUP BY it.tax_rate
		ORDER BY it.tax_rate
	`, "(d.tax_type LIKE '%Different State%' OR d.tax_type LIKE '%Other State%')")

	if err := pgxscan.Select(ctx, querier, &report.ByRate, rateSQL, filter.CompanyID, filter.FromDate, filter.ToDate); err != nil {
		return nil, fmt.Errorf("gst rate slices: %w", err)
	}

	return report, nil
}

// GetHSNSummary aggregates invoice lines by HSN code over a period.
func (r *ReportRepo) GetHSNSummary(ctx context.Context, filter reports.HSNSummaryFilter) (*reports.HSNSummary, error) {
	report := &reports.HSNSummary{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}

	querier := r.txm.GetQuerier(ctx)

	sql := `
		SELECT
			it.hsn_code,
			MIN(it.product_name) AS description,
			MIN(it.unit) AS unit,
			COALESCE(SUM(it.quantity), 0) AS quantity,
			COALESCE(SUM(it.amount - it.tax_amount), 0) AS taxable_value,
			COALESCE(SUM(it.tax_amount), 0) AS tax_amount
		FROM doc_invoice_items it
		JOIN doc_invoices d ON d.id = it.document_id
		WHERE d.deletion_mark = false
		  AND d.company_id = $1
		  AND d.date >= $2 AND d.date <= $3
		GROUP BY it.hsn_code
		ORDER BY it.hsn_code
	`

	if err := pgxscan.Select(ctx, querier, &report.Rows, sql, filter.CompanyID, filter.FromDate, filter.ToDate); err != nil {
		return nil, fmt.Errorf("hsn summary: %w", err)
	}

	return report, nil
}

// Ensure interface compliance
var _ reports.Repository = (*ReportRepo)(nil)
