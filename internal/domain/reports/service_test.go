package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
)

type fakeRepo struct {
	salesLimit int
	payments   PaymentsSummary
	gst        GSTReport
}

func (r *fakeRepo) GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummary, error) {
	r.salesLimit = filter.Limit
	return &SalesSummary{FromDate: filter.FromDate, ToDate: filter.ToDate}, nil
}

func (r *fakeRepo) GetPaymentsSummary(ctx context.Context, filter PaymentsSummaryFilter) (*PaymentsSummary, error) {
	p := r.payments
	return &p, nil
}

func (r *fakeRepo) GetGSTReport(ctx context.Context, filter GSTReportFilter) (*GSTReport, error) {
	g := r.gst
	return &g, nil
}

func (r *fakeRepo) GetHSNSummary(ctx context.Context, filter HSNSummaryFilter) (*HSNSummary, error) {
	return &HSNSummary{}, nil
}

func period() PeriodFilter {
	return PeriodFilter{
		CompanyID: id.New(),
		FromDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestPeriodValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeRepo{})

	f := period()
	f.FromDate, f.ToDate = f.ToDate, f.FromDate
	_, err := svc.GetGSTReport(ctx, GSTReportFilter{PeriodFilter: f})
	if !apperror.IsAppError(err) {
		t.Errorf("inverted period must fail validation, got %v", err)
	}

	f = period()
	f.CompanyID = id.Nil()
	_, err = svc.GetHSNSummary(ctx, HSNSummaryFilter{PeriodFilter: f})
	if !apperror.IsAppError(err) {
		t.Errorf("missing company must fail validation, got %v", err)
	}
}

func TestGetSalesSummary_LimitDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo)

	if _, err := svc.GetSalesSummary(ctx, SalesSummaryFilter{PeriodFilter: period()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.salesLimit != 100 {
		t.Errorf("default limit = %d, want 100", repo.salesLimit)
	}

	if _, err := svc.GetSalesSummary(ctx, SalesSummaryFilter{PeriodFilter: period(), Limit: 5000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.salesLimit != 1000 {
		t.Errorf("capped limit = %d, want 1000", repo.salesLimit)
	}
}

func TestGetPaymentsSummary_NetInflow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{payments: PaymentsSummary{
		ReceiptTotal: decimal.NewFromInt(1500),
		PaymentTotal: decimal.NewFromInt(400),
	}}
	svc := NewService(repo)

	report, err := svc.GetPaymentsSummary(ctx, PaymentsSummaryFilter{PeriodFilter: period()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.NetInflow.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("net inflow = %s, want 1100", report.NetInflow)
	}
}

func TestGetGSTReport_TotalTax(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{gst: GSTReport{
		CGST: decimal.NewFromInt(81),
		SGST: decimal.NewFromInt(81),
		IGST: decimal.NewFromInt(200),
	}}
	svc := NewService(repo)

	report, err := svc.GetGSTReport(ctx, GSTReportFilter{PeriodFilter: period()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.TotalTax.Equal(decimal.NewFromInt(362)) {
		t.Errorf("total tax = %s, want 362", report.TotalTax)
	}
}
