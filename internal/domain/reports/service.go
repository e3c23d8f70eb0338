package reports

import (
	"context"
	"fmt"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validatePeriod(f PeriodFilter) error {
	if id.IsNil(f.CompanyID) {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}
	if f.FromDate.IsZero() || f.ToDate.IsZero() {
		return apperror.NewValidation("fromDate and toDate are required")
	}
	if f.FromDate.After(f.ToDate) {
		return apperror.NewValidation("fromDate must not be after toDate").
			WithDetail("fromDate", f.FromDate.Format("2006-01-02")).
			WithDetail("toDate", f.ToDate.Format("2006-01-02"))
	}
	return nil
}

// GetSalesSummary generates the sales summary report.
func (s *Service) GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummary, error) {
	if err := validatePeriod(filter.PeriodFilter); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetSalesSummary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get sales summary: %w", err)
	}

	return report, nil
}

// GetPaymentsSummary generates the payments summary report.
func (s *Service) GetPaymentsSummary(ctx context.Context, filter PaymentsSummaryFilter) (*PaymentsSummary, error) {
	if err := validatePeriod(filter.PeriodFilter); err != nil {
		return nil, err
	}

	report, err := s.repo.GetPaymentsSummary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get payments summary: %w", err)
	}

	report.NetInflow = report.ReceiptTotal.Sub(report.PaymentTotal)
	return report, nil
}

// GetGSTReport generates the outward supply tax report for a period.
func (s *Service) GetGSTReport(ctx context.Context, filter GSTReportFilter) (*GSTReport, error) {
	if err := validatePeriod(filter.PeriodFilter); err != nil {
		return nil, err
	}

	report, err := s.repo.GetGSTReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get gst report: %w", err)
	}

	report.TotalTax = report.CGST.Add(report.SGST).Add(report.IGST)
	return report, nil
}

// GetHSNSummary generates the HSN-wise outward supply summary.
func (s *Service) GetHSNSummary(ctx context.Context, filter HSNSummaryFilter) (*HSNSummary, error) {
	if err := validatePeriod(filter.PeriodFilter); err != nil {
		return nil, err
	}

	report, err := s.repo.GetHSNSummary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get hsn summary: %w", err)
	}

	return report, nil
}
