package reports

import (
	"context"
)

// Repository defines report data access.
// Aggregation happens in SQL; the service layer only validates filters
// and applies defaults.
type Repository interface {
	GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummary, error)
	GetPaymentsSummary(ctx context.Context, filter PaymentsSummaryFilter) (*PaymentsSummary, error)
	GetGSTReport(ctx context.Context, filter GSTReportFilter) (*GSTReport, error)
	GetHSNSummary(ctx context.Context, filter HSNSummaryFilter) (*HSNSummary, error)
}
