// Package reports provides report generation services.
package reports

import (
	"time"

	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
)

// PeriodFilter bounds a report to a company and a date range.
type PeriodFilter struct {
	CompanyID id.ID

	// FromDate and ToDate are inclusive. Both required.
	FromDate time.Time
	ToDate   time.Time
}

// --- Sales Summary ---

// SalesSummaryFilter defines the filter for the sales summary report.
type SalesSummaryFilter struct {
	PeriodFilter

	// Optional narrowing
	PartyID *id.ID

	Limit  int
	Offset int
}

// SalesSummaryRow is one invoice in the sales summary.
type SalesSummaryRow struct {
	InvoiceID  id.ID       `json:"invoiceId"`
	Number     string      `json:"number"`
	Date       time.Time   `json:"date"`
	PartyName  string      `json:"partyName"`
	TaxType    string      `json:"taxType"`
	Status     string      `json:"status"`
	Subtotal   types.Money `json:"subtotal"`
	TotalTax   types.Money `json:"totalTax"`
	GrandTotal types.Money `json:"grandTotal"`
	BalanceDue types.Money `json:"balanceDue"`
}

// SalesSummary is the full sales summary report.
type SalesSummary struct {
	FromDate time.Time         `json:"fromDate"`
	ToDate   time.Time         `json:"toDate"`
	Rows     []SalesSummaryRow `json:"rows"`

	InvoiceCount     int         `json:"invoiceCount"`
	TotalSales       types.Money `json:"totalSales"`
	TotalTax         types.Money `json:"totalTax"`
	TotalOutstanding types.Money `json:"totalOutstanding"`

	// Count per payment status
	StatusCounts map[string]int `json:"statusCounts"`
}

// --- Payments Summary ---

// PaymentsSummaryFilter defines the filter for the payments summary.
type PaymentsSummaryFilter struct {
	PeriodFilter

	// Kind narrows to PAYMENT or RECEIPT; empty means both.
	Kind string
}

// ModeBreakdown is the per-instrument slice of the payments summary.
type ModeBreakdown struct {
	Mode   string      `json:"mode"`
	Count  int         `json:"count"`
	Amount types.Money `json:"amount"`
}

// PaymentsSummary aggregates vouchers over a period.
type PaymentsSummary struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	ReceiptCount int         `json:"receiptCount"`
	ReceiptTotal types.Money `json:"receiptTotal"`
	PaymentCount int         `json:"paymentCount"`
	PaymentTotal types.Money `json:"paymentTotal"`

	// NetInflow = receipts - payments
	NetInflow types.Money `json:"netInflow"`

	ByMode []ModeBreakdown `json:"byMode"`
}

// --- GST Report ---

// GSTReportFilter defines the filter for the GST period report.
type GSTReportFilter struct {
	PeriodFilter
}

// GSTRateSlice is the tax collected at one rate.
type GSTRateSlice struct {
	TaxRate      types.Money `json:"taxRate"`
	TaxableValue types.Money `json:"taxableValue"`
	CGST         types.Money `json:"cgst"`
	SGST         types.Money `json:"sgst"`
	IGST         types.Money `json:"igst"`
}

// GSTReport is the outward supply tax report for a period, the numbers
// a GSTR-1 filing starts from.
type GSTReport struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	TaxableValue types.Money `json:"taxableValue"`
	CGST         types.Money `json:"cgst"`
	SGST         types.Money `json:"sgst"`
	IGST         types.Money `json:"igst"`
	TotalTax     types.Money `json:"totalTax"`

	InvoiceCount int `json:"invoiceCount"`

	ByRate []GSTRateSlice `json:"byRate"`
}

// --- HSN Summary ---

// HSNSummaryFilter defines the filter for the HSN-wise summary.
type HSNSummaryFilter struct {
	PeriodFilter
}

// HSNSummaryRow aggregates invoice lines sharing an HSN code.
type HSNSummaryRow struct {
	HSNCode      string         `json:"hsnCode"`
	Description  string         `json:"description"`
	Unit         string         `json:"unit"`
	Quantity     types.Quantity `json:"quantity"`
	TaxableValue types.Money    `json:"taxableValue"`
	TaxAmount    types.Money    `json:"taxAmount"`
}

// HSNSummary is the HSN-wise outward supply summary for a period.
type HSNSummary struct {
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
	Rows     []HSNSummaryRow `json:"rows"`
}
