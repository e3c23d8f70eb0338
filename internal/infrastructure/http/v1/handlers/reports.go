package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/reports"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// ReportsHandler exposes period reports over HTTP.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// bindPeriod binds fromDate/toDate query params into a period filter.
// Returns false when the request was malformed (error already written).
func (h *ReportsHandler) bindPeriod(c *gin.Context) (reports.PeriodFilter, bool) {
	var q dto.PeriodQuery
	if !h.BindQuery(c, &q) {
		return reports.PeriodFilter{}, false
	}

	fromDate, err := time.Parse(dateLayout, q.FromDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid fromDate format (expected "+dateLayout+")"))
		return reports.PeriodFilter{}, false
	}
	toDate, err := time.Parse(dateLayout, q.ToDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid toDate format (expected "+dateLayout+")"))
		return reports.PeriodFilter{}, false
	}

	return reports.PeriodFilter{
		CompanyID: h.CompanyID(c),
		FromDate:  fromDate,
		ToDate:    toDate,
	}, true
}

// GetSalesSummary handles GET /reports/sales
func (h *ReportsHandler) GetSalesSummary(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	filter := reports.SalesSummaryFilter{
		PeriodFilter: period,
		Limit:        h.ParseIntQuery(c, "limit", 100),
		Offset:       h.ParseIntQuery(c, "offset", 0),
	}
	if partyStr := c.Query("partyId"); partyStr != "" {
		partyID, err := id.Parse(partyStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid partyId format"))
			return
		}
		filter.PartyID = &partyID
	}

	report, err := h.service.GetSalesSummary(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetPaymentsSummary handles GET /reports/payments
func (h *ReportsHandler) GetPaymentsSummary(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	filter := reports.PaymentsSummaryFilter{
		PeriodFilter: period,
		Kind:         c.Query("kind"),
	}

	report, err := h.service.GetPaymentsSummary(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetGSTReport handles GET /reports/gst
func (h *ReportsHandler) GetGSTReport(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.service.GetGSTReport(c.Request.Context(), reports.GSTReportFilter{PeriodFilter: period})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetHSNSummary handles GET /reports/hsn
func (h *ReportsHandler) GetHSNSummary(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.service.GetHSNSummary(c.Request.Context(), reports.HSNSummaryFilter{PeriodFilter: period})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}
