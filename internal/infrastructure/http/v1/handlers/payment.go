package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain"
	"gstbill/internal/domain/documents/payment"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// PaymentHandler exposes payment and receipt vouchers over HTTP.
type PaymentHandler struct {
	*BaseHandler
	service *payment.Service
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(base *BaseHandler, service *payment.Service) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service}
}

// List handles GET /documents/payments
func (h *PaymentHandler) List(c *gin.Context) {
	filter := payment.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	filter.CompanyID = h.CompanyID(c)

	if kindStr := c.Query("kind"); kindStr != "" {
		kind := payment.Kind(kindStr)
		filter.Kind = &kind
	}
	if modeStr := c.Query("mode"); modeStr != "" {
		mode := payment.Mode(modeStr)
		filter.Mode = &mode
	}
	if partyStr := c.Query("partyId"); partyStr != "" {
		partyID, err := id.Parse(partyStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid partyId format"))
			return
		}
		filter.PartyID = &partyID
	}
	if invoiceStr := c.Query("invoiceId"); invoiceStr != "" {
		invoiceID, err := id.Parse(invoiceStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid invoiceId format"))
			return
		}
		filter.InvoiceID = &invoiceID
	}
	var ok bool
	if filter.DateFrom, ok = h.parseDateQuery(c, "dateFrom"); !ok {
		return
	}
	if filter.DateTo, ok = h.parseDateQuery(c, "dateTo"); !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromPayment(doc)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /documents/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayment(doc))
}

// GetByNumber handles GET /documents/payments/by-number/:number
func (h *PaymentHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.Error(c, apperror.NewValidation("number is required"))
		return
	}

	doc, err := h.service.GetByNumber(c.Request.Context(), h.CompanyID(c), number)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayment(doc))
}

// Create handles POST /documents/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity(h.CompanyID(c))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid party or invoice id").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPayment(doc))
}

// Delete handles DELETE /documents/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
