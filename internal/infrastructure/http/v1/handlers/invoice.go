package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain"
	"gstbill/internal/domain/documents/invoice"
	"gstbill/internal/infrastructure/http/v1/dto"
)

const dateLayout = "2006-01-02"

// InvoiceHandler exposes sales invoices over HTTP.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// List handles GET /documents/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	filter := invoice.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	filter.CompanyID = h.CompanyID(c)

	if partyStr := c.Query("partyId"); partyStr != "" {
		partyID, err := id.Parse(partyStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid partyId format"))
			return
		}
		filter.PartyID = &partyID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := invoice.Status(statusStr)
		filter.Status = &status
	}
	if billTypeStr := c.Query("billType"); billTypeStr != "" {
		billType := invoice.BillType(billTypeStr)
		filter.BillType = &billType
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
		items[i] = dto.FromInvoice(doc)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /documents/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
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

	h.OK(c, dto.FromInvoice(doc))
}

// GetByNumber handles GET /documents/invoices/by-number/:number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
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

	h.OK(c, dto.FromInvoice(doc))
}

// Create handles POST /documents/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity(h.CompanyID(c))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product or party id").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInvoice(doc))
}

// Update handles PUT /documents/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(doc); err != nil {
		h.Error(c, apperror.NewValidation("invalid product or party id").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(doc))
}

// Delete handles DELETE /documents/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
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

// PreviewNumber handles GET /documents/invoices/next-number?date=YYYY-MM-DD
// Returns the number the next invoice would get without consuming it.
func (h *InvoiceHandler) PreviewNumber(c *gin.Context) {
	at := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid date format (expected "+dateLayout+")"))
			return
		}
		at = parsed
	}

	number, err := h.service.PreviewNumber(c.Request.Context(), h.CompanyID(c), at)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"number": number})
}

// parseDateQuery parses an optional date query parameter. The second
// return value is false when the value was present but malformed (an
// error response has already been written).
func (h *BaseHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	val := c.Query(key)
	if val == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, val)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+key+" format (expected "+dateLayout+")"))
		return nil, false
	}
	return &parsed, true
}
