package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/domain/registers/stock"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// StockHandler exposes the stock register over HTTP.
type StockHandler struct {
	*BaseHandler
	service  *stock.Service
	products *product.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service, products *product.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
		products:    products,
	}
}

// ApplySale handles POST /stock/sale - batch outward movement.
// Bad entries are skipped and reported per-line, never failing the batch.
func (h *StockHandler) ApplySale(c *gin.Context) {
	var req dto.StockBatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	results, err := h.service.ApplySale(c.Request.Context(), req.ToDeltas())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewStockBatchResponse(results))
}

// ApplyPurchase handles POST /stock/purchase - batch inward movement.
func (h *StockHandler) ApplyPurchase(c *gin.Context) {
	var req dto.StockBatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	results, err := h.service.ApplyPurchase(c.Request.Context(), req.ToDeltas())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewStockBatchResponse(results))
}

// GetAvailability handles GET /stock/availability/:productId?required=N
func (h *StockHandler) GetAvailability(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	required, err := decimal.NewFromString(c.DefaultQuery("required", "0"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid required quantity"))
		return
	}

	availability, err := h.service.CheckAvailability(c.Request.Context(), productID, required)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, availability)
}

// GetLowStock handles GET /stock/low - products at or below reorder level.
func (h *StockHandler) GetLowStock(c *gin.Context) {
	items, err := h.service.ListLowStock(c.Request.Context(), h.CompanyID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LowStockResponse{Items: items, Count: len(items)})
}

// GetSummary handles GET /stock/summary
func (h *StockHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	// Total product count comes from the catalog, tracked or not.
	filter := domain.DefaultListFilter()
	filter.CompanyID = h.CompanyID(c)
	filter.Limit = 1
	listed, err := h.products.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	summary, err := h.service.GetSummary(ctx, h.CompanyID(c), int(listed.TotalCount))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, summary)
}
