package handlers

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// Type alias keeps the handler signatures readable.
type ProductHTTPHandler = CatalogHandler[
	*product.Product,
	dto.CreateProductRequest,
	dto.UpdateProductRequest,
]

// ProductHandler bundles the generic CRUD handler with product-specific
// lookups (barcode scan).
type ProductHandler struct {
	*ProductHTTPHandler
	service *product.Service
}

// NewProductHandler wires the generic catalog handler for products.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest, companyID id.ID) *product.Product {
			p := req.ToEntity()
			p.CompanyID = companyID
			return p
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return &ProductHandler{
		ProductHTTPHandler: NewCatalogHandler(base, config),
		service:            service,
	}
}

// GetByBarcode handles GET /products/by-barcode/:barcode
func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		h.Error(c, apperror.NewValidation("barcode is required"))
		return
	}

	entity, err := h.service.FindByBarcode(c.Request.Context(), h.CompanyID(c), barcode)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(entity))
}
