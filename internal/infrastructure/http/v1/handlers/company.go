package handlers

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/company"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// Type alias keeps the handler signatures readable.
type CompanyHTTPHandler = CatalogHandler[
	*company.Company,
	dto.CreateCompanyRequest,
	dto.UpdateCompanyRequest,
]

// CompanyHandler bundles the generic CRUD handler with company-specific
// lookups. Companies are top-level: the generic CRUD ignores the
// company scoping that every other catalog gets.
type CompanyHandler struct {
	*CompanyHTTPHandler
	service *company.Service
}

// NewCompanyHandler wires the generic catalog handler for companies.
func NewCompanyHandler(base *BaseHandler, service *company.Service) *CompanyHandler {
	config := CatalogHandlerConfig[
		*company.Company,
		dto.CreateCompanyRequest,
		dto.UpdateCompanyRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "company",

		MapCreateDTO: func(req dto.CreateCompanyRequest, _ id.ID) *company.Company {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateCompanyRequest, existing *company.Company) *company.Company {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *company.Company) any {
			return dto.FromCompany(entity)
		},
	}

	return &CompanyHandler{
		CompanyHTTPHandler: NewCatalogHandler(base, config),
		service:            service,
	}
}

// GetByGSTIN handles GET /companies/by-gstin/:gstin
func (h *CompanyHandler) GetByGSTIN(c *gin.Context) {
	gstin := c.Param("gstin")
	if gstin == "" {
		h.Error(c, apperror.NewValidation("gstin is required"))
		return
	}

	entity, err := h.service.FindByGSTIN(c.Request.Context(), gstin)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCompany(entity))
}
