package handlers

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/internal/infrastructure/http/v1/dto"
)

// Type alias keeps the handler signatures readable.
type PartyHTTPHandler = CatalogHandler[
	*party.Party,
	dto.CreatePartyRequest,
	dto.UpdatePartyRequest,
]

// PartyHandler bundles the generic CRUD handler with party-specific
// lookups (GSTIN and phone search).
type PartyHandler struct {
	*PartyHTTPHandler
	service *party.Service
}

// NewPartyHandler wires the generic catalog handler for parties.
func NewPartyHandler(base *BaseHandler, service *party.Service) *PartyHandler {
	config := CatalogHandlerConfig[
		*party.Party,
		dto.CreatePartyRequest,
		dto.UpdatePartyRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "party",

		MapCreateDTO: func(req dto.CreatePartyRequest, companyID id.ID) *party.Party {
			p := req.ToEntity()
			p.CompanyID = companyID
			return p
		},

		MapUpdateDTO: func(req dto.UpdatePartyRequest, existing *party.Party) *party.Party {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *party.Party) any {
			return dto.FromParty(entity)
		},
	}

	return &PartyHandler{
		PartyHTTPHandler: NewCatalogHandler(base, config),
		service:          service,
	}
}

// GetByGSTIN handles GET /parties/by-gstin/:gstin
func (h *PartyHandler) GetByGSTIN(c *gin.Context) {
	gstin := c.Param("gstin")
	if gstin == "" {
		h.Error(c, apperror.NewValidation("gstin is required"))
		return
	}

	entity, err := h.service.FindByGSTIN(c.Request.Context(), h.CompanyID(c), gstin)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromParty(entity))
}

// GetByPhone handles GET /parties/by-phone/:phone
func (h *PartyHandler) GetByPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		h.Error(c, apperror.NewValidation("phone is required"))
		return
	}

	entity, err := h.service.FindByPhone(c.Request.Context(), h.CompanyID(c), phone)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromParty(entity))
}
