package dto

import (
	"gstbill/internal/core/entity"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/catalogs/party"
)

// --- Request DTOs ---

// CreatePartyRequest is the request body for creating a party.
type CreatePartyRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	Type           party.PartyType   `json:"type" binding:"required"`
	GSTIN          string            `json:"gstin"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	AddressLine1   string            `json:"addressLine1"`
	AddressLine2   string            `json:"addressLine2"`
	City           string            `json:"city"`
	Pincode        string            `json:"pincode"`
	CreditLimit    types.Money       `json:"creditLimit"`
	OpeningBalance types.Money       `json:"openingBalance"`
	Attributes     entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePartyRequest) ToEntity() *party.Party {
	p := party.New(r.Code, r.Name, r.Type)
	p.GSTIN = r.GSTIN
	p.Phone = r.Phone
	p.Email = r.Email
	p.AddressLine1 = r.AddressLine1
	p.AddressLine2 = r.AddressLine2
	p.City = r.City
	p.Pincode = r.Pincode
	p.CreditLimit = r.CreditLimit
	p.OpeningBalance = r.OpeningBalance
	p.Attributes = r.Attributes
	return p
}

// UpdatePartyRequest is the request body for updating a party.
type UpdatePartyRequest struct {
	Code           string            `json:"code"`
	Name           string            `json:"name" binding:"required"`
	Type           party.PartyType   `json:"type" binding:"required"`
	GSTIN          string            `json:"gstin"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	AddressLine1   string            `json:"addressLine1"`
	AddressLine2   string            `json:"addressLine2"`
	City           string            `json:"city"`
	Pincode        string            `json:"pincode"`
	CreditLimit    types.Money       `json:"creditLimit"`
	OpeningBalance types.Money       `json:"openingBalance"`
	Attributes     entity.Attributes `json:"attributes"`
	Version        int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePartyRequest) ApplyTo(p *party.Party) {
	p.Code = r.Code
	p.Name = r.Name
	p.Type = r.Type
	p.GSTIN = r.GSTIN
	p.Phone = r.Phone
	p.Email = r.Email
	p.AddressLine1 = r.AddressLine1
	p.AddressLine2 = r.AddressLine2
	p.City = r.City
	p.Pincode = r.Pincode
	p.CreditLimit = r.CreditLimit
	p.OpeningBalance = r.OpeningBalance
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// --- Response DTOs ---

// PartyResponse is the response body for a party.
type PartyResponse struct {
	ID             string            `json:"id"`
	CompanyID      string            `json:"companyId"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Type           party.PartyType   `json:"type"`
	GSTIN          string            `json:"gstin,omitempty"`
	StateCode      string            `json:"stateCode,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	AddressLine1   string            `json:"addressLine1,omitempty"`
	AddressLine2   string            `json:"addressLine2,omitempty"`
	City           string            `json:"city,omitempty"`
	Pincode        string            `json:"pincode,omitempty"`
	CreditLimit    types.Money       `json:"creditLimit"`
	OpeningBalance types.Money       `json:"openingBalance"`
	DeletionMark   bool              `json:"deletionMark"`
	Version        int               `json:"version"`
	Attributes     entity.Attributes `json:"attributes,omitempty"`
}

// FromParty creates response DTO from domain entity.
func FromParty(p *party.Party) *PartyResponse {
	return &PartyResponse{
		ID:             p.ID.String(),
		CompanyID:      p.CompanyID.String(),
		Code:           p.Code,
		Name:           p.Name,
		Type:           p.Type,
		GSTIN:          p.GSTIN,
		StateCode:      p.StateCode,
		Phone:          p.Phone,
		Email:          p.Email,
		AddressLine1:   p.AddressLine1,
		AddressLine2:   p.AddressLine2,
		City:           p.City,
		Pincode:        p.Pincode,
		CreditLimit:    p.CreditLimit,
		OpeningBalance: p.OpeningBalance,
		DeletionMark:   p.DeletionMark,
		Version:        p.Version,
		Attributes:     p.Attributes,
	}
}
