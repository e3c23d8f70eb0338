package dto

import (
	"gstbill/internal/core/entity"
	"gstbill/internal/domain/catalogs/company"
)

// --- Request DTOs ---

// CreateCompanyRequest is the request body for creating a company.
type CreateCompanyRequest struct {
	Code          string            `json:"code"`
	Name          string            `json:"name" binding:"required"`
	GSTIN         string            `json:"gstin"`
	AddressLine1  string            `json:"addressLine1"`
	AddressLine2  string            `json:"addressLine2"`
	City          string            `json:"city"`
	Pincode       string            `json:"pincode"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	InvoicePrefix string            `json:"invoicePrefix"`
	BankName      string            `json:"bankName"`
	BankAccount   string            `json:"bankAccount"`
	BankIFSC      string            `json:"bankIfsc"`
	Attributes    entity.Attributes `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCompanyRequest) ToEntity() *company.Company {
	c := company.New(r.Code, r.Name)
	c.GSTIN = r.GSTIN
	c.AddressLine1 = r.AddressLine1
	c.AddressLine2 = r.AddressLine2
	c.City = r.City
	c.Pincode = r.Pincode
	c.Phone = r.Phone
	c.Email = r.Email
	if r.InvoicePrefix != "" {
		c.InvoicePrefix = r.InvoicePrefix
	}
	c.BankName = r.BankName
	c.BankAccount = r.BankAccount
	c.BankIFSC = r.BankIFSC
	c.Attributes = r.Attributes
	return c
}

// UpdateCompanyRequest is the request body for updating a company.
type UpdateCompanyRequest struct {
	Code          string            `json:"code"`
	Name          string            `json:"name" binding:"required"`
	GSTIN         string            `json:"gstin"`
	AddressLine1  string            `json:"addressLine1"`
	AddressLine2  string            `json:"addressLine2"`
	City          string            `json:"city"`
	Pincode       string            `json:"pincode"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	InvoicePrefix string            `json:"invoicePrefix"`
	BankName      string            `json:"bankName"`
	BankAccount   string            `json:"bankAccount"`
	BankIFSC      string            `json:"bankIfsc"`
	Attributes    entity.Attributes `json:"attributes"`
	Version       int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCompanyRequest) ApplyTo(c *company.Company) {
	c.Code = r.Code
	c.Name = r.Name
	c.GSTIN = r.GSTIN
	c.AddressLine1 = r.AddressLine1
	c.AddressLine2 = r.AddressLine2
	c.City = r.City
	c.Pincode = r.Pincode
	c.Phone = r.Phone
	c.Email = r.Email
	c.InvoicePrefix = r.InvoicePrefix
	c.BankName = r.BankName
	c.BankAccount = r.BankAccount
	c.BankIFSC = r.BankIFSC
	c.Attributes = r.Attributes
	c.Version = r.Version
}

// --- Response DTOs ---

// CompanyResponse is the response body for a company.
type CompanyResponse struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	GSTIN         string            `json:"gstin,omitempty"`
	StateCode     string            `json:"stateCode,omitempty"`
	StateName     string            `json:"stateName,omitempty"`
	AddressLine1  string            `json:"addressLine1,omitempty"`
	AddressLine2  string            `json:"addressLine2,omitempty"`
	City          string            `json:"city,omitempty"`
	Pincode       string            `json:"pincode,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	InvoicePrefix string            `json:"invoicePrefix"`
	BankName      string            `json:"bankName,omitempty"`
	BankAccount   string            `json:"bankAccount,omitempty"`
	BankIFSC      string            `json:"bankIfsc,omitempty"`
	DeletionMark  bool              `json:"deletionMark"`
	Version       int               `json:"version"`
	Attributes    entity.Attributes `json:"attributes,omitempty"`
}

// FromCompany creates response DTO from domain entity.
func FromCompany(c *company.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		StateCode:     c.StateCode,
		StateName:     c.StateName(),
		AddressLine1:  c.AddressLine1,
		AddressLine2:  c.AddressLine2,
		City:          c.City,
		Pincode:       c.Pincode,
		Phone:         c.Phone,
		Email:         c.Email,
		InvoicePrefix: c.InvoicePrefix,
		BankName:      c.BankName,
		BankAccount:   c.BankAccount,
		BankIFSC:      c.BankIFSC,
		DeletionMark:  c.DeletionMark,
		Version:       c.Version,
		Attributes:    c.Attributes,
	}
}
