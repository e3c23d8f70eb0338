package dto

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/core/entity"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code            string              `json:"code"`
	Name            string              `json:"name" binding:"required"`
	Type            product.ProductType `json:"type"`
	HSNCode         string              `json:"hsnCode"`
	Barcode         string              `json:"barcode"`
	Unit            string              `json:"unit"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	SalesRate       types.Money         `json:"salesRate"`
	PurchaseRate    types.Money         `json:"purchaseRate"`
	MRP             types.Money         `json:"mrp"`
	DiscountPercent types.Money         `json:"discountPercent"`
	TaxRate         *types.Money        `json:"taxRate"`
	IsGSTApplicable *bool               `json:"isGstApplicable"`
	TrackStock      *bool               `json:"trackStock"`
	OpeningStock    types.Quantity      `json:"openingStock"`
	LowStock        types.Quantity      `json:"lowStock"`
	WarrantyMonths  int                 `json:"warrantyMonths"`
	HasSerialNumber bool                `json:"hasSerialNumber"`
	Attributes      entity.Attributes   `json:"attributes"`
}

// ToEntity converts DTO to domain entity. Pointer fields distinguish
// "not sent" from "sent as zero/false" so GST defaults survive.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Code, r.Name)
	if r.Type != "" {
		p.Type = r.Type
	}
	p.HSNCode = r.HSNCode
	p.Barcode = r.Barcode
	if r.Unit != "" {
		p.Unit = r.Unit
	}
	p.Category = r.Category
	p.Description = r.Description
	p.SalesRate = r.SalesRate
	p.PurchaseRate = r.PurchaseRate
	p.MRP = r.MRP
	p.DiscountPercent = r.DiscountPercent
	if r.TaxRate != nil {
		p.TaxRate = *r.TaxRate
		p.CGSTRate = types.Round2(r.TaxRate.Div(decimal.NewFromInt(2)))
		p.SGSTRate = p.CGSTRate
	}
	if r.IsGSTApplicable != nil {
		p.IsGSTApplicable = *r.IsGSTApplicable
	}
	if r.TrackStock != nil {
		p.TrackStock = *r.TrackStock
	}
	p.OpeningStock = r.OpeningStock
	p.LowStock = r.LowStock
	p.WarrantyMonths = r.WarrantyMonths
	p.HasSerialNumber = r.HasSerialNumber
	p.Attributes = r.Attributes
	return p
}

// UpdateProductRequest is the request body for updating a product.
// Stock levels are not updatable here; they move only through the
// stock endpoints and invoice saves.
type UpdateProductRequest struct {
	Code            string              `json:"code"`
	Name            string              `json:"name" binding:"required"`
	Type            product.ProductType `json:"type" binding:"required"`
	HSNCode         string              `json:"hsnCode"`
	Barcode         string              `json:"barcode"`
	Unit            string              `json:"unit"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	SalesRate       types.Money         `json:"salesRate"`
	PurchaseRate    types.Money         `json:"purchaseRate"`
	MRP             types.Money         `json:"mrp"`
	DiscountPercent types.Money         `json:"discountPercent"`
	TaxRate         types.Money         `json:"taxRate"`
	IsGSTApplicable bool                `json:"isGstApplicable"`
	TrackStock      bool                `json:"trackStock"`
	LowStock        types.Quantity      `json:"lowStock"`
	WarrantyMonths  int                 `json:"warrantyMonths"`
	HasSerialNumber bool                `json:"hasSerialNumber"`
	Attributes      entity.Attributes   `json:"attributes"`
	Version         int                 `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Type = r.Type
	p.HSNCode = r.HSNCode
	p.Barcode = r.Barcode
	p.Unit = r.Unit
	p.Category = r.Category
	p.Description = r.Description
	p.SalesRate = r.SalesRate
	p.PurchaseRate = r.PurchaseRate
	p.MRP = r.MRP
	p.DiscountPercent = r.DiscountPercent
	p.TaxRate = r.TaxRate
	p.CGSTRate = types.Round2(r.TaxRate.Div(decimal.NewFromInt(2)))
	p.SGSTRate = p.CGSTRate
	p.IsGSTApplicable = r.IsGSTApplicable
	p.TrackStock = r.TrackStock
	p.LowStock = r.LowStock
	p.WarrantyMonths = r.WarrantyMonths
	p.HasSerialNumber = r.HasSerialNumber
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID              string              `json:"id"`
	CompanyID       string              `json:"companyId"`
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	Type            product.ProductType `json:"type"`
	HSNCode         string              `json:"hsnCode,omitempty"`
	Barcode         string              `json:"barcode,omitempty"`
	Unit            string              `json:"unit"`
	Category        string              `json:"category,omitempty"`
	Description     string              `json:"description,omitempty"`
	SalesRate       types.Money         `json:"salesRate"`
	PurchaseRate    types.Money         `json:"purchaseRate"`
	MRP             types.Money         `json:"mrp"`
	DiscountPercent types.Money         `json:"discountPercent"`
	TaxRate         types.Money         `json:"taxRate"`
	CGSTRate        types.Money         `json:"cgstRate"`
	SGSTRate        types.Money         `json:"sgstRate"`
	IsGSTApplicable bool                `json:"isGstApplicable"`
	TrackStock      bool                `json:"trackStock"`
	OpeningStock    types.Quantity      `json:"openingStock"`
	CurrentStock    types.Quantity      `json:"currentStock"`
	LowStock        types.Quantity      `json:"lowStock"`
	WarrantyMonths  int                 `json:"warrantyMonths,omitempty"`
	HasSerialNumber bool                `json:"hasSerialNumber"`
	DeletionMark    bool                `json:"deletionMark"`
	Version         int                 `json:"version"`
	Attributes      entity.Attributes   `json:"attributes,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID.String(),
		CompanyID:       p.CompanyID.String(),
		Code:            p.Code,
		Name:            p.Name,
		Type:            p.Type,
		HSNCode:         p.HSNCode,
		Barcode:         p.Barcode,
		Unit:            p.Unit,
		Category:        p.Category,
		Description:     p.Description,
		SalesRate:       p.SalesRate,
		PurchaseRate:    p.PurchaseRate,
		MRP:             p.MRP,
		DiscountPercent: p.DiscountPercent,
		TaxRate:         p.TaxRate,
		CGSTRate:        p.CGSTRate,
		SGSTRate:        p.SGSTRate,
		IsGSTApplicable: p.IsGSTApplicable,
		TrackStock:      p.TrackStock,
		OpeningStock:    p.OpeningStock,
		CurrentStock:    p.CurrentStock,
		LowStock:        p.LowStock,
		WarrantyMonths:  p.WarrantyMonths,
		HasSerialNumber: p.HasSerialNumber,
		DeletionMark:    p.DeletionMark,
		Version:         p.Version,
		Attributes:      p.Attributes,
	}
}
