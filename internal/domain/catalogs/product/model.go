// Package product provides the Product catalog.
// Products carry rates, GST configuration and the running stock level.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/entity"
	"gstbill/internal/core/types"
)

// ProductType defines the kind of item.
type ProductType string

const (
	TypeGoods   ProductType = "Goods"
	TypeService ProductType = "Service"
)

// Product represents a sellable item or service.
type Product struct {
	entity.Catalog
	entity.CompanyOwned

	// Type defines item category; services are never stock-tracked
	Type ProductType `db:"type" json:"type"`

	// HSNCode is the HSN/SAC classification code for GST reporting
	HSNCode string `db:"hsn_code" json:"hsnCode,omitempty"`

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode string `db:"barcode" json:"barcode,omitempty"`

	// Unit of measure (PCS, KG, LTR, ...)
	Unit string `db:"unit" json:"unit"`

	// Category is a free-form product grouping
	Category string `db:"category" json:"category,omitempty"`

	// Description is a detailed description
	Description string `db:"description" json:"description,omitempty"`

	// SalesRate is the default selling rate per unit
	SalesRate types.Money `db:"sales_rate" json:"salesRate"`

	// PurchaseRate is the default buying rate per unit (used for stock valuation)
	PurchaseRate types.Money `db:"purchase_rate" json:"purchaseRate"`

	// MRP is the maximum retail price
	MRP types.Money `db:"mrp" json:"mrp"`

	// DiscountPercent is the default line discount
	DiscountPercent types.Money `db:"discount_percent" json:"discountPercent"`

	// TaxRate is the total GST rate percent (CGST + SGST)
	TaxRate types.Money `db:"tax_rate" json:"taxRate"`

	// CGSTRate and SGSTRate are the intrastate halves of TaxRate
	CGSTRate types.Money `db:"cgst_rate" json:"cgstRate"`
	SGSTRate types.Money `db:"sgst_rate" json:"sgstRate"`

	// IsGSTApplicable is false for exempt/non-GST items
	IsGSTApplicable bool `db:"is_gst_applicable" json:"isGstApplicable"`

	// TrackStock enables stock accounting for this product
	TrackStock bool `db:"track_stock" json:"trackStock"`

	// OpeningStock is the quantity on hand when the product was created
	OpeningStock types.Quantity `db:"opening_stock" json:"openingStock"`

	// CurrentStock is the running quantity on hand. May be negative:
	// sales are never blocked on shortage, the shortfall is visible instead.
	CurrentStock types.Quantity `db:"current_stock" json:"currentStock"`

	// LowStock is the reorder threshold for the low-stock report
	LowStock types.Quantity `db:"low_stock" json:"lowStock"`

	// WarrantyMonths for serialized goods
	WarrantyMonths int `db:"warranty_months" json:"warrantyMonths,omitempty"`

	// HasSerialNumber indicates per-unit serial tracking
	HasSerialNumber bool `db:"has_serial_number" json:"hasSerialNumber"`
}

// New creates a new Product with required fields and GST defaults (18%).
func New(code, name string) *Product {
	return &Product{
		Catalog:         entity.NewCatalog(code, name),
		Type:            TypeGoods,
		Unit:            "PCS",
		TaxRate:         decimal.NewFromInt(18),
		CGSTRate:        decimal.NewFromInt(9),
		SGSTRate:        decimal.NewFromInt(9),
		IsGSTApplicable: true,
		TrackStock:      true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if err := p.ValidateCompany(ctx); err != nil {
		return err
	}

	switch p.Type {
	case TypeGoods, TypeService:
	default:
		return apperror.NewValidation("invalid product type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}

	if p.SalesRate.IsNegative() || p.PurchaseRate.IsNegative() || p.MRP.IsNegative() {
		return apperror.NewValidation("rates cannot be negative").
			WithDetail("field", "rates")
	}

	if p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("tax rate must be between 0 and 100").
			WithDetail("field", "taxRate")
	}

	if p.Type == TypeService && p.TrackStock {
		return apperror.NewValidation("services cannot be stock-tracked").
			WithDetail("field", "trackStock")
	}

	return nil
}

// IsOutOfStock reports whether a tracked product has no stock left.
func (p *Product) IsOutOfStock() bool {
	return p.TrackStock && !p.CurrentStock.IsPositive()
}

// IsLowStock reports whether a tracked product is at or below its
// reorder threshold but not yet out of stock.
func (p *Product) IsLowStock() bool {
	return p.TrackStock && p.CurrentStock.IsPositive() &&
		p.CurrentStock.LessThanOrEqual(p.LowStock)
}

// StockValue returns current stock valued at purchase rate.
func (p *Product) StockValue() types.Money {
	if !p.TrackStock {
		return decimal.Zero
	}
	return p.CurrentStock.Mul(p.PurchaseRate)
}

// --- Generic mapping conversion ---

// ToMap renders the product as a generic string-keyed mapping,
// the exchange format used for imports/exports and the audit log.
func (p *Product) ToMap() entity.Attributes {
	return entity.Attributes{
		"id":               p.ID.String(),
		"company_id":       p.CompanyID.String(),
		"code":             p.Code,
		"name":             p.Name,
		"type":             string(p.Type),
		"hsn_code":         p.HSNCode,
		"barcode":          p.Barcode,
		"unit":             p.Unit,
		"category":         p.Category,
		"description":      p.Description,
		"sales_rate":       p.SalesRate.String(),
		"purchase_rate":    p.PurchaseRate.String(),
		"mrp":              p.MRP.String(),
		"discount_percent": p.DiscountPercent.String(),
		"tax_rate":         p.TaxRate.String(),
		"cgst_rate":        p.CGSTRate.String(),
		"sgst_rate":        p.SGSTRate.String(),
		"is_gst":           p.IsGSTApplicable,
		"track_stock":      p.TrackStock,
		"opening_stock":    p.OpeningStock.String(),
		"current_stock":    p.CurrentStock.String(),
		"low_stock":        p.LowStock.String(),
		"warranty_months":  int64(p.WarrantyMonths),
		"has_serial":       p.HasSerialNumber,
	}
}

// FromMap builds a product from a generic mapping. Missing, empty or
// malformed numeric fields coerce to zero; booleans default to false.
// Defaults mirror New: unit PCS, goods type, GST applicable, tracked.
func FromMap(m entity.Attributes) *Product {
	p := New(m.GetString("code"), m.GetString("name"))

	if t := m.GetString("type"); t != "" {
		p.Type = ProductType(t)
	}
	p.HSNCode = m.GetString("hsn_code")
	p.Barcode = m.GetString("barcode")
	if u := m.GetString("unit"); u != "" {
		p.Unit = u
	}
	p.Category = m.GetString("category")
	p.Description = m.GetString("description")

	p.SalesRate = types.Coerce(m["sales_rate"])
	p.PurchaseRate = types.Coerce(m["purchase_rate"])
	p.MRP = types.Coerce(m["mrp"])
	p.DiscountPercent = types.Coerce(m["discount_percent"])
	if m.Has("tax_rate") {
		p.TaxRate = types.Coerce(m["tax_rate"])
	}
	if m.Has("cgst_rate") {
		p.CGSTRate = types.Coerce(m["cgst_rate"])
	}
	if m.Has("sgst_rate") {
		p.SGSTRate = types.Coerce(m["sgst_rate"])
	}
	if m.Has("is_gst") {
		p.IsGSTApplicable = m.GetBool("is_gst")
	}
	if m.Has("track_stock") {
		p.TrackStock = m.GetBool("track_stock")
	}
	p.OpeningStock = types.Coerce(m["opening_stock"])
	p.CurrentStock = types.Coerce(m["current_stock"])
	p.LowStock = types.Coerce(m["low_stock"])
	p.WarrantyMonths = int(m.GetInt("warranty_months"))
	p.HasSerialNumber = m.GetBool("has_serial")

	return p
}
