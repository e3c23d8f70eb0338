package product

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/entity"
	"gstbill/internal/core/id"
)

func TestFromMap_DefensiveCoercion(t *testing.T) {
	m := entity.Attributes{
		"code":          "P-001",
		"name":          "Cable",
		"sales_rate":    json.Number("125.50"),
		"purchase_rate": "100",
		"mrp":           nil,
		"current_stock": "garbage",
		"low_stock":     5,
	}

	p := FromMap(m)

	if !p.SalesRate.Equal(decimal.RequireFromString("125.50")) {
		t.Errorf("sales_rate = %s", p.SalesRate)
	}
	if !p.PurchaseRate.Equal(decimal.NewFromInt(100)) {
		t.Errorf("purchase_rate = %s", p.PurchaseRate)
	}
	if !p.MRP.IsZero() {
		t.Errorf("nil mrp should coerce to zero, got %s", p.MRP)
	}
	if !p.CurrentStock.IsZero() {
		t.Errorf("malformed current_stock should coerce to zero, got %s", p.CurrentStock)
	}
	if !p.LowStock.Equal(decimal.NewFromInt(5)) {
		t.Errorf("low_stock = %s", p.LowStock)
	}
	// Defaults preserved when keys absent
	if !p.TaxRate.Equal(decimal.NewFromInt(18)) {
		t.Errorf("tax_rate default = %s, want 18", p.TaxRate)
	}
	if p.Unit != "PCS" {
		t.Errorf("unit default = %s, want PCS", p.Unit)
	}
	if !p.TrackStock || !p.IsGSTApplicable {
		t.Error("track_stock and is_gst should default to true")
	}
}

func TestToMapFromMap_RoundTrip(t *testing.T) {
	p := New("P-042", "Switchboard")
	p.CompanyID = id.New()
	p.HSNCode = "8536"
	p.SalesRate = decimal.RequireFromString("499.99")
	p.CurrentStock = decimal.NewFromInt(12)
	p.LowStock = decimal.NewFromInt(3)

	got := FromMap(p.ToMap())

	if got.Name != p.Name || got.Code != p.Code || got.HSNCode != p.HSNCode {
		t.Errorf("identity fields lost: %+v", got)
	}
	if !got.SalesRate.Equal(p.SalesRate) {
		t.Errorf("sales_rate = %s, want %s", got.SalesRate, p.SalesRate)
	}
	if !got.CurrentStock.Equal(p.CurrentStock) {
		t.Errorf("current_stock = %s, want %s", got.CurrentStock, p.CurrentStock)
	}
}

func TestStockClassification(t *testing.T) {
	p := New("P-1", "Bulb")
	p.LowStock = decimal.NewFromInt(10)

	p.CurrentStock = decimal.NewFromInt(0)
	if !p.IsOutOfStock() {
		t.Error("zero stock must be out of stock")
	}
	if p.IsLowStock() {
		t.Error("out-of-stock product must not count as low stock")
	}

	p.CurrentStock = decimal.NewFromInt(-2)
	if !p.IsOutOfStock() {
		t.Error("negative stock must be out of stock")
	}

	p.CurrentStock = decimal.NewFromInt(10)
	if p.IsOutOfStock() || !p.IsLowStock() {
		t.Error("stock equal to threshold must be low, not out")
	}

	p.CurrentStock = decimal.NewFromInt(11)
	if p.IsLowStock() {
		t.Error("stock above threshold must not be low")
	}

	// Tracking disabled: never low, never out
	p.TrackStock = false
	p.CurrentStock = decimal.NewFromInt(-5)
	if p.IsOutOfStock() || p.IsLowStock() {
		t.Error("untracked product must never classify as low or out of stock")
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	p := New("P-1", "Bulb")
	p.CompanyID = id.New()
	if err := p.Validate(ctx); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	p.Name = ""
	if err := p.Validate(ctx); err == nil {
		t.Error("missing name must fail validation")
	}

	p = New("P-2", "AMC Contract")
	p.CompanyID = id.New()
	p.Type = TypeService
	p.TrackStock = true
	if err := p.Validate(ctx); err == nil {
		t.Error("stock-tracked service must fail validation")
	}
}
