// Package stock maintains per-product stock levels and derived reports.
package stock

import (
	"context"

	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/catalogs/product"
)

// Direction of a stock delta.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Repository defines persistence operations for stock levels.
// The store applies increments atomically; there is no
// read-modify-write window even with concurrent writers.
type Repository interface {
	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, productID id.ID) (*product.Product, error)

	// ListTracked retrieves all stock-tracked products of a company.
	ListTracked(ctx context.Context, companyID id.ID) ([]*product.Product, error)

	// AdjustStock applies a single atomic increment/decrement to a
	// product's current stock. Returns false when no such product exists.
	AdjustStock(ctx context.Context, productID id.ID, qty types.Quantity, direction Direction) (bool, error)
}

// Delta is one entry of a batch stock update.
type Delta struct {
	// ProductID may be nil for malformed input rows; such entries are
	// skipped, not rejected.
	ProductID *id.ID         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
}

// DeltaResult reports the outcome of one batch entry.
type DeltaResult struct {
	ProductID string `json:"productId,omitempty"`
	Applied   bool   `json:"applied"`
	Reason    string `json:"reason,omitempty"` // empty when applied
}

// Availability is the result of a stock availability check.
type Availability struct {
	Available    bool           `json:"available"`
	Message      string         `json:"message"`
	CurrentStock types.Quantity `json:"currentStock"`
	Required     types.Quantity `json:"required"`
	Shortage     types.Quantity `json:"shortage"`
}

// LowStockItem is one row of the low-stock report.
type LowStockItem struct {
	ProductID    id.ID          `json:"productId"`
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	CurrentStock types.Quantity `json:"currentStock"`
	Threshold    types.Quantity `json:"threshold"`
	Shortage     types.Quantity `json:"shortage"`
}

// Summary aggregates stock state across a company's products.
type Summary struct {
	TotalProducts   int         `json:"totalProducts"`
	TrackedProducts int         `json:"trackedProducts"`
	LowStockCount   int         `json:"lowStockCount"`
	OutOfStockCount int         `json:"outOfStockCount"`
	TotalStockValue types.Money `json:"totalStockValue"`
}
