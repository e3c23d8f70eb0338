package stock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/pkg/logger"
)

// Availability messages returned to clients. The desktop UI shows them
// verbatim, so they are part of the contract.
const (
	msgProductNotFound  = "Product not found"
	msgTrackingDisabled = "Stock tracking disabled"
	msgSufficient       = "Sufficient stock"
	msgInsufficient     = "Insufficient stock"
)

// Skip reasons for batch entries.
const (
	reasonMissingProduct = "missing product id"
	reasonNonPositiveQty = "quantity must be positive"
	reasonNotFound       = "product not found"
)

// Service provides business operations on stock levels.
// Transactions are managed by the caller (invoice save runs batches
// inside the document transaction).
type Service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ApplyDelta applies a single stock movement to one product.
// Quantity must be positive; the direction carries the sign.
// Stock may go negative: shortage is surfaced by reports, never by
// blocking the sale.
func (s *Service) ApplyDelta(ctx context.Context, productID id.ID, qty types.Quantity, direction Direction) error {
	if !qty.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("quantity", qty.String())
	}
	if direction != DirectionIncrease && direction != DirectionDecrease {
		return apperror.NewValidation("invalid direction").
			WithDetail("direction", string(direction))
	}

	found, err := s.repo.AdjustStock(ctx, productID, qty, direction)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if !found {
		return apperror.NewNotFound("product", productID.String())
	}

	logger.Debug(ctx, "stock adjusted",
		"product_id", productID.String(),
		"quantity", qty.String(),
		"direction", string(direction),
	)

	return nil
}

// ApplySale decreases stock for each sold line. See ApplyBatch.
func (s *Service) ApplySale(ctx context.Context, deltas []Delta) ([]DeltaResult, error) {
	return s.ApplyBatch(ctx, deltas, DirectionDecrease)
}

// ApplyPurchase increases stock for each received line. See ApplyBatch.
func (s *Service) ApplyPurchase(ctx context.Context, deltas []Delta) ([]DeltaResult, error) {
	return s.ApplyBatch(ctx, deltas, DirectionIncrease)
}

// ApplyBatch applies an ordered list of deltas in one direction.
// Entries are applied independently: a missing product id, a
// non-positive quantity or an unknown product skips that entry and the
// rest still apply. The per-entry results let the caller see exactly
// which lines took effect.
func (s *Service) ApplyBatch(ctx context.Context, deltas []Delta, direction Direction) ([]DeltaResult, error) {
	results := make([]DeltaResult, 0, len(deltas))

	for _, d := range deltas {
		if d.ProductID == nil || id.IsNil(*d.ProductID) {
			results = append(results, DeltaResult{Applied: false, Reason: reasonMissingProduct})
			continue
		}
		res := DeltaResult{ProductID: d.ProductID.String()}

		if !d.Quantity.IsPositive() {
			res.Reason = reasonNonPositiveQty
			results = append(results, res)
			continue
		}

		found, err := s.repo.AdjustStock(ctx, *d.ProductID, d.Quantity, direction)
		if err != nil {
			return results, fmt.Errorf("adjust stock for %s: %w", d.ProductID, err)
		}
		if !found {
			res.Reason = reasonNotFound
			logger.Warn(ctx, "stock delta skipped, unknown product",
				"product_id", d.ProductID.String())
			results = append(results, res)
			continue
		}

		res.Applied = true
		results = append(results, res)
	}

	return results, nil
}

// CheckAvailability reports whether required quantity of a product is
// on hand. A missing product is a negative result, not an error: the
// caller is typically a billing screen validating a half-typed line.
func (s *Service) CheckAvailability(ctx context.Context, productID id.ID, required types.Quantity) (Availability, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return Availability{
				Available:    false,
				Message:      msgProductNotFound,
				CurrentStock: decimal.Zero,
				Required:     required,
				Shortage:     types.MaxZero(required),
			}, nil
		}
		return Availability{}, fmt.Errorf("get product: %w", err)
	}

	if !p.TrackStock {
		return Availability{
			Available:    true,
			Message:      msgTrackingDisabled,
			CurrentStock: p.CurrentStock,
			Required:     required,
		}, nil
	}

	avail := Availability{
		CurrentStock: p.CurrentStock,
		Required:     required,
		Shortage:     types.MaxZero(required.Sub(p.CurrentStock)),
	}
	if p.CurrentStock.GreaterThanOrEqual(required) {
		avail.Available = true
		avail.Message = msgSufficient
	} else {
		avail.Message = msgInsufficient
	}

	return avail, nil
}

// EnsureAvailable turns an insufficient availability into a structured
// error. Used only when strict stock checking is switched on.
func (s *Service) EnsureAvailable(ctx context.Context, productID id.ID, required types.Quantity) error {
	avail, err := s.CheckAvailability(ctx, productID, required)
	if err != nil {
		return err
	}
	if !avail.Available {
		if avail.Message == msgProductNotFound {
			return apperror.NewNotFound("product", productID.String())
		}
		return apperror.NewInsufficientStock(
			productID.String(),
			required.String(),
			avail.CurrentStock.String(),
		)
	}
	return nil
}

// ListLowStock returns tracked products at or below their reorder
// threshold. Out-of-stock products are included here; only the summary
// separates them into their own bucket.
func (s *Service) ListLowStock(ctx context.Context, companyID id.ID) ([]LowStockItem, error) {
	products, err := s.repo.ListTracked(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tracked products: %w", err)
	}

	items := make([]LowStockItem, 0)
	for _, p := range products {
		if p.CurrentStock.GreaterThan(p.LowStock) {
			continue
		}
		items = append(items, LowStockItem{
			ProductID:    p.ID,
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			Threshold:    p.LowStock,
			Shortage:     types.MaxZero(p.LowStock.Sub(p.CurrentStock)),
		})
	}

	return items, nil
}

// GetSummary aggregates stock state for a company.
// A product counts as out-of-stock when current <= 0; the low-stock
// bucket only holds products with 0 < current <= threshold, so the two
// buckets never overlap. Stock value is current quantity at purchase
// rate over tracked products, rounded to 2 decimal places.
func (s *Service) GetSummary(ctx context.Context, companyID id.ID, totalProducts int) (Summary, error) {
	products, err := s.repo.ListTracked(ctx, companyID)
	if err != nil {
		return Summary{}, fmt.Errorf("list tracked products: %w", err)
	}

	summary := Summary{
		TotalProducts:   totalProducts,
		TrackedProducts: len(products),
		TotalStockValue: decimal.Zero,
	}

	for _, p := range products {
		switch {
		case !p.CurrentStock.IsPositive():
			summary.OutOfStockCount++
		case p.CurrentStock.LessThanOrEqual(p.LowStock):
			summary.LowStockCount++
		}
		summary.TotalStockValue = summary.TotalStockValue.Add(p.StockValue())
	}

	summary.TotalStockValue = types.Round2(summary.TotalStockValue)
	return summary, nil
}
