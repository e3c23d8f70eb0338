// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"fmt"

	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/domain/registers/stock"
	"gstbill/internal/infrastructure/storage/postgres"
	"gstbill/internal/infrastructure/storage/postgres/catalog_repo"
)

// StockRepo implements stock.Repository on top of the product catalog.
// Stock levels live on the product row; deltas are applied as a single
// atomic UPDATE so concurrent writers never lose an increment.
type StockRepo struct {
	txm      *postgres.TxManager
	products *catalog_repo.ProductRepo
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txm *postgres.TxManager, products *catalog_repo.ProductRepo) *StockRepo {
	return &StockRepo{txm: txm, products: products}
}

// GetProduct retrieves a product by ID.
func (r *StockRepo) GetProduct(ctx context.Context, productID id.ID) (*product.Product, error) {
	return r.products.GetByID(ctx, productID)
}

// ListTracked retrieves all stock-tracked products of a company.
func (r *StockRepo) ListTracked(ctx context.Context, companyID id.ID) ([]*product.Product, error) {
	return r.products.ListTracked(ctx, companyID)
}

// adjustStockSQL builds the atomic stock update for a direction.
// Soft-deleted products are excluded the same way every catalog query
// excludes them.
func adjustStockSQL(direction stock.Direction) string {
	op := "+"
	if direction == stock.DirectionDecrease {
		op = "-"
	}

	return fmt.Sprintf(`
		UPDATE cat_products
		SET current_stock = current_stock %s $1,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $2 AND deletion_mark = false
	`, op)
}

// AdjustStock applies one atomic increment or decrement to a product's
// current stock. Returns false when no live product exists. The level
// is allowed to go negative.
func (r *StockRepo) AdjustStock(ctx context.Context, productID id.ID, qty types.Quantity, direction stock.Direction) (bool, error) {
	result, err := r.txm.GetQuerier(ctx).Exec(ctx, adjustStockSQL(direction), qty, productID)
	if err != nil {
		return false, fmt.Errorf("adjust stock: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Ensure interface compliance.
var _ stock.Repository = (*StockRepo)(nil)
