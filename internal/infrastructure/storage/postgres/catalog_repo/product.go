package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/product"
	"gstbill/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// FindByBarcode retrieves a product of a company by barcode.
func (r *ProductRepo) FindByBarcode(ctx context.Context, companyID id.ID, barcode string) (*product.Product, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"barcode": barcode}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	item, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", barcode)
		}
		return nil, err
	}
	return item, nil
}

// ListTracked retrieves all stock-tracked products of a company.
func (r *ProductRepo) ListTracked(ctx context.Context, companyID id.ID) ([]*product.Product, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"track_stock": true}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	items, err := r.FindMany(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list tracked: %w", err)
	}
	return items, nil
}
