package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"gstbill/internal/core/apperror"
	"gstbill/internal/domain/catalogs/company"
	"gstbill/internal/infrastructure/storage/postgres"
)

const companyTable = "cat_companies"

// CompanyRepo implements company.Repository.
type CompanyRepo struct {
	*BaseCatalogRepo[*company.Company]
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(txm *postgres.TxManager) *CompanyRepo {
	return &CompanyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			companyTable,
			postgres.ExtractDBColumns[company.Company](),
			func() *company.Company { return &company.Company{} },
		),
	}
}

// FindByGSTIN retrieves a company by its GST registration number.
func (r *CompanyRepo) FindByGSTIN(ctx context.Context, gstin string) (*company.Company, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"gstin": gstin}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	item, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("company", gstin)
		}
		return nil, err
	}
	return item, nil
}
