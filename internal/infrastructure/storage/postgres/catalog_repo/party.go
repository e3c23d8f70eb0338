package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/domain/catalogs/party"
	"gstbill/internal/infrastructure/storage/postgres"
)

const partyTable = "cat_parties"

// PartyRepo implements party.Repository.
type PartyRepo struct {
	*BaseCatalogRepo[*party.Party]
}

// NewPartyRepo creates a new party repository.
func NewPartyRepo(txm *postgres.TxManager) *PartyRepo {
	return &PartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			partyTable,
			postgres.ExtractDBColumns[party.Party](),
			func() *party.Party { return &party.Party{} },
		),
	}
}

// FindByGSTIN retrieves a party of a company by GSTIN.
func (r *PartyRepo) FindByGSTIN(ctx context.Context, companyID id.ID, gstin string) (*party.Party, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"gstin": gstin}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	item, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("party", gstin)
		}
		return nil, err
	}
	return item, nil
}

// FindByPhone retrieves a party of a company by phone number.
func (r *PartyRepo) FindByPhone(ctx context.Context, companyID id.ID, phone string) (*party.Party, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"phone": phone}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	item, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("party", phone)
		}
		return nil, err
	}
	return item, nil
}
