package invoice

import (
	"context"
	"time"

	"gstbill/internal/core/id"
	"gstbill/internal/domain"
)

// Repository defines persistence operations for invoices.
type Repository interface {
	Create(ctx context.Context, doc *Invoice) error
	GetByID(ctx context.Context, docID id.ID) (*Invoice, error)
	GetByNumber(ctx context.Context, companyID id.ID, number string) (*Invoice, error)
	Update(ctx context.Context, doc *Invoice) error
	Delete(ctx context.Context, docID id.ID) error

	GetItems(ctx context.Context, docID id.ID) ([]Item, error)
	SaveItems(ctx context.Context, docID id.ID, items []Item) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*Invoice, error)
}

// ListFilter for filtering invoices.
type ListFilter struct {
	domain.ListFilter

	PartyID  *id.ID
	Status   *Status
	BillType *BillType
	DateFrom *time.Time
	DateTo   *time.Time
}
