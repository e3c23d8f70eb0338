package payment

import (
	"context"
	"time"

	"gstbill/internal/core/id"
	"gstbill/internal/domain"
)

// Repository defines persistence operations for vouchers.
type Repository interface {
	Create(ctx context.Context, doc *Payment) error
	GetByID(ctx context.Context, docID id.ID) (*Payment, error)
	GetByNumber(ctx context.Context, companyID id.ID, number string) (*Payment, error)
	Update(ctx context.Context, doc *Payment) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error)
}

// ListFilter for filtering vouchers.
type ListFilter struct {
	domain.ListFilter

	Kind      *Kind
	Mode      *Mode
	PartyID   *id.ID
	InvoiceID *id.ID
	DateFrom  *time.Time
	DateTo    *time.Time
}
