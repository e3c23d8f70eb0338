package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain"
	"gstbill/pkg/numerator"
)

type fakeRepo struct {
	vouchers map[id.ID]*Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{vouchers: make(map[id.ID]*Payment)}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Payment) error {
	r.vouchers[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Payment, error) {
	doc, ok := r.vouchers[docID]
	if !ok {
		return nil, apperror.NewNotFound("payment", docID.String())
	}
	return doc, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, companyID id.ID, number string) (*Payment, error) {
	for _, doc := range r.vouchers {
		if doc.CompanyID == companyID && doc.Number == number {
			return doc, nil
		}
	}
	return nil, apperror.NewNotFound("payment", number)
}

func (r *fakeRepo) Update(ctx context.Context, doc *Payment) error {
	r.vouchers[doc.ID] = doc
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(r.vouchers, docID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Payment], error) {
	var out []*Payment
	for _, doc := range r.vouchers {
		out = append(out, doc)
	}
	return domain.ListResult[*Payment]{Items: out, TotalCount: int64(len(out))}, nil
}

// fakeSettler clamps like the invoice balance does.
type fakeSettler struct {
	balance decimal.Decimal
	calls   int
}

func (s *fakeSettler) SettleReceipt(ctx context.Context, invoiceID id.ID, amount types.Money) (types.Money, error) {
	s.calls++
	applied := amount
	if applied.GreaterThan(s.balance) {
		applied = s.balance
	}
	s.balance = s.balance.Sub(applied)
	return applied, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *fakeRepo, settler *fakeSettler) *Service {
	return NewService(repo, nil, settler, &numerator.MockGenerator{}, fakeTxManager{}, nil)
}

func newVoucher(kind Kind, amount string) *Payment {
	doc := New(id.New(), id.New(), kind)
	doc.PartyName = "Sharma Electricals"
	doc.Amount = decimal.RequireFromString(amount)
	return doc
}

func TestCreate_LinkedReceiptSettlesInvoice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	settler := &fakeSettler{balance: decimal.NewFromInt(1062)}
	svc := newService(repo, settler)

	invoiceID := id.New()
	doc := newVoucher(KindReceipt, "500")
	doc.InvoiceID = &invoiceID

	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settler.calls != 1 {
		t.Errorf("settler called %d times, want 1", settler.calls)
	}
	if !doc.AppliedAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("applied = %s, want 500", doc.AppliedAmount)
	}
	if !settler.balance.Equal(decimal.NewFromInt(562)) {
		t.Errorf("remaining balance = %s, want 562", settler.balance)
	}
	if doc.Number == "" {
		t.Error("number not assigned")
	}
}

func TestCreate_OverpaymentLeavesRemainderOnAccount(t *testing.T) {
	ctx := context.Background()
	settler := &fakeSettler{balance: decimal.NewFromInt(300)}
	svc := newService(newFakeRepo(), settler)

	invoiceID := id.New()
	doc := newVoucher(KindReceipt, "500")
	doc.InvoiceID = &invoiceID

	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.AppliedAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("applied = %s, want 300", doc.AppliedAmount)
	}
	if !doc.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("voucher amount must stay 500, got %s", doc.Amount)
	}
}

func TestCreate_UnlinkedVoucherSkipsSettlement(t *testing.T) {
	ctx := context.Background()
	settler := &fakeSettler{balance: decimal.NewFromInt(1000)}
	svc := newService(newFakeRepo(), settler)

	if err := svc.Create(ctx, newVoucher(KindPayment, "250")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settler.calls != 0 {
		t.Errorf("settler called %d times, want 0", settler.calls)
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeRepo(), &fakeSettler{})

	doc := newVoucher(KindReceipt, "0")
	if err := svc.Create(ctx, doc); err == nil {
		t.Error("zero amount must fail validation")
	}

	doc = newVoucher(KindPayment, "100")
	invoiceID := id.New()
	doc.InvoiceID = &invoiceID
	if err := svc.Create(ctx, doc); err == nil {
		t.Error("payment with invoice link must fail validation")
	}

	doc = newVoucher(KindReceipt, "100")
	doc.Mode = Mode("Barter")
	if err := svc.Create(ctx, doc); err == nil {
		t.Error("unknown mode must fail validation")
	}
}

func TestDelete_AppliedReceiptRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	settler := &fakeSettler{balance: decimal.NewFromInt(1000)}
	svc := newService(repo, settler)

	invoiceID := id.New()
	doc := newVoucher(KindReceipt, "400")
	doc.InvoiceID = &invoiceID
	if err := svc.Create(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Delete(ctx, doc.ID)
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeConflict {
		t.Errorf("expected conflict, got %v", err)
	}

	// Unapplied vouchers delete fine.
	plain := newVoucher(KindPayment, "100")
	if err := svc.Create(ctx, plain); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, plain.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
