package stock

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"gstbill/internal/core/apperror"
	"gstbill/internal/core/id"
	"gstbill/internal/core/types"
	"gstbill/internal/domain/catalogs/product"
)

// fakeRepo keeps products in memory and applies deltas like the SQL
// increment does.
type fakeRepo struct {
	products map[id.ID]*product.Product
}

func newFakeRepo(products ...*product.Product) *fakeRepo {
	r := &fakeRepo{products: make(map[id.ID]*product.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) GetProduct(ctx context.Context, productID id.ID) (*product.Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (r *fakeRepo) ListTracked(ctx context.Context, companyID id.ID) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.products {
		if p.TrackStock && p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) AdjustStock(ctx context.Context, productID id.ID, qty types.Quantity, direction Direction) (bool, error) {
	p, ok := r.products[productID]
	if !ok {
		return false, nil
	}
	if direction == DirectionDecrease {
		p.CurrentStock = p.CurrentStock.Sub(qty)
	} else {
		p.CurrentStock = p.CurrentStock.Add(qty)
	}
	return true, nil
}

func newProduct(companyID id.ID, name string, current, low int64) *product.Product {
	p := product.New("P-"+name, name)
	p.CompanyID = companyID
	p.CurrentStock = decimal.NewFromInt(current)
	p.LowStock = decimal.NewFromInt(low)
	return p
}

func TestApplyBatch_SaleAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()
	p := newProduct(companyID, "cable", 20, 5)
	svc := NewService(newFakeRepo(p))

	results, err := svc.ApplySale(ctx, []Delta{{ProductID: &p.ID, Quantity: decimal.NewFromInt(3)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || !results[0].Applied {
		t.Fatalf("expected one applied result, got %+v", results)
	}
	if !p.CurrentStock.Equal(decimal.NewFromInt(17)) {
		t.Errorf("stock after sale = %s, want 17", p.CurrentStock)
	}

	// Matching purchase restores the original level.
	_, err = svc.ApplyPurchase(ctx, []Delta{{ProductID: &p.ID, Quantity: decimal.NewFromInt(3)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.CurrentStock.Equal(decimal.NewFromInt(20)) {
		t.Errorf("stock after round trip = %s, want 20", p.CurrentStock)
	}
}

func TestApplyBatch_SkipsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()
	p := newProduct(companyID, "bulb", 10, 2)
	svc := NewService(newFakeRepo(p))

	unknown := id.New()
	deltas := []Delta{
		{ProductID: nil, Quantity: decimal.NewFromInt(1)},
		{ProductID: &p.ID, Quantity: decimal.Zero},
		{ProductID: &unknown, Quantity: decimal.NewFromInt(1)},
		{ProductID: &p.ID, Quantity: decimal.NewFromInt(4)},
	}

	results, err := svc.ApplySale(ctx, deltas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	wantApplied := []bool{false, false, false, true}
	for i, want := range wantApplied {
		if results[i].Applied != want {
			t.Errorf("entry %d applied = %v, want %v (reason %q)", i, results[i].Applied, want, results[i].Reason)
		}
	}
	if results[0].Reason != reasonMissingProduct {
		t.Errorf("entry 0 reason = %q", results[0].Reason)
	}
	if results[1].Reason != reasonNonPositiveQty {
		t.Errorf("entry 1 reason = %q", results[1].Reason)
	}
	if results[2].Reason != reasonNotFound {
		t.Errorf("entry 2 reason = %q", results[2].Reason)
	}

	// Only the valid entry applied.
	if !p.CurrentStock.Equal(decimal.NewFromInt(6)) {
		t.Errorf("stock = %s, want 6", p.CurrentStock)
	}
}

func TestApplyDelta_NegativeStockAllowed(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()
	p := newProduct(companyID, "fan", 2, 0)
	svc := NewService(newFakeRepo(p))

	if err := svc.ApplyDelta(ctx, p.ID, decimal.NewFromInt(5), DirectionDecrease); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.CurrentStock.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("stock = %s, want -3", p.CurrentStock)
	}
}

func TestApplyDelta_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	err := svc.ApplyDelta(ctx, id.New(), decimal.NewFromInt(-1), DirectionDecrease)
	if err == nil || !apperror.IsAppError(err) {
		t.Errorf("negative quantity must fail with AppError, got %v", err)
	}

	err = svc.ApplyDelta(ctx, id.New(), decimal.NewFromInt(1), DirectionDecrease)
	if !apperror.IsNotFound(err) {
		t.Errorf("unknown product must fail with not found, got %v", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()

	tracked := newProduct(companyID, "cable", 10, 2)
	untracked := newProduct(companyID, "service", -5, 0)
	untracked.TrackStock = false

	svc := NewService(newFakeRepo(tracked, untracked))

	t.Run("sufficient", func(t *testing.T) {
		avail, err := svc.CheckAvailability(ctx, tracked.ID, decimal.NewFromInt(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !avail.Available || avail.Message != "Sufficient stock" {
			t.Errorf("got %+v", avail)
		}
		if !avail.Shortage.IsZero() {
			t.Errorf("shortage = %s, want 0", avail.Shortage)
		}
	})

	t.Run("insufficient", func(t *testing.T) {
		avail, err := svc.CheckAvailability(ctx, tracked.ID, decimal.NewFromInt(12))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if avail.Available || avail.Message != "Insufficient stock" {
			t.Errorf("got %+v", avail)
		}
		if !avail.Shortage.Equal(decimal.NewFromInt(2)) {
			t.Errorf("shortage = %s, want 2", avail.Shortage)
		}
	})

	t.Run("tracking disabled always available", func(t *testing.T) {
		avail, err := svc.CheckAvailability(ctx, untracked.ID, decimal.NewFromInt(1000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !avail.Available || avail.Message != "Stock tracking disabled" {
			t.Errorf("got %+v", avail)
		}
	})

	t.Run("unknown product is a result, not an error", func(t *testing.T) {
		avail, err := svc.CheckAvailability(ctx, id.New(), decimal.NewFromInt(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if avail.Available || avail.Message != "Product not found" {
			t.Errorf("got %+v", avail)
		}
		if !avail.CurrentStock.IsZero() {
			t.Errorf("current stock = %s, want 0", avail.CurrentStock)
		}
	})
}

func TestEnsureAvailable(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()
	p := newProduct(companyID, "cable", 3, 0)
	svc := NewService(newFakeRepo(p))

	if err := svc.EnsureAvailable(ctx, p.ID, decimal.NewFromInt(3)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := svc.EnsureAvailable(ctx, p.ID, decimal.NewFromInt(4))
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeInsufficientStock {
		t.Errorf("expected INSUFFICIENT_STOCK, got %v", err)
	}
}

func TestListLowStock(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()

	low := newProduct(companyID, "low", 20, 25)
	ok := newProduct(companyID, "ok", 100, 10)
	out := newProduct(companyID, "out", 0, 5)
	untracked := newProduct(companyID, "untracked", 0, 5)
	untracked.TrackStock = false
	otherCompany := newProduct(id.New(), "other", 0, 5)

	svc := NewService(newFakeRepo(low, ok, out, untracked, otherCompany))

	items, err := svc.ListLowStock(ctx, companyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d: %+v", len(items), items)
	}

	for _, item := range items {
		switch item.ProductID {
		case low.ID:
			if !item.Shortage.Equal(decimal.NewFromInt(5)) {
				t.Errorf("shortage for low = %s, want 5", item.Shortage)
			}
		case out.ID:
			if !item.Shortage.Equal(decimal.NewFromInt(5)) {
				t.Errorf("shortage for out = %s, want 5", item.Shortage)
			}
		default:
			t.Errorf("unexpected item %+v", item)
		}
	}
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	companyID := id.New()

	low := newProduct(companyID, "low", 3, 5)
	low.PurchaseRate = decimal.NewFromInt(10)
	out := newProduct(companyID, "out", 0, 5)
	out.PurchaseRate = decimal.NewFromInt(100)
	negative := newProduct(companyID, "neg", -2, 0)
	negative.PurchaseRate = decimal.NewFromInt(50)
	healthy := newProduct(companyID, "healthy", 40, 5)
	healthy.PurchaseRate = decimal.RequireFromString("2.50")

	svc := NewService(newFakeRepo(low, out, negative, healthy))

	summary, err := svc.GetSummary(ctx, companyID, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalProducts != 6 {
		t.Errorf("total = %d, want 6", summary.TotalProducts)
	}
	if summary.TrackedProducts != 4 {
		t.Errorf("tracked = %d, want 4", summary.TrackedProducts)
	}
	if summary.OutOfStockCount != 2 {
		t.Errorf("out of stock = %d, want 2 (zero and negative)", summary.OutOfStockCount)
	}
	if summary.LowStockCount != 1 {
		t.Errorf("low stock = %d, want 1 (out-of-stock excluded)", summary.LowStockCount)
	}
	// 3*10 + 0*100 + (-2)*50 + 40*2.50 = 30 + 0 - 100 + 100 = 30
	if !summary.TotalStockValue.Equal(decimal.NewFromInt(30)) {
		t.Errorf("stock value = %s, want 30", summary.TotalStockValue)
	}
}
