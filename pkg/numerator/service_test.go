package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// Mock objects
type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64 // Simulates DB sequence value
	lastKey      string
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Strict passes (key); cached passes (key, increment).
	var increment int64 = 1
	if len(args) == 2 {
		if val, ok := args[1].(int64); ok {
			increment = val
		}
	}
	if len(args) > 0 {
		if key, ok := args[0].(string); ok {
			m.lastKey = key
		}
	}

	m.currentValue += increment
	return &mockRow{val: m.currentValue}
}

func TestFinancialYearSegment(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), "2526"},
		{time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "2526"},
		{time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC), "2526"},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "2627"},
	}

	for _, tt := range tests {
		if got := FinancialYearSegment(tt.date); got != tt.want {
			t.Errorf("FinancialYearSegment(%s) = %s, want %s", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestGetNextNumber_Strict(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := InvoiceConfig("INV")
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, nil, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2526-0001" {
		t.Errorf("expected INV-2526-0001, got %s", num)
	}
	if q.lastKey != "INV_FY2526" {
		t.Errorf("expected sequence key INV_FY2526, got %s", q.lastKey)
	}

	num, err = svc.GetNextNumber(ctx, cfg, nil, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "INV-2526-0002" {
		t.Errorf("expected INV-2526-0002, got %s", num)
	}
}

func TestGetNextNumber_DailyVoucher(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := VoucherConfig("RCP")
	date := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	num, err := svc.GetNextNumber(ctx, cfg, nil, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "RCP-20260831-0001" {
		t.Errorf("expected RCP-20260831-0001, got %s", num)
	}
}

func TestGetNextNumber_Cached(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := InvoiceConfig("ORD")
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	// First call reserves 1..10 in one DB round-trip.
	num, err := svc.GetNextNumber(ctx, cfg, opts, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2526-0001" {
		t.Errorf("expected ORD-2526-0001, got %s", num)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value to be 10, got %d", q.currentValue)
	}

	// Second call comes from memory, DB untouched.
	num, err = svc.GetNextNumber(ctx, cfg, opts, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2526-0002" {
		t.Errorf("expected ORD-2526-0002, got %s", num)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value to stay 10, got %d", q.currentValue)
	}

	// Exhaust the range; the next call reserves 11..20.
	for i := 0; i < 8; i++ {
		_, _ = svc.GetNextNumber(ctx, cfg, opts, date)
	}

	num, err = svc.GetNextNumber(ctx, cfg, opts, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORD-2526-0011" {
		t.Errorf("expected ORD-2526-0011, got %s", num)
	}
	if q.currentValue != 20 {
		t.Errorf("expected DB value to be 20, got %d", q.currentValue)
	}
}

func TestParseNumber(t *testing.T) {
	if got := ParseNumber("INV-2526-0042"); got != 42 {
		t.Errorf("ParseNumber = %d, want 42", got)
	}
	if got := ParseNumber("garbage"); got != -1 {
		t.Errorf("ParseNumber = %d, want -1", got)
	}
}
