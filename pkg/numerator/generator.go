package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
// Domain services depend on this contract; *Service is the PostgreSQL
// implementation, MockGenerator serves unit tests.
type Generator interface {
	// GetNextNumber generates the next document number for the period
	// containing t.
	GetNextNumber(ctx context.Context, cfg Config, opts *Options, t time.Time) (string, error)

	// SetNextNumber sets the sequence value directly (for data migration).
	SetNextNumber(ctx context.Context, cfg Config, t time.Time, value int64) error
}

// Ensure compile-time interface compliance.
var _ Generator = (*Service)(nil)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies.
type MockGenerator struct {
	GetNextNumberFunc func(ctx context.Context, cfg Config, opts *Options, t time.Time) (string, error)
	SetNextNumberFunc func(ctx context.Context, cfg Config, t time.Time, value int64) error
}

// GetNextNumber implements Generator.
func (m *MockGenerator) GetNextNumber(ctx context.Context, cfg Config, opts *Options, t time.Time) (string, error) {
	if m.GetNextNumberFunc != nil {
		return m.GetNextNumberFunc(ctx, cfg, opts, t)
	}
	// Default: return predictable mock number
	return "MOCK-2526-0001", nil
}

// SetNextNumber implements Generator.
func (m *MockGenerator) SetNextNumber(ctx context.Context, cfg Config, t time.Time, value int64) error {
	if m.SetNextNumberFunc != nil {
		return m.SetNextNumberFunc(ctx, cfg, t, value)
	}
	return nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
