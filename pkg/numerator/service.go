// Package numerator provides document auto-numbering.
//
// Invoice numbers follow the Indian financial year (1 April to 31 March):
// INV-2526-0001 belongs to FY 2025-26. Payment vouchers reset daily:
// PAY-20260831-0001.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Strategy defines the numbering generation strategy.
type Strategy int

const (
	// StrategyStrict uses UPSERT ... RETURNING for every number.
	// Guarantees sequential numbers without gaps.
	// Slower, suitable for invoices and other statutory documents.
	StrategyStrict Strategy = iota

	// StrategyCached allocates ranges of numbers in memory.
	// Much faster, but may produce gaps if the application restarts.
	// Suitable for internal vouchers.
	StrategyCached
)

// Options configuration for number generation.
type Options struct {
	// Strategy to use for number generation
	Strategy Strategy
	// RangeSize is the number of IDs to allocate at once in Cached strategy.
	// Default is 50.
	RangeSize int64
}

// DefaultOptions returns standard options (Strict).
func DefaultOptions() *Options {
	return &Options{
		Strategy: StrategyStrict,
	}
}

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type cachedRange struct {
	current int64
	max     int64
}

// Service provides document numbering functionality.
type Service struct {
	querier Querier

	cacheMu sync.Mutex
	ranges  map[string]*cachedRange
}

// New creates a new numerator service.
func New(querier Querier) *Service {
	return &Service{
		querier: querier,
		ranges:  make(map[string]*cachedRange),
	}
}

// ResetPeriod controls when the running sequence restarts.
type ResetPeriod string

const (
	ResetFinancialYear ResetPeriod = "fy"    // restarts on 1 April
	ResetDaily         ResetPeriod = "day"   // restarts at midnight
	ResetNever         ResetPeriod = "never" // single running sequence
)

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV", "PAY", "RCP")
	Prefix string

	// PadWidth is the minimum number width (default 4)
	PadWidth int

	// ResetPeriod controls sequence reset and the period segment format
	ResetPeriod ResetPeriod
}

// InvoiceConfig returns the standard invoice numbering configuration.
// Produces numbers like INV-2526-0001.
func InvoiceConfig(prefix string) Config {
	if prefix == "" {
		prefix = "INV"
	}
	return Config{
		Prefix:      prefix,
		PadWidth:    4,
		ResetPeriod: ResetFinancialYear,
	}
}

// VoucherConfig returns the payment voucher numbering configuration.
// Produces numbers like PAY-20260831-0001.
func VoucherConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		PadWidth:    4,
		ResetPeriod: ResetDaily,
	}
}

// FinancialYearStart returns the year the financial year containing t
// started in. January-March belong to the FY that started the previous year.
func FinancialYearStart(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// FinancialYearSegment renders the FY of t as a 4-digit segment,
// e.g. 2025-26 -> "2526".
func FinancialYearSegment(t time.Time) string {
	start := FinancialYearStart(t)
	return fmt.Sprintf("%02d%02d", start%100, (start+1)%100)
}

// GetNextNumber generates the next document number for the period
// containing t.
func (s *Service) GetNextNumber(ctx context.Context, cfg Config, opts *Options, t time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	if opts == nil {
		opts = DefaultOptions()
	}

	key := s.buildKey(cfg, t)
	var num int64
	var err error

	switch opts.Strategy {
	case StrategyCached:
		num, err = s.getNextCached(ctx, key, opts)
	case StrategyStrict:
		fallthrough
	default:
		num, err = s.getNextStrict(ctx, key)
	}

	if err != nil {
		return "", err
	}

	return s.formatNumber(cfg, t, num), nil
}

// getNextStrict fetches the next number directly from DB using UPSERT + RETURNING.
func (s *Service) getNextStrict(ctx context.Context, key string) (int64, error) {
	var num int64
	err := s.querier.QueryRow(ctx, `
        INSERT INTO sys_sequences (key, current_val)
        VALUES ($1, 1)
        ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
        RETURNING current_val
	`, key).Scan(&num)
	if err != nil {
		return 0, fmt.Errorf("strict next: %w", err)
	}
	return num, nil
}

// getNextCached fetches next number from memory, refilling from DB if needed.
func (s *Service) getNextCached(ctx context.Context, key string, opts *Options) (int64, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	rng, exists := s.ranges[key]
	if !exists {
		rng = &cachedRange{}
		s.ranges[key] = rng
	}

	if rng.current >= rng.max {
		size := opts.RangeSize
		if size <= 0 {
			size = 50
		}

		// current_val tracks the last value handed out, so bumping it by
		// size reserves the range (old+1 .. old+size) for this process.
		var newMax int64
		err := s.querier.QueryRow(ctx, `
            INSERT INTO sys_sequences (key, current_val)
            VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + $2
            RETURNING current_val
		`, key, size).Scan(&newMax)
		if err != nil {
			return 0, fmt.Errorf("reserve range: %w", err)
		}

		rng.current = newMax - size
		rng.max = newMax
	}

	rng.current++
	return rng.current, nil
}

// SetNextNumber sets the sequence value directly (for data migration).
func (s *Service) SetNextNumber(ctx context.Context, cfg Config, t time.Time, value int64) error {
	key := s.buildKey(cfg, t)

	var result int64
	err := s.querier.QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET current_val = $2
		RETURNING current_val
	`, key, value).Scan(&result)

	s.cacheMu.Lock()
	delete(s.ranges, key)
	s.cacheMu.Unlock()

	return err
}

// buildKey creates the sequence key based on config and period.
func (s *Service) buildKey(cfg Config, t time.Time) string {
	switch cfg.ResetPeriod {
	case ResetFinancialYear:
		return fmt.Sprintf("%s_FY%s", cfg.Prefix, FinancialYearSegment(t))
	case ResetDaily:
		return fmt.Sprintf("%s_%s", cfg.Prefix, t.Format("20060102"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func (s *Service) formatNumber(cfg Config, t time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 4
	}

	switch cfg.ResetPeriod {
	case ResetFinancialYear:
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, FinancialYearSegment(t), padWidth, num)
	case ResetDaily:
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, t.Format("20060102"), padWidth, num)
	default:
		return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
	}
}

// ParseNumber extracts the running sequence part from a formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx < 0 || idx == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}
