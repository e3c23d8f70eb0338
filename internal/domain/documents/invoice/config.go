package invoice

import "gstbill/pkg/numerator"

// NumeratorStrategy for invoice numbers.
// Strict: gap-free sequence per financial year, a DB round-trip per
// number. Tax-facing documents must not skip numbers.
const NumeratorStrategy = numerator.StrategyStrict
