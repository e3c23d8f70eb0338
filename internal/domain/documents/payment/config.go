package payment

import "gstbill/pkg/numerator"

// NumeratorStrategy for voucher numbers. The sequence resets daily;
// strict keeps each day gap-free since vouchers are printed and filed.
const NumeratorStrategy = numerator.StrategyStrict
