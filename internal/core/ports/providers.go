package ports

import (
	"context"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSource fetches a live quote for one currency pair. Implementations
// perform exactly one network exchange per call, bounded by their configured
// timeout; retry policy, if any, belongs to the caller.
type RateSource interface {
	FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}

// RateCache memoizes resolved rates per source-currency code within the
// engine's TTL window. Get must never return an expired entry; expired
// entries behave as absent. Implementations must be safe for concurrent use.
type RateCache interface {
	Get(code string) (domain.ExchangeRate, bool)
	Put(code string, rate domain.ExchangeRate)
}
