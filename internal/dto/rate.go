package dto

import (
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResponse defines the structure for API responses containing a resolved
// exchange rate. Outcome states which path produced the rate: identity,
// cached, fetched, or fallback.
type RateResponse struct {
	CurrencyCode   string                   `json:"currencyCode"`
	TargetCurrency string                   `json:"targetCurrency"`
	Rate           decimal.Decimal          `json:"rate"`
	Outcome        domain.ConversionOutcome `json:"outcome"`
}
