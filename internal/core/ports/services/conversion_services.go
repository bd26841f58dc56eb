package services

import (
	"context"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves an exchange rate for a source currency code.
type RateResolverSvc interface {
	// GetRate resolves the rate into the target currency, reporting which
	// path (identity, cache, live fetch, fallback) produced it. It fails
	// only when no rate exists anywhere for the code.
	GetRate(ctx context.Context, code string) (decimal.Decimal, domain.ConversionOutcome, error)
}

// AmountConverterSvc converts single monetary amounts into the target currency.
type AmountConverterSvc interface {
	// ConvertToTarget converts an amount from the given currency, rounded to
	// two decimal places. Zero amounts short-circuit without any rate lookup.
	ConvertToTarget(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces.
type ConversionSvcFacade interface {
	RateResolverSvc
	AmountConverterSvc

	// TargetCurrency returns the code every amount is normalized into.
	TargetCurrency() string
}
