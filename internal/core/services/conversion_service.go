package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// ConversionService resolves exchange rates into the configured target
// currency and applies them to monetary amounts. Resolution order is
// cache, live source, static fallback table.
type ConversionService struct {
	source   ports.RateSource
	cache    ports.RateCache
	fallback map[string]decimal.Decimal
	target   string
	now      func() time.Time
	logger   *slog.Logger
}

// ConversionServiceOption customizes a ConversionService.
type ConversionServiceOption func(*ConversionService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ConversionServiceOption {
	return func(s *ConversionService) {
		s.now = now
	}
}

// WithFallbackRates replaces the built-in fallback snapshot.
func WithFallbackRates(rates map[string]decimal.Decimal) ConversionServiceOption {
	return func(s *ConversionService) {
		s.fallback = rates
	}
}

// NewConversionService creates a new ConversionService targeting the given
// currency code.
func NewConversionService(target string, source ports.RateSource, cache ports.RateCache, logger *slog.Logger, opts ...ConversionServiceOption) *ConversionService {
	s := &ConversionService{
		source:   source,
		cache:    cache,
		fallback: defaultFallbackRates(domain.NormalizeCurrencyCode(target)),
		target:   domain.NormalizeCurrencyCode(target),
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TargetCurrency returns the code every amount is normalized into.
func (s *ConversionService) TargetCurrency() string {
	return s.target
}

// GetRate resolves the exchange rate from the given currency code into the
// target currency. It fails only when the live source has no quote and the
// code is absent from the fallback table as well.
func (s *ConversionService) GetRate(ctx context.Context, code string) (decimal.Decimal, domain.ConversionOutcome, error) {
	code = domain.NormalizeCurrencyCode(code)

	// Already in the target currency, no lookup needed.
	if code == s.target {
		return decimal.NewFromInt(1), domain.OutcomeIdentity, nil
	}

	if cached, ok := s.cache.Get(code); ok {
		s.logger.Debug("using cached exchange rate",
			slog.String("currency_code", code),
			slog.String("rate", cached.Rate.String()))
		return cached.Rate, domain.OutcomeCached, nil
	}

	rate, err := s.source.FetchRate(ctx, code, s.target)
	if err == nil {
		s.cache.Put(code, domain.ExchangeRate{Rate: rate, FetchedAt: s.now()})
		s.logger.Info("fetched live exchange rate",
			slog.String("currency_code", code),
			slog.String("rate", rate.String()))
		return rate, domain.OutcomeFetched, nil
	}

	s.logger.Warn("live rate lookup failed, consulting fallback table",
		slog.String("currency_code", code),
		slog.String("error", err.Error()))

	// Fallback rates are deliberately not written to the cache, so the next
	// call for this code retries the live source.
	if fallbackRate, ok := s.fallback[code]; ok {
		return fallbackRate, domain.OutcomeFallback, nil
	}

	return decimal.Zero, "", fmt.Errorf("%w: no rate available for '%s'", apperrors.ErrUnsupportedCurrency, code)
}

// ConvertToTarget converts an amount from the given currency into the target
// currency, rounded half-up to two decimal places. Zero amounts return zero
// without any rate lookup.
func (s *ConversionService) ConvertToTarget(ctx context.Context, amount decimal.Decimal, code string) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	rate, _, err := s.GetRate(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rate).Round(2), nil
}
