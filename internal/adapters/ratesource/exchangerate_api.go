package ratesource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Quote responses are small; anything past this is not a rate table.
const maxResponseBytes = 1 << 20

// ExchangeRateAPI fetches quotes from an exchangerate-api style service:
// GET {base}/{FROM} answers a JSON body whose "rates" object maps currency
// codes to numeric rates. One request per call, no retries.
type ExchangeRateAPI struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewExchangeRateAPI creates an adapter for the quote service at baseURL.
// Every request is bounded by the given timeout.
func NewExchangeRateAPI(baseURL string, timeout time.Duration, logger *slog.Logger) *ExchangeRateAPI {
	return &ExchangeRateAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// FetchRate performs one quote lookup and extracts the rate for toCode from
// the response. Failures map onto the adapter error taxonomy: connection or
// timeout problems are apperrors.ErrRateSourceUnavailable, an unparseable
// body is apperrors.ErrMalformedRateResponse, and a pair the service has no
// quote for is apperrors.ErrUnsupportedCurrency.
func (a *ExchangeRateAPI) FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", a.baseURL, fromCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building request: %v", apperrors.ErrRateSourceUnavailable, err)
	}

	a.logger.Debug("fetching live exchange rate",
		slog.String("from", fromCode),
		slog.String("to", toCode))

	resp, err := a.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrRateSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return decimal.Zero, fmt.Errorf("%w: service has no quotes for '%s'", apperrors.ErrUnsupportedCurrency, fromCode)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, fmt.Errorf("%w: unexpected status %d", apperrors.ErrRateSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: reading body: %v", apperrors.ErrRateSourceUnavailable, err)
	}

	rates := gjson.GetBytes(body, "rates")
	if !rates.IsObject() {
		return decimal.Zero, fmt.Errorf("%w: no rates object in body", apperrors.ErrMalformedRateResponse)
	}

	rate := rates.Get(toCode)
	if !rate.Exists() {
		return decimal.Zero, fmt.Errorf("%w: no '%s' quote for '%s'", apperrors.ErrUnsupportedCurrency, toCode, fromCode)
	}
	if rate.Type != gjson.Number {
		return decimal.Zero, fmt.Errorf("%w: '%s' rate is not numeric", apperrors.ErrMalformedRateResponse, toCode)
	}

	value, err := decimal.NewFromString(rate.Raw)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: '%s' rate %q is not a positive number", apperrors.ErrMalformedRateResponse, toCode, rate.Raw)
	}

	return value, nil
}
