package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one resolved quote: units of the target currency per one
// unit of the source currency. Rate is always positive.
type ExchangeRate struct {
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// IsValid reports whether the rate may still be served at the given instant.
// Expired rates must be treated as absent, never returned to callers.
func (r ExchangeRate) IsValid(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}

// NormalizeCurrencyCode canonicalizes a currency code as read from an
// extracted record: surrounding whitespace trimmed, upper-cased.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
